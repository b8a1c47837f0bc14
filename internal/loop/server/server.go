// Package server runs one shared ball simulation that any number of SSH
// viewers can watch. The server owns the world and ticks it at a fixed
// rate; viewers only ever see immutable snapshots.
package server

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomz197/ballsaver/internal/loop/config"
	"github.com/tomz197/ballsaver/internal/physics"
	"github.com/tomz197/ballsaver/internal/sim"
)

// WorldServer is the interface viewers use to talk to the server.
// Decouples the Client from the concrete Server implementation.
type WorldServer interface {
	RegisterViewer() *ViewerHandle
	UnregisterViewer(viewerID int)
	GetSnapshot() *WorldSnapshot
}

// Server manages the shared simulation and its viewers.
type Server struct {
	world        *sim.Simulator
	snapshot     atomic.Pointer[WorldSnapshot]
	viewers      map[int]*ViewerHandle
	nextViewerID int
	registerCh   chan *ViewerHandle
	unregisterCh chan int
	mu           sync.RWMutex

	// Double-buffered snapshot ball slices to avoid per-tick allocations
	snapshotBufs [2][]sim.Snapshot
	snapshotIdx  int

	frame uint64
}

// Compile-time check that Server implements WorldServer.
var _ WorldServer = (*Server)(nil)

// ViewerHandle represents a viewer's connection to the server.
type ViewerHandle struct {
	ID       int
	EventsCh chan ViewerEvent // Events sent to the viewer (shutdown, etc.)
}

// ViewerEvent is an event sent from server to viewer.
type ViewerEvent struct {
	Type ViewerEventType
}

// ViewerEventType identifies the type of viewer event.
type ViewerEventType int

const (
	EventServerShutdown ViewerEventType = iota
)

// Options configures the shared world.
type Options struct {
	// BallCount selects a random layout; zero picks the classic layout.
	BallCount int
	// Seed for random layouts. Zero seeds from the clock.
	Seed int64
}

// NewServer creates a server with a fresh world.
func NewServer(opts Options) *Server {
	bounds := physics.NewBounds(0, 0, config.WorldWidth, config.WorldHeight)

	var configs []sim.Config
	if opts.BallCount <= 0 {
		configs = sim.ClassicLayout(bounds)
	} else {
		n := opts.BallCount
		if n > config.MaxBallCount {
			n = config.MaxBallCount
		}
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		configs = sim.RandomLayout(n, bounds, rand.New(rand.NewSource(seed)))
	}

	s := &Server{
		world:        sim.New(bounds, configs),
		viewers:      make(map[int]*ViewerHandle),
		nextViewerID: 1,
		registerCh:   make(chan *ViewerHandle, 16),
		unregisterCh: make(chan int, 16),
	}

	// Publish an initial snapshot so early viewers never see nil.
	s.publishSnapshot()
	return s
}

// Run starts the simulation loop. Blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		frameStart := time.Now()

		s.processRegistrations()
		s.world.AdvanceFrame()
		s.frame++
		s.publishSnapshot()

		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}
}

// Shutdown notifies all connected viewers and waits for them to disconnect,
// up to the given timeout. The caller should cancel the server context
// after Shutdown returns.
func (s *Server) Shutdown(timeout time.Duration) {
	s.mu.RLock()
	for _, handle := range s.viewers {
		select {
		case handle.EventsCh <- ViewerEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			return
		case <-ticker.C:
			s.processRegistrations()
			s.mu.RLock()
			remaining := len(s.viewers)
			s.mu.RUnlock()
			if remaining == 0 {
				return
			}
		}
	}
}

// RegisterViewer adds a viewer and returns its handle.
func (s *Server) RegisterViewer() *ViewerHandle {
	s.mu.Lock()
	id := s.nextViewerID
	s.nextViewerID++
	s.mu.Unlock()

	handle := &ViewerHandle{
		ID:       id,
		EventsCh: make(chan ViewerEvent, 4),
	}

	s.registerCh <- handle
	return handle
}

// UnregisterViewer removes a viewer from the server.
func (s *Server) UnregisterViewer(viewerID int) {
	s.unregisterCh <- viewerID
}

// GetSnapshot returns the current world snapshot.
func (s *Server) GetSnapshot() *WorldSnapshot {
	return s.snapshot.Load()
}

// processRegistrations handles pending viewer arrivals and departures.
func (s *Server) processRegistrations() {
	for {
		select {
		case handle := <-s.registerCh:
			s.mu.Lock()
			s.viewers[handle.ID] = handle
			s.mu.Unlock()
		case viewerID := <-s.unregisterCh:
			s.mu.Lock()
			if handle, ok := s.viewers[viewerID]; ok {
				close(handle.EventsCh)
				delete(s.viewers, viewerID)
			}
			s.mu.Unlock()
		default:
			return
		}
	}
}

// publishSnapshot captures world state into the inactive buffer and swaps
// it in for viewers.
func (s *Server) publishSnapshot() {
	s.snapshotIdx = (s.snapshotIdx + 1) % 2
	buf := s.snapshotBufs[s.snapshotIdx][:0]
	buf = s.world.Balls(buf)
	s.snapshotBufs[s.snapshotIdx] = buf

	s.mu.RLock()
	viewers := len(s.viewers)
	s.mu.RUnlock()

	s.snapshot.Store(&WorldSnapshot{
		Balls:   buf,
		Bounds:  s.world.Bounds(),
		Viewers: viewers,
		Frame:   s.frame,
	})
}
