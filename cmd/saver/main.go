package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/tomz197/ballsaver/internal/config"
	"github.com/tomz197/ballsaver/internal/loop"
	"golang.org/x/term"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	opts := loop.Options{
		BallCount: config.GetEnvInt("BALLS", 0),
		Seed:      int64(config.GetEnvInt("SEED", 0)),
	}

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "saver error: %v\n", err)
		os.Exit(1)
	}
}
