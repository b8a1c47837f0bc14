package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("BALLSAVER_TEST_STR", "hello")
	if got := GetEnv("BALLSAVER_TEST_STR", "fallback"); got != "hello" {
		t.Errorf("GetEnv = %q, want %q", got, "hello")
	}
	if got := GetEnv("BALLSAVER_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("BALLSAVER_TEST_INT", "42")
	if got := GetEnvInt("BALLSAVER_TEST_INT", 7); got != 42 {
		t.Errorf("GetEnvInt = %d, want 42", got)
	}
	t.Setenv("BALLSAVER_TEST_BAD", "not-a-number")
	if got := GetEnvInt("BALLSAVER_TEST_BAD", 7); got != 7 {
		t.Errorf("GetEnvInt on garbage = %d, want fallback 7", got)
	}
	if got := GetEnvInt("BALLSAVER_TEST_UNSET", 7); got != 7 {
		t.Errorf("GetEnvInt unset = %d, want fallback 7", got)
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("BALLSAVER_TEST_FLOAT", "2.5")
	if got := GetEnvFloat("BALLSAVER_TEST_FLOAT", 1); got != 2.5 {
		t.Errorf("GetEnvFloat = %v, want 2.5", got)
	}
	if got := GetEnvFloat("BALLSAVER_TEST_UNSET", 1.5); got != 1.5 {
		t.Errorf("GetEnvFloat unset = %v, want fallback 1.5", got)
	}
}
