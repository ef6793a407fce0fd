package dictionary

import "testing"

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxEditDistance = 9
	if _, err := New(cfg); err == nil {
		t.Fatal("New() = nil error for invalid config, want error")
	}
}

func TestNewAndCloseRoundtrip(t *testing.T) {
	cfg := smallTestConfig()
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("Close() error = %v, want nil", err)
	}
}

func TestEmptyEngineStats(t *testing.T) {
	e, err := New(smallTestConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	stats := e.GetStats()
	if stats.WordCount != 0 || stats.EntryCount != 0 {
		t.Fatalf("GetStats() on empty engine = %+v, want zero counts", stats)
	}
}

// smallTestConfig returns a Config sized for fast, deterministic unit tests
// rather than production load, with prime-size validation disabled so small
// round numbers can be used as table sizes.
func smallTestConfig() Config {
	cfg := DefaultConfig()
	cfg.StringArenaBytes = 1 << 16
	cfg.EntryArenaBytes = 1 << 16
	cfg.ExactTableSize = 1021
	cfg.DeleteIndexSize = 2039
	cfg.MaxDeleteQueue = 1000
	cfg.RequirePrimeTableSize = false
	return cfg
}
