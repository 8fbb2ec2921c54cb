package sse

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherBroadcastsOnThemeWrite(t *testing.T) {
	dir := t.TempDir()
	broker := NewBroker()

	watcher, err := NewWatcher(dir, broker)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = watcher.Close() }()

	ch := broker.Subscribe()
	defer broker.Unsubscribe(ch)

	if err := os.WriteFile(filepath.Join(dir, "theme"), []byte("dark\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case received := <-ch:
		if received.Event != "refresh" {
			t.Errorf("expected refresh, got %s", received.Event)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for watcher to broadcast")
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	broker := NewBroker()

	watcher, err := NewWatcher(dir, broker)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = watcher.Close() }()

	ch := broker.Subscribe()
	defer broker.Unsubscribe(ch)

	if err := os.WriteFile(filepath.Join(dir, "scratch.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case received := <-ch:
		t.Fatalf("unexpected signal %+v for unrelated file", received)
	case <-time.After(1500 * time.Millisecond):
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	broker := NewBroker()

	watcher, err := NewWatcher(dir, broker)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = watcher.Close() }()

	ch := broker.Subscribe()
	defer broker.Unsubscribe(ch)

	// A burst of writes inside the debounce window yields one signal.
	for range 5 {
		if err := os.WriteFile(filepath.Join(dir, "directory.yaml"), []byte("departments: []\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for debounced broadcast")
	}

	select {
	case received := <-ch:
		t.Fatalf("expected a single debounced signal, got extra %+v", received)
	case <-time.After(1500 * time.Millisecond):
	}
}
