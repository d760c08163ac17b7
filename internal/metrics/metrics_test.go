package metrics

import (
	"encoding/json"
	"sync"
	"testing"
)

func TestCollector_Connections(t *testing.T) {
	c := New()

	c.ConnectionOpened()
	if c.ActiveConnections() != 1 {
		t.Errorf("active = %d, want 1", c.ActiveConnections())
	}

	c.ConnectionClosed()
	if c.ActiveConnections() != 0 {
		t.Errorf("active = %d, want 0", c.ActiveConnections())
	}
}

func TestCollector_Traffic(t *testing.T) {
	c := New()

	c.ChunkReceived(2)
	c.ChunkReceived(4)
	c.LineSent(len("subscribe topic-A\n"))

	if c.TotalBytesIn() != 6 || c.ChunksReceived() != 2 {
		t.Errorf("in = %d bytes / %d chunks, want 6 / 2", c.TotalBytesIn(), c.ChunksReceived())
	}
	if c.TotalBytesOut() != 18 || c.LinesSent() != 1 {
		t.Errorf("out = %d bytes / %d lines, want 18 / 1", c.TotalBytesOut(), c.LinesSent())
	}
}

func TestCollector_ConcurrentRecording(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.ChunkReceived(1)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.LineSent(2)
			}
		}()
	}
	wg.Wait()

	if c.TotalBytesIn() != 4000 || c.TotalBytesOut() != 8000 {
		t.Errorf("in=%d out=%d, want 4000/8000", c.TotalBytesIn(), c.TotalBytesOut())
	}
}

func TestCollector_Errors(t *testing.T) {
	c := New()

	c.RecordError("first error")
	c.RecordError("second error")

	if c.ErrorCount() != 2 {
		t.Errorf("errors = %d, want 2", c.ErrorCount())
	}
	if msg := c.Snapshot().LastErrorMessage; msg != "second error" {
		t.Errorf("last error = %q", msg)
	}
}

func TestCollector_JSON(t *testing.T) {
	c := New()
	c.ConnectionOpened()
	c.LineSent(42)

	var snap Snapshot
	if err := json.Unmarshal([]byte(c.JSON()), &snap); err != nil {
		t.Fatalf("JSON parse error: %v", err)
	}
	if snap.ConnectionsActive != 1 {
		t.Errorf("JSON active = %d", snap.ConnectionsActive)
	}
	if snap.BytesOut != 42 || snap.LinesOut != 1 {
		t.Errorf("JSON out = %d bytes / %d lines", snap.BytesOut, snap.LinesOut)
	}
	if snap.LastError != "" {
		t.Errorf("no error recorded, got %q", snap.LastError)
	}
}

func TestNilCollector_NoOps(t *testing.T) {
	var c *Collector

	c.ConnectionOpened()
	c.ConnectionClosed()
	c.ChunkReceived(100)
	c.LineSent(100)
	c.RecordError("test")

	if c.ActiveConnections() != 0 || c.TotalBytesIn() != 0 || c.ErrorCount() != 0 {
		t.Error("nil collector should return zeros")
	}
	if c.Snapshot() != (Snapshot{}) {
		t.Error("nil snapshot should be zero")
	}
	if c.JSON() == "" {
		t.Error("nil JSON should return valid JSON")
	}
}
