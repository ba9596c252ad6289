package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	fs := NewFixedStep(4)
	start := time.Unix(0, 0)
	if !fs.advance(start) {
		t.Fatal("first call should step immediately")
	}
	if fs.advance(start.Add(100 * time.Millisecond)) {
		t.Fatal("stepped before a full period elapsed")
	}
	if !fs.advance(start.Add(260 * time.Millisecond)) {
		t.Fatal("expected a step after 250ms at 4 TPS")
	}
}

func TestFixedStepClampsBacklog(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(0, 0)
	fs.advance(start)
	steps := 0
	now := start.Add(5 * time.Second)
	for fs.advance(now) {
		steps++
	}
	if steps > 2 {
		t.Fatalf("replayed %d steps after a stall", steps)
	}
	fs.SetTPS(0)
	if fs.TPS() != 1 {
		t.Fatalf("TPS = %d, want clamp to 1", fs.TPS())
	}
}
