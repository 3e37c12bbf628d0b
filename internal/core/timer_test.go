package core

import (
	"testing"
	"time"
)

func TestCadenceFiresOncePerInterval(t *testing.T) {
	clock := time.Unix(0, 0)
	c := NewCadence(time.Second)
	c.now = func() time.Time { return clock }

	if c.Due() {
		t.Fatal("cadence fired before any time elapsed")
	}
	clock = clock.Add(600 * time.Millisecond)
	if c.Due() {
		t.Fatal("cadence fired after 600ms of a 1s interval")
	}
	clock = clock.Add(500 * time.Millisecond)
	if !c.Due() {
		t.Fatal("cadence did not fire after 1.1s")
	}
	if c.Due() {
		t.Fatal("cadence fired twice for one interval")
	}

	c.Reset()
	clock = clock.Add(5 * time.Second)
	if c.Due() {
		t.Fatal("reset cadence fired on its first observation")
	}
}

func TestCadenceDefaultsInterval(t *testing.T) {
	if got := NewCadence(0).Interval(); got != time.Second {
		t.Fatalf("interval = %v, want 1s", got)
	}
}
