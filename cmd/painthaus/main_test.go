package main

import (
	"math"
	"testing"
)

func TestSpinStatePause(t *testing.T) {
	spin := NewSpinState(60)

	for range 10 {
		spin.Update(1.0 / 60)
	}
	if spin.Time == 0 {
		t.Fatal("clock did not advance while spinning")
	}

	spin.Paused = true
	before := spin.Time
	for range 10 {
		spin.Update(1.0 / 60)
	}
	if spin.Time != before {
		t.Errorf("clock advanced while paused: %v -> %v", before, spin.Time)
	}
}

func TestSpinStateEasesTowardTarget(t *testing.T) {
	spin := NewSpinState(60)
	spin.Target = 2

	prev := spin.Speed()
	for range 300 {
		spin.Update(1.0 / 60)
	}
	if spin.Speed() <= prev {
		t.Fatalf("speed did not rise toward target: %v", spin.Speed())
	}
	if math.Abs(spin.Speed()-2) > 0.05 {
		t.Errorf("speed settled at %v, want ~2", spin.Speed())
	}
}

func TestSpinStateReset(t *testing.T) {
	spin := NewSpinState(60)
	spin.Target = 3
	for range 30 {
		spin.Update(1.0 / 60)
	}
	spin.Paused = true

	spin.Reset()
	if spin.Time != 0 || spin.Target != 1 || spin.Paused {
		t.Errorf("Reset left state %+v", spin)
	}
}
