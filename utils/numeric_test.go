package utils

import (
	"math"
	"testing"
)

func TestSanitizeFloat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"nan", math.NaN(), 0},
		{"positive inf", math.Inf(1), 0},
		{"negative inf", math.Inf(-1), 0},
		{"negative", -3.5, 0},
		{"zero", 0, 0},
		{"positive", 42.5, 42.5},
	}
	for _, tt := range tests {
		if got := SanitizeFloat(tt.in); got != tt.want {
			t.Errorf("%s: SanitizeFloat(%v) = %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestPct(t *testing.T) {
	tests := []struct {
		actual, target, want float64
	}{
		{50, 100, 50},
		{150, 100, 150},
		{10, 0, 0},   // never divide by zero
		{10, -5, 0},  // negative targets are as bad
		{-10, 100, 0}, // sanitized
	}
	for _, tt := range tests {
		if got := Pct(tt.actual, tt.target); got != tt.want {
			t.Errorf("Pct(%v, %v) = %v, want %v", tt.actual, tt.target, got, tt.want)
		}
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(2148.2999999999997); got != 2148.3 {
		t.Errorf("Round2 = %v, want 2148.3", got)
	}
	if got := Round2(1.005 * 100 / 100); got != Round2(1.005) {
		t.Errorf("Round2 not stable: %v", got)
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{165, 0, 100, 100},
		{-5, 0, 100, 0},
		{50, 0, 100, 50},
	}
	for _, tt := range tests {
		if got := ClampInt(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("ClampInt(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
