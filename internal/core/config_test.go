package core

import (
	"testing"
	"time"
)

func TestRuntimeConfigWithDefaults(t *testing.T) {
	now := time.Unix(0, 12345)

	got := RuntimeConfig{ScreenW: 100, ScreenH: 40}.WithDefaults(now)
	if got.TickRate != DefaultTickRate || got.Seed != 12345 {
		t.Errorf("WithDefaults() = %+v, expected tick rate %d and seed 12345", got, DefaultTickRate)
	}
	if got.ScreenW != 100 || got.ScreenH != 40 {
		t.Error("WithDefaults() must not touch the screen size")
	}

	pinned := RuntimeConfig{TickRate: 30, Seed: 7}.WithDefaults(now)
	if pinned.TickRate != 30 || pinned.Seed != 7 {
		t.Errorf("explicit values should be kept, got %+v", pinned)
	}
}

func TestRuntimeConfigTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second},
	}

	for _, tt := range tests {
		if got := (RuntimeConfig{TickRate: tt.rate}).TickInterval(); got != tt.want {
			t.Errorf("TickInterval() at %d = %v, expected %v", tt.rate, got, tt.want)
		}
	}
}
