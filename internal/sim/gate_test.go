package sim

import (
	"testing"

	"github.com/vovakirdan/arcade-classics/internal/core"
)

// frames builds one input frame per tick. 'p' is a fresh press,
// 'h' a held key, '.' released.
func frames(pattern string) []core.InputFrame {
	out := make([]core.InputFrame, len(pattern))
	for i, c := range pattern {
		f := core.NewInputFrame()
		switch c {
		case 'p':
			f.Set(core.ActionFire)
		case 'h':
			f.Hold(core.ActionFire)
		}
		out[i] = f
	}
	return out
}

func fireTicks(g FireGate, pattern string) string {
	out := make([]byte, 0, len(pattern))
	for _, f := range frames(pattern) {
		if g.Request(f, core.ActionFire) {
			out = append(out, 'F')
		} else {
			out = append(out, '.')
		}
	}
	return string(out)
}

func TestFireGateModes(t *testing.T) {
	tests := []struct {
		name    string
		gate    FireGate
		pattern string
		want    string
	}{
		{"edge fires on presses only", NewFireGate(GateEdge, 0), "phhh.p.", "F....F."},
		{"latch rearms after release", NewFireGate(GateLatch, 0), "phhh.h.", "F....F."},
		{"latch held from the start fires once", NewFireGate(GateLatch, 0), "hhhhhh", "F....."},
		{"cooldown repeats while held", NewFireGate(GateCooldown, 3), "phhhhhhh", "F..F..F."},
		{"cooldown keeps counting while released", NewFireGate(GateCooldown, 3), "p..p", "F..F"},
		{"zero cooldown fires every tick", NewFireGate(GateCooldown, 0), "phh", "FFF"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := fireTicks(tc.gate, tc.pattern); got != tc.want {
				t.Errorf("fire ticks = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestFireGateReset(t *testing.T) {
	g := NewFireGate(GateCooldown, 10)
	held := frames("h")[0]

	if !g.Request(held, core.ActionFire) {
		t.Fatal("first request should fire")
	}
	if g.Request(held, core.ActionFire) {
		t.Fatal("second request should be on cooldown")
	}
	g.Reset()
	if !g.Request(held, core.ActionFire) {
		t.Error("request after Reset should fire")
	}
}

func TestParseGateMode(t *testing.T) {
	if ParseGateMode("cooldown", GateEdge) != GateCooldown {
		t.Error("cooldown should parse")
	}
	if ParseGateMode("", GateLatch) != GateLatch {
		t.Error("empty value should use the default")
	}
}
