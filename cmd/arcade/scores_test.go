package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustInfo(t *testing.T, id string) registry.GameInfo {
	t.Helper()
	info, ok := registry.Info(id)
	if !ok {
		t.Fatalf("game %q is not registered", id)
	}
	return info
}

func TestPrintScores(t *testing.T) {
	store := openStore(t)
	for _, s := range []int{100, 300, 200} {
		store.SaveScore("asteroids", s)
	}

	tests := []struct {
		name  string
		limit int
		rows  int
	}{
		{"top two", 2, 2},
		{"all", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := printScores(&out, store, mustInfo(t, "asteroids"), tt.limit); err != nil {
				t.Fatalf("printScores() failed: %v", err)
			}
			text := out.String()
			if got := strings.Count(text, "\n  ") - 2; got != tt.rows {
				t.Errorf("expected %d score rows, got %d:\n%s", tt.rows, got, text)
			}
			if !strings.Contains(text, "Games played: 3   Average: 200") {
				t.Errorf("stats line missing:\n%s", text)
			}
			if !strings.Contains(text, "Best: 300") {
				t.Errorf("best score missing:\n%s", text)
			}
		})
	}
}

func TestPrintScoresEmpty(t *testing.T) {
	var out bytes.Buffer
	if err := printScores(&out, openStore(t), mustInfo(t, "invaders"), 10); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(out.String(), "No scores recorded yet.") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestPrintOverview(t *testing.T) {
	store := openStore(t)
	store.SaveScore("breakout", 40)
	store.SaveScore("breakout", 60)
	store.SaveDuel("tank", 1, 600)

	var out bytes.Buffer
	games := []registry.GameInfo{mustInfo(t, "breakout"), mustInfo(t, "galaxian"), mustInfo(t, "tank")}
	if err := printOverview(&out, store, games); err != nil {
		t.Fatalf("printOverview() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header, rule and 3 games, got:\n%s", out.String())
	}
	if f := strings.Fields(lines[2]); f[0] != "breakout" || f[1] != "2" || f[2] != "60" || f[3] != "50" {
		t.Errorf("breakout line = %q", lines[2])
	}
	if f := strings.Fields(lines[3]); f[0] != "galaxian" || f[1] != "0" {
		t.Errorf("galaxian line = %q", lines[3])
	}
	if !strings.Contains(lines[4], "(duels)") {
		t.Errorf("tank line = %q", lines[4])
	}
}

func TestClearScores(t *testing.T) {
	store := openStore(t)
	store.SaveScore("asteroids", 500)
	store.SaveScore("sandbox", 70)

	var out bytes.Buffer
	if err := clearScores(&out, store, mustInfo(t, "asteroids")); err != nil {
		t.Fatalf("clearScores() failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "Cleared all records") {
		t.Errorf("unexpected output %q", out.String())
	}

	if scores, _ := store.AllScores("asteroids"); len(scores) != 0 {
		t.Errorf("asteroids should be empty, got %d scores", len(scores))
	}
	if scores, _ := store.AllScores("sandbox"); len(scores) != 1 {
		t.Error("other games should keep their scores")
	}
}

func TestPrintDuelsAll(t *testing.T) {
	store := openStore(t)
	for _, w := range []int{1, 2, 0} {
		store.SaveDuel("tank", w, 1200)
	}

	var out bytes.Buffer
	if err := printDuels(&out, store, mustInfo(t, "tank"), 0, 60); err != nil {
		t.Fatalf("printDuels() failed: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Player 1: 1   Player 2: 1   Draws: 1") {
		t.Errorf("tally missing:\n%s", text)
	}
	if n := strings.Count(text, "20s"); n != 3 {
		t.Errorf("expected all 3 duels listed, got %d:\n%s", n, text)
	}
}
