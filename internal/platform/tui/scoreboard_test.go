package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crosser/internal/storage"
)

// newScoreboardStore creates a store seeded with a few scores and runs.
func newScoreboardStore(t *testing.T) *storage.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, score := range []int{300, 100, 500} {
		if _, err := store.SaveScore("crosser", score); err != nil {
			t.Fatalf("failed to save score: %v", err)
		}
	}
	if _, err := store.SaveRun(storage.RunRecord{
		GameID:       "crosser",
		Score:        500,
		WaveReached:  2,
		ZonesClaimed: 7,
		EndReason:    "game_over",
		Duration:     95,
	}); err != nil {
		t.Fatalf("failed to save run: %v", err)
	}

	return store
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestScoreboardLoadsFromStore(t *testing.T) {
	store := newScoreboardStore(t)
	m := NewScoreboardModel(store, "crosser", 80, 24)

	if len(m.scores) != 3 {
		t.Errorf("expected 3 scores loaded, got %d", len(m.scores))
	}
	if len(m.runs) != 1 {
		t.Errorf("expected 1 run loaded, got %d", len(m.runs))
	}
	// TopScores orders descending.
	if m.scores[0].Score != 500 {
		t.Errorf("expected top score 500, got %d", m.scores[0].Score)
	}
}

func TestScoreboardViewShowsScores(t *testing.T) {
	store := newScoreboardStore(t)
	m := NewScoreboardModel(store, "crosser", 80, 24)

	view := m.View()
	if !strings.Contains(view, "HIGH SCORES") {
		t.Error("expected scores title in view")
	}
	if !strings.Contains(view, "500") {
		t.Error("expected top score in view")
	}
}

func TestScoreboardToggleSwitchesToRuns(t *testing.T) {
	store := newScoreboardStore(t)
	m := NewScoreboardModel(store, "crosser", 80, 24)

	updated, _ := m.Update(keyMsg("tab"))
	m = updated.(ScoreboardModel)

	if m.view != viewRuns {
		t.Errorf("expected runs view after tab, got %v", m.view)
	}
	view := m.View()
	if !strings.Contains(view, "RECENT RUNS") {
		t.Error("expected runs title in view")
	}
	if !strings.Contains(view, "game_over") {
		t.Error("expected run end reason in view")
	}

	updated, _ = m.Update(keyMsg("tab"))
	m = updated.(ScoreboardModel)
	if m.view != viewScores {
		t.Errorf("expected scores view after second tab, got %v", m.view)
	}
}

func TestScoreboardQuitKeys(t *testing.T) {
	store := newScoreboardStore(t)

	for _, k := range []string{"q", "esc"} {
		m := NewScoreboardModel(store, "crosser", 80, 24)
		updated, cmd := m.Update(keyMsg(k))
		m = updated.(ScoreboardModel)

		if !m.quitting {
			t.Errorf("key %q: expected quitting state", k)
		}
		if cmd == nil {
			t.Errorf("key %q: expected quit command", k)
		}
	}
}

func TestScoreboardEmptyStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "empty.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	m := NewScoreboardModel(store, "crosser", 80, 24)
	view := m.View()
	if !strings.Contains(view, "Nothing recorded yet") {
		t.Error("expected empty message in view")
	}
}

func TestScoreboardResize(t *testing.T) {
	store := newScoreboardStore(t)
	m := NewScoreboardModel(store, "crosser", 80, 24)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(ScoreboardModel)

	if m.width != 120 || m.height != 40 {
		t.Errorf("expected 120x40 after resize, got %dx%d", m.width, m.height)
	}
}
