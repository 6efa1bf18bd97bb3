package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blockdoku/internal/core"
	"github.com/vovakirdan/tui-blockdoku/internal/storage"
)

// fakeGame ends after the first Confirm and records what it saw.
type fakeGame struct {
	resets  int
	resized [2]int
	seen    []core.InputFrame
	over    bool
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.over = false
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.seen = append(g.seen, in)
	if in.Has(core.ActionConfirm) {
		g.over = true
	}
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextColored(0, 0, "fake board", core.ColorPurple)
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: 42, GameOver: g.over}
}

func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func (g *fakeGame) Summary() core.RunSummary {
	return core.RunSummary{RunID: "run-1", Score: 42, Placements: 7, LinesCleared: 2}
}

func newTestModel(t *testing.T) (Model, *fakeGame, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	g := &fakeGame{}
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 1}
	m := NewModel(g, store, cfg, log.New(io.Discard))
	m.Init()
	return m, g, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func TestModelKeysReachGameOnTick(t *testing.T) {
	m, g, _ := newTestModel(t)

	m = update(t, m, runeKey("2"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, TickMsg{})

	require.Len(t, g.seen, 1)
	assert.True(t, g.seen[0].Has(core.ActionSlot2))
	assert.True(t, g.seen[0].Has(core.ActionLeft))

	update(t, m, TickMsg{})
	require.Len(t, g.seen, 2)
	assert.False(t, g.seen[1].Has(core.ActionSlot2), "frame is cleared after each tick")
	assert.True(t, g.seen[0].Has(core.ActionSlot2), "earlier frames are not reused")
}

func TestModelSavesRunOnce(t *testing.T) {
	m, _, store := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	runs, err := store.TopScores("fake", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-1", runs[0].RunID)
	assert.Equal(t, 42, runs[0].Score)
	assert.Equal(t, 7, runs[0].Placements)
	assert.Equal(t, 2, runs[0].LinesCleared)
}

func TestModelRestartAfterGameOver(t *testing.T) {
	m, g, _ := newTestModel(t)
	require.Equal(t, 1, g.resets)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})
	require.True(t, g.over)

	m = update(t, m, runeKey("r"))
	update(t, m, TickMsg{})
	assert.Equal(t, 2, g.resets)
	assert.False(t, g.over)
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, g, _ := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, [2]int{100, 30}, g.resized)
	assert.Equal(t, 1, g.resets)
	assert.Equal(t, 100, m.screen.Width())
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	next, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, "", next.View())
}

func TestModelView(t *testing.T) {
	m, _, _ := newTestModel(t)
	out := m.View()
	assert.Contains(t, out, "fake board")
	assert.Equal(t, 10, strings.Count(out, "\n")+1)
}
