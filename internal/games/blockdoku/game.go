// Package blockdoku adapts the Blockdoku board state machine to the
// registry.Game interface: a keyboard cursor over the grid, slot
// selection and rendering into a core.Screen.
package blockdoku

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-blockdoku/internal/config"
	"github.com/vovakirdan/tui-blockdoku/internal/core"
	bcore "github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku/core"
	"github.com/vovakirdan/tui-blockdoku/internal/registry"
)

// Registry IDs, one per difficulty.
const (
	IDEasy   = "blockdoku_easy"
	IDMedium = "blockdoku"
	IDHard   = "blockdoku_hard"
)

// flashTicks is how long cleared cells stay highlighted.
const flashTicks = 8

// Game is one Blockdoku run driven by semantic actions.
type Game struct {
	difficulty bcore.Difficulty
	session    *bcore.Session
	runID      string
	tick       uint64

	cursorRow int
	cursorCol int
	selected  int

	flash     []int
	flashLeft int
	message   string

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// Package-level variables for config
var (
	configPath     string
	selectedLayout string
)

var logger = log.New(io.Discard)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetLayout selects a starting layout by ID for subsequent Resets.
// An empty ID starts from an empty board.
func SetLayout(id string) {
	selectedLayout = id
}

// GetLayout returns the selected layout ID.
func GetLayout() string {
	return selectedLayout
}

// SetLogger sets the logger passed to new sessions.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// New creates a game at the given difficulty.
func New(d bcore.Difficulty) *Game {
	return &Game{difficulty: d}
}

func init() {
	for _, d := range []bcore.Difficulty{bcore.DifficultyEasy, bcore.DifficultyMedium, bcore.DifficultyHard} {
		registry.Register(IDFor(d), func() registry.Game {
			return New(d)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return IDFor(g.difficulty)
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.difficulty {
	case bcore.DifficultyEasy:
		return "Blockdoku (Easy)"
	case bcore.DifficultyHard:
		return "Blockdoku (Hard)"
	default:
		return "Blockdoku"
	}
}

// Reset loads the config and starts a new session seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.cursorRow, g.cursorCol = bcore.Size/2, bcore.Size/2
	g.selected = 0
	g.flash = nil
	g.flashLeft = 0
	g.paused = false
	g.message = ""
	g.runID = uuid.NewString()

	gameCfg, err := config.LoadBlockdoku(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		g.message = "config error, using defaults"
		gameCfg = config.DefaultBlockdokuConfig()
	}

	opts, err := SessionOptions(gameCfg, selectedLayout, logger)
	if err != nil {
		logger.Warn("ignoring layout", "layout", selectedLayout, "err", err)
		g.message = "layout error, starting empty"
		opts, _ = SessionOptions(gameCfg, "", logger)
	}
	opts = append(opts, bcore.WithDifficulty(g.difficulty), bcore.WithSeed(cfg.Seed))

	session, err := bcore.NewSession(opts...)
	if err != nil {
		logger.Error("cannot start session", "err", err)
		session, _ = bcore.NewSession(bcore.WithDifficulty(g.difficulty), bcore.WithSeed(cfg.Seed))
	}
	g.session = session
	logger.Info("new game", "game", g.ID(), "run", g.runID, "seed", cfg.Seed)

	g.checkScreenSize()
}

// Resize updates the screen size and keeps the session.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minWidth || g.screenH < minHeight
}

// Step processes one tick of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.flashLeft > 0 {
		g.flashLeft--
		if g.flashLeft == 0 {
			g.flash = nil
		}
	}

	if g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.session.State() == bcore.StateGameOver {
		return g.result()
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	for i, a := range core.SlotActions {
		if in.Has(a) {
			g.selectSlot(i)
		}
	}
	if in.Has(core.ActionNextSlot) {
		g.nextSlot()
	}

	if in.Has(core.ActionConfirm) {
		g.place()
	}
	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Message: g.message}
}

func (g *Game) moveCursor(dRow, dCol int) {
	g.cursorRow = core.Clamp(g.cursorRow+dRow, 0, bcore.Size-1)
	g.cursorCol = core.Clamp(g.cursorCol+dCol, 0, bcore.Size-1)
}

func (g *Game) selectSlot(i int) {
	slots := g.session.Slots()
	if i < 0 || i >= len(slots) {
		return
	}
	if slots[i].IsZero() {
		g.message = fmt.Sprintf("slot %d is empty", i+1)
		return
	}
	g.selected = i
	g.message = ""
}

// nextSlot moves the selection to the next non-empty slot, wrapping.
func (g *Game) nextSlot() {
	slots := g.session.Slots()
	for step := 1; step <= len(slots); step++ {
		i := core.Wrap(g.selected+step, len(slots))
		if !slots[i].IsZero() {
			g.selected = i
			return
		}
	}
}

func (g *Game) place() {
	res := g.session.AttemptPlacement(g.selected, g.cursorRow, g.cursorCol)
	if !res.Accepted {
		switch {
		case errors.Is(res.Reason, bcore.ErrInvalidPlacement):
			g.message = "doesn't fit there"
		case errors.Is(res.Reason, bcore.ErrEmptySlot):
			g.message = "that slot is empty"
		default:
			g.message = res.Reason.Error()
		}
		return
	}

	g.message = ""
	switch {
	case res.Clear.Lines() > 0:
		g.message = fmt.Sprintf("+%d  %d cleared", res.ScoreDelta, res.Clear.Lines())
		g.flash = res.Cleared()
		g.flashLeft = flashTicks
	case len(res.Exploded) > 0:
		g.message = "BOOM"
	case res.SpawnedBomb >= 0:
		g.message = "a bomb appeared"
	}
	if res.GameOver {
		g.message = "no shape fits"
	}

	if g.session.Slots()[g.selected].IsZero() {
		g.nextSlot()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.State() == bcore.StateGameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Session exposes the underlying state machine.
func (g *Game) Session() *bcore.Session {
	return g.session
}

// Summary describes the run for score storage.
func (g *Game) Summary() core.RunSummary {
	st := g.session.Stats()
	return core.RunSummary{
		RunID:         g.runID,
		Score:         g.session.Score(),
		Placements:    st.Placements,
		LinesCleared:  st.LinesCleared,
		BombsDefused:  st.BombsDefused,
		BombsExploded: st.BombsExploded,
	}
}

var (
	_ registry.Summarizer = (*Game)(nil)
	_ registry.Resizer    = (*Game)(nil)
)
