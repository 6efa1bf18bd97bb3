package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-blockdoku/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColored(0, 0, "██", core.ColorPurple)
	s.DrawTextColored(2, 0, " 7", core.ColorGreen)
	s.DrawText(4, 1, "plain")
	s.DrawTextColored(0, 2, "××", core.Color(200)) // unmapped falls back to default

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	for i, line := range lines {
		assert.Equal(t, 12, lipgloss.Width(line), "line %d", i)
	}
	assert.Contains(t, out, "██")
	assert.Contains(t, out, "plain")
	assert.Contains(t, out, "××")
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorBrightGreen; c++ {
		_, ok := colorStyles[c]
		assert.True(t, ok, "color %d", c)
	}
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "   ab", centerText("ab", 8))
	assert.Equal(t, "abcdef", centerText("abcdef", 4))
}
