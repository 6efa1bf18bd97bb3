package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku/core"
)

func TestCatalogSizes(t *testing.T) {
	assert.Len(t, core.All(), 31)
	assert.Len(t, core.ByDifficulty(core.DifficultyEasy), 7)
	assert.Len(t, core.ByDifficulty(core.DifficultyMedium), 12)
	assert.Len(t, core.ByDifficulty(core.DifficultyHard), 23)
}

func TestCatalogNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range core.All() {
		if seen[s.Name()] {
			t.Errorf("duplicate name %s", s.Name())
		}
		seen[s.Name()] = true
	}
}

func TestDifficultySubsetsComeFromCatalog(t *testing.T) {
	for _, d := range []core.Difficulty{core.DifficultyEasy, core.DifficultyMedium, core.DifficultyHard} {
		for _, s := range core.ByDifficulty(d) {
			got, ok := core.Lookup(s.Name())
			require.True(t, ok, "%s/%s", d, s.Name())
			assert.True(t, got.Equal(s))
		}
	}
}

func TestLookup(t *testing.T) {
	s, ok := core.Lookup("cross_large")
	require.True(t, ok)
	assert.Equal(t, 9, s.Size())

	_, ok = core.Lookup("HEXAGON")
	assert.False(t, ok)
}

func TestRandomByDifficultyStaysInPool(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	easy := core.ByDifficulty(core.DifficultyEasy)
	for i := 0; i < 200; i++ {
		s := core.RandomByDifficulty(rng, core.DifficultyEasy)
		found := false
		for _, e := range easy {
			if e.Name() == s.Name() {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("draw %d: %s not in easy pool", i, s.Name())
		}
	}
}

func TestRandomThreeScripted(t *testing.T) {
	rng := core.NewScriptedRand(1, 5, 6)
	got := core.RandomThree(rng, core.DifficultyEasy)
	require.Len(t, got, 3)
	assert.Equal(t, "HORIZONTAL_2", got[0].Name())
	assert.Equal(t, "SQUARE_2", got[1].Name())
	assert.Equal(t, "CORNER_SMALL", got[2].Name())
}

func TestRandomUsesFullCatalog(t *testing.T) {
	s := core.Random(core.NewScriptedRand(30))
	assert.Equal(t, "CROSS_LARGE", s.Name())
}

func TestRandomWithMaxSize(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		s, err := core.RandomWithMaxSize(rng, 2)
		require.NoError(t, err)
		assert.LessOrEqual(t, s.Size(), 2)
	}

	_, err := core.RandomWithMaxSize(rng, 0)
	assert.ErrorIs(t, err, core.ErrNoShapeFits)
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    core.Difficulty
		wantErr bool
	}{
		{"easy", core.DifficultyEasy, false},
		{"MEDIUM", core.DifficultyMedium, false},
		{"normal", core.DifficultyMedium, false},
		{"hard", core.DifficultyHard, false},
		{"nightmare", core.DifficultyMedium, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := core.ParseDifficulty(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
