package core

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty selects which subset of the catalog shapes are drawn from.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// String returns the lower-case name of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty accepts "easy", "medium" (or "normal") and "hard".
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium", "normal", "":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return DifficultyMedium, fmt.Errorf("unknown difficulty %q", s)
	}
}

// ErrNoShapeFits is returned by RandomWithMaxSize when no shape is small enough.
var ErrNoShapeFits = errors.New("no catalog shape within size limit")

// Rand is the random source used for shape draws and bomb spawns.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

func o(row, col int) Offset { return Offset{Row: row, Col: col} }

// Catalog shapes.
var (
	Single      = MustShape("SINGLE", ColorYellow, o(0, 0))
	Horizontal2 = MustShape("HORIZONTAL_2", ColorCyan, o(0, 0), o(0, 1))
	Vertical2   = MustShape("VERTICAL_2", ColorCyan, o(0, 0), o(1, 0))
	Horizontal3 = MustShape("HORIZONTAL_3", ColorCyan, o(0, 0), o(0, 1), o(0, 2))
	Vertical3   = MustShape("VERTICAL_3", ColorCyan, o(0, 0), o(1, 0), o(2, 0))
	Horizontal4 = MustShape("HORIZONTAL_4", ColorBlue, o(0, 0), o(0, 1), o(0, 2), o(0, 3))
	Vertical4   = MustShape("VERTICAL_4", ColorBlue, o(0, 0), o(1, 0), o(2, 0), o(3, 0))
	Horizontal5 = MustShape("HORIZONTAL_5", ColorBlue, o(0, 0), o(0, 1), o(0, 2), o(0, 3), o(0, 4))
	Vertical5   = MustShape("VERTICAL_5", ColorBlue, o(0, 0), o(1, 0), o(2, 0), o(3, 0), o(4, 0))

	Square2 = MustShape("SQUARE_2", ColorYellow,
		o(0, 0), o(0, 1),
		o(1, 0), o(1, 1))
	Square3 = MustShape("SQUARE_3", ColorOrange,
		o(0, 0), o(0, 1), o(0, 2),
		o(1, 0), o(1, 1), o(1, 2),
		o(2, 0), o(2, 1), o(2, 2))

	LShape    = MustShape("L_SHAPE", ColorOrange, o(0, 0), o(1, 0), o(2, 0), o(2, 1))
	LShape90  = MustShape("L_SHAPE_90", ColorOrange, o(0, 0), o(0, 1), o(0, 2), o(1, 0))
	LShape180 = MustShape("L_SHAPE_180", ColorOrange, o(0, 0), o(0, 1), o(1, 1), o(2, 1))
	LShape270 = MustShape("L_SHAPE_270", ColorOrange, o(0, 2), o(1, 0), o(1, 1), o(1, 2))

	LReverse    = MustShape("L_REVERSE", ColorPurple, o(0, 1), o(1, 1), o(2, 0), o(2, 1))
	LReverse90  = MustShape("L_REVERSE_90", ColorPurple, o(0, 0), o(1, 0), o(1, 1), o(1, 2))
	LReverse180 = MustShape("L_REVERSE_180", ColorPurple, o(0, 0), o(0, 1), o(1, 0), o(2, 0))
	LReverse270 = MustShape("L_REVERSE_270", ColorPurple, o(0, 0), o(0, 1), o(0, 2), o(1, 2))

	TShape    = MustShape("T_SHAPE", ColorMagenta, o(0, 0), o(0, 1), o(0, 2), o(1, 1))
	TShape90  = MustShape("T_SHAPE_90", ColorMagenta, o(0, 1), o(1, 0), o(1, 1), o(2, 1))
	TShape180 = MustShape("T_SHAPE_180", ColorMagenta, o(0, 1), o(1, 0), o(1, 1), o(1, 2))
	TShape270 = MustShape("T_SHAPE_270", ColorMagenta, o(0, 0), o(1, 0), o(1, 1), o(2, 0))

	ZShape   = MustShape("Z_SHAPE", ColorRed, o(0, 0), o(0, 1), o(1, 1), o(1, 2))
	ZShape90 = MustShape("Z_SHAPE_90", ColorRed, o(0, 1), o(1, 0), o(1, 1), o(2, 0))
	SShape   = MustShape("S_SHAPE", ColorGreen, o(0, 1), o(0, 2), o(1, 0), o(1, 1))
	SShape90 = MustShape("S_SHAPE_90", ColorGreen, o(0, 0), o(1, 0), o(1, 1), o(2, 1))

	CornerSmall = MustShape("CORNER_SMALL", ColorGreen, o(0, 0), o(0, 1), o(1, 0))
	CornerLarge = MustShape("CORNER_LARGE", ColorGreen, o(0, 0), o(0, 1), o(0, 2), o(1, 0), o(2, 0))

	CrossSmall = MustShape("CROSS_SMALL", ColorRed, o(0, 1), o(1, 0), o(1, 1), o(1, 2), o(2, 1))
	CrossLarge = MustShape("CROSS_LARGE", ColorRed,
		o(0, 2),
		o(1, 2),
		o(2, 0), o(2, 1), o(2, 2), o(2, 3), o(2, 4),
		o(3, 2),
		o(4, 2))
)

var allShapes = []Shape{
	Single,
	Horizontal2, Vertical2,
	Horizontal3, Vertical3,
	Horizontal4, Vertical4,
	Horizontal5, Vertical5,
	Square2, Square3,
	LShape, LShape90, LShape180, LShape270,
	LReverse, LReverse90, LReverse180, LReverse270,
	TShape, TShape90, TShape180, TShape270,
	ZShape, ZShape90,
	SShape, SShape90,
	CornerSmall, CornerLarge,
	CrossSmall, CrossLarge,
}

var easyShapes = []Shape{
	Single,
	Horizontal2, Vertical2,
	Horizontal3, Vertical3,
	Square2,
	CornerSmall,
}

var mediumShapes = []Shape{
	Horizontal3, Vertical3,
	Horizontal4, Vertical4,
	Square2, Square3,
	LShape, LShape90,
	TShape, TShape90,
	ZShape, SShape,
}

var hardShapes = []Shape{
	Horizontal4, Vertical4,
	Horizontal5, Vertical5,
	Square3,
	LShape, LShape90, LShape180, LShape270,
	LReverse, LReverse90, LReverse180, LReverse270,
	TShape, TShape90, TShape180, TShape270,
	ZShape, ZShape90,
	SShape, SShape90,
	CornerLarge,
	CrossSmall,
}

// All returns every catalog shape.
func All() []Shape {
	return clone(allShapes)
}

// ByDifficulty returns the subset drawn from at the given difficulty.
// Unknown difficulties fall back to medium.
func ByDifficulty(d Difficulty) []Shape {
	return clone(pool(d))
}

// Lookup finds a catalog shape by name (case-insensitive).
func Lookup(name string) (Shape, bool) {
	for _, s := range allShapes {
		if strings.EqualFold(s.name, name) {
			return s, true
		}
	}
	return Shape{}, false
}

// Random draws uniformly from the full catalog.
func Random(rng Rand) Shape {
	return allShapes[rng.Intn(len(allShapes))]
}

// RandomByDifficulty draws uniformly from the subset for d.
func RandomByDifficulty(rng Rand, d Difficulty) Shape {
	p := pool(d)
	return p[rng.Intn(len(p))]
}

// RandomN performs n independent draws; repeats are allowed.
func RandomN(rng Rand, d Difficulty, n int) []Shape {
	out := make([]Shape, n)
	for i := range out {
		out[i] = RandomByDifficulty(rng, d)
	}
	return out
}

// RandomThree is RandomN with the standard three slots.
func RandomThree(rng Rand, d Difficulty) []Shape {
	return RandomN(rng, d, 3)
}

// RandomWithMaxSize draws uniformly from catalog shapes with at most maxCells cells.
func RandomWithMaxSize(rng Rand, maxCells int) (Shape, error) {
	var fits []Shape
	for _, s := range allShapes {
		if s.Size() <= maxCells {
			fits = append(fits, s)
		}
	}
	if len(fits) == 0 {
		return Shape{}, fmt.Errorf("max size %d: %w", maxCells, ErrNoShapeFits)
	}
	return fits[rng.Intn(len(fits))], nil
}

func pool(d Difficulty) []Shape {
	switch d {
	case DifficultyEasy:
		return easyShapes
	case DifficultyHard:
		return hardShapes
	default:
		return mediumShapes
	}
}

func clone(shapes []Shape) []Shape {
	out := make([]Shape, len(shapes))
	copy(out, shapes)
	return out
}
