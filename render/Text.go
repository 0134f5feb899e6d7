// Package render draws environment state for inspection. Renderers
// only read the exported state of an environment and never change it.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/logrusorgru/aurora"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/gopomdp/environment/pomdp"
)

// Track is a one dimensional track with a car, a heaven and hell flag
// at either end, and a priest in between
type Track interface {
	Position() float64
	HeavenPosition() float64
	HellPosition() float64
	PriestPosition() float64
	Bounds() r1.Interval
}

// Symbols drawn by the text renderer
const (
	CarSymbol    = 'C'
	HeavenSymbol = 'H'
	HellSymbol   = 'X'
	PriestSymbol = 'P'
	AgentSymbol  = '@'
	RoadSymbol   = '-'
	WallSymbol   = '#'
	CellSymbol   = '.'
)

// Text renders environments as coloured text
type Text struct {
	au aurora.Aurora
}

// NewText returns a new text renderer. If colours is false, no ANSI
// escape codes are written.
func NewText(colours bool) *Text {
	return &Text{au: aurora.NewAurora(colours)}
}

// Track writes a single line of width characters picturing t to w
func (r *Text) Track(w io.Writer, t Track, width int) error {
	if width < 2 {
		return fmt.Errorf("track: width must be at least 2, got %v", width)
	}

	line := make([]rune, width)
	for i := range line {
		line[i] = RoadSymbol
	}
	bounds := t.Bounds()
	line[column(t.PriestPosition(), bounds, width)] = PriestSymbol
	line[column(t.HeavenPosition(), bounds, width)] = HeavenSymbol
	line[column(t.HellPosition(), bounds, width)] = HellSymbol
	line[column(t.Position(), bounds, width)] = CarSymbol

	var b strings.Builder
	for _, c := range line {
		b.WriteString(r.colour(c).String())
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// Maze writes the Heaven-Hell maze with the agent in state to w
func (r *Text) Maze(w io.Writer, state int) error {
	if state < 0 || state >= pomdp.States {
		return fmt.Errorf("maze: illegal state %v", state)
	}

	var grid [mazeRows][mazeCols]rune
	for i := range grid {
		for j := range grid[i] {
			grid[i][j] = WallSymbol
		}
	}
	for c, cell := range mazeCells {
		grid[cell[0]][cell[1]] = CellSymbol
		switch c {
		case pomdp.PriestCell:
			grid[cell[0]][cell[1]] = PriestSymbol
		case pomdp.LeftCell, pomdp.RightCell:
			if pomdp.Reward(state-state%pomdp.Cells+c) > 0 {
				grid[cell[0]][cell[1]] = HeavenSymbol
			} else {
				grid[cell[0]][cell[1]] = HellSymbol
			}
		}
	}
	agent := mazeCells[state%pomdp.Cells]
	grid[agent[0]][agent[1]] = AgentSymbol

	var b strings.Builder
	for i := range grid {
		for _, c := range grid[i] {
			b.WriteString(r.colour(c).String())
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Text) colour(c rune) aurora.Value {
	s := string(c)
	switch c {
	case HeavenSymbol:
		return r.au.Green(s)
	case HellSymbol:
		return r.au.Red(s)
	case PriestSymbol:
		return r.au.Blue(s)
	case CarSymbol, AgentSymbol:
		return r.au.Bold(r.au.Yellow(s))
	case WallSymbol:
		return r.au.BrightBlack(s)
	}
	return r.au.White(s)
}

// column returns the column of a width character line at which
// position lies
func column(position float64, bounds r1.Interval, width int) int {
	frac := (position - bounds.Min) / (bounds.Max - bounds.Min)
	col := int(math.Round(frac * float64(width-1)))
	if col < 0 {
		return 0
	} else if col >= width {
		return width - 1
	}
	return col
}

const (
	mazeRows = 4
	mazeCols = 5
)

// mazeCells[c] is the row and column at which cell c is drawn
var mazeCells = [pomdp.Cells][2]int{
	{2, 2}, // 0
	{1, 2}, // 1
	{0, 2}, // 2
	{0, 1}, // 3
	{0, 0}, // 4
	{0, 3}, // 5
	{0, 4}, // 6
	{3, 2}, // 7
	{3, 3}, // 8
	{3, 4}, // 9
}
