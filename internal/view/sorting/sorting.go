package sorting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/courtside/internal/domain/game"
)

type Column string

const (
	ColumnDate     Column = "date"
	ColumnHomeTeam Column = "home_team"
	ColumnAwayTeam Column = "away_team"
	ColumnScore    Column = "score"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

func ParseColumn(raw string) (Column, error) {
	switch c := Column(strings.ToLower(strings.TrimSpace(raw))); c {
	case ColumnDate, ColumnHomeTeam, ColumnAwayTeam, ColumnScore:
		return c, nil
	default:
		return "", fmt.Errorf("unknown sort column: %q", raw)
	}
}

func ParseDirection(raw string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(raw))); d {
	case Asc, Desc:
		return d, nil
	default:
		return "", fmt.Errorf("unknown sort direction: %q", raw)
	}
}

// Toggle flips the direction; anything other than asc becomes asc.
func Toggle(d Direction) Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// Games returns a sorted copy of in. The input slice is never reordered. An unknown column
// yields a copy in input order.
func Games(in []game.Game, column Column, dir Direction) []game.Game {
	out := make([]game.Game, len(in))
	copy(out, in)

	less := lessFor(column)
	if less == nil {
		return out
	}
	if dir == Desc {
		sort.SliceStable(out, func(i, j int) bool { return less(out[j], out[i]) })
		return out
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func lessFor(column Column) func(a, b game.Game) bool {
	switch column {
	case ColumnDate:
		return func(a, b game.Game) bool { return a.Date.Before(b.Date) }
	case ColumnHomeTeam:
		return func(a, b game.Game) bool { return a.HomeTeam < b.HomeTeam }
	case ColumnAwayTeam:
		return func(a, b game.Game) bool { return a.AwayTeam < b.AwayTeam }
	case ColumnScore:
		return func(a, b game.Game) bool { return a.TotalPoints() < b.TotalPoints() }
	default:
		return nil
	}
}
