package sorting

import (
	"reflect"
	"testing"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/game"
)

func score(v int) *int { return &v }

func fixture() []game.Game {
	day := func(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }
	return []game.Game{
		{ID: "g1", Date: day(3), HomeTeam: "LAL", AwayTeam: "BOS", HomeScore: score(101), AwayScore: score(99)},
		{ID: "g2", Date: day(1), HomeTeam: "BOS", AwayTeam: "MIA", HomeScore: score(120), AwayScore: score(115)},
		{ID: "g3", Date: day(2), HomeTeam: "DEN", AwayTeam: "GSW"},
		{ID: "g4", Date: day(5), HomeTeam: "ATL", AwayTeam: "CHI", HomeScore: score(90), AwayScore: score(88)},
	}
}

func ids(games []game.Game) []string {
	out := make([]string, 0, len(games))
	for _, g := range games {
		out = append(out, g.ID)
	}
	return out
}

func TestGames_OrdersByColumn(t *testing.T) {
	cases := []struct {
		column Column
		dir    Direction
		want   []string
	}{
		{ColumnDate, Asc, []string{"g2", "g3", "g1", "g4"}},
		{ColumnDate, Desc, []string{"g4", "g1", "g3", "g2"}},
		{ColumnHomeTeam, Asc, []string{"g4", "g2", "g3", "g1"}},
		{ColumnAwayTeam, Desc, []string{"g2", "g3", "g4", "g1"}},
		{ColumnScore, Desc, []string{"g2", "g1", "g4", "g3"}},
		{ColumnScore, Asc, []string{"g3", "g4", "g1", "g2"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.column)+"_"+string(tc.dir), func(t *testing.T) {
			got := ids(Games(fixture(), tc.column, tc.dir))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestGames_DoesNotMutateInput(t *testing.T) {
	in := fixture()
	before := ids(in)
	_ = Games(in, ColumnDate, Desc)
	if !reflect.DeepEqual(ids(in), before) {
		t.Fatalf("input reordered: %v", ids(in))
	}
}

func TestGames_UnknownColumnKeepsOrder(t *testing.T) {
	in := fixture()
	out := Games(in, Column("venue"), Asc)
	if !reflect.DeepEqual(ids(out), ids(in)) {
		t.Fatalf("expected input order, got %v", ids(out))
	}
	out[0].ID = "changed"
	if in[0].ID == "changed" {
		t.Fatalf("fallback must still return a copy")
	}
}

func TestGames_Idempotent(t *testing.T) {
	for _, column := range []Column{ColumnDate, ColumnHomeTeam, ColumnAwayTeam, ColumnScore} {
		for _, dir := range []Direction{Asc, Desc} {
			once := Games(fixture(), column, dir)
			twice := Games(once, column, dir)
			if !reflect.DeepEqual(ids(once), ids(twice)) {
				t.Fatalf("%s/%s not idempotent: %v vs %v", column, dir, ids(once), ids(twice))
			}
		}
	}
}

func TestParse(t *testing.T) {
	if c, err := ParseColumn(" Score "); err != nil || c != ColumnScore {
		t.Fatalf("unexpected column parse: %v %v", c, err)
	}
	if _, err := ParseColumn("venue"); err == nil {
		t.Fatalf("expected error for unknown column")
	}
	if d, err := ParseDirection("DESC"); err != nil || d != Desc {
		t.Fatalf("unexpected direction parse: %v %v", d, err)
	}
	if Toggle(Asc) != Desc || Toggle(Desc) != Asc {
		t.Fatalf("toggle must flip direction")
	}
}
