package explorer

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/riskibarqy/courtside/internal/controller"
	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/view/pagination"
	"github.com/riskibarqy/courtside/internal/view/sorting"
)

func games(n int) []game.Game {
	out := make([]game.Game, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, game.Game{
			ID:       fmt.Sprintf("g%02d", i),
			Date:     time.Date(2025, 1, 1+i, 0, 0, 0, 0, time.UTC),
			HomeTeam: "BOS",
			AwayTeam: "LAL",
		})
	}
	return out
}

func mustReduce(t *testing.T, s State, a Action) State {
	t.Helper()
	next, err := Reduce(s, a)
	if err != nil {
		t.Fatalf("reduce %T: %v", a, err)
	}
	return next
}

func TestReduce_FullFirstPageEstimatesTenPages(t *testing.T) {
	s := mustReduce(t, Initial(), LoadStart{ResetPage: true})
	if !s.Loading {
		t.Fatalf("expected loading")
	}
	s = mustReduce(t, s, LoadSuccess{Seq: s.Seq, Games: games(25), Page: 1, PageSize: 25})

	if s.CurrentPage != 1 || s.TotalGames != 250 || s.TotalPages != 10 {
		t.Fatalf("expected page 1 of 10 with 250 games, got page=%d pages=%d total=%d", s.CurrentPage, s.TotalPages, s.TotalGames)
	}
	if s.Loading || s.TotalExact {
		t.Fatalf("unexpected flags %+v", s)
	}
}

func TestReduce_ShortPageCollapsesToOnePage(t *testing.T) {
	s := mustReduce(t, Initial(), SetPage{Page: 3})
	s = mustReduce(t, s, LoadStart{})
	s = mustReduce(t, s, LoadSuccess{Seq: s.Seq, Games: games(7), Page: 3, PageSize: 25})

	if s.TotalGames != 7 || s.TotalPages != 1 {
		t.Fatalf("expected 7 games on 1 page, got total=%d pages=%d", s.TotalGames, s.TotalPages)
	}
	if s.CurrentPage != 1 {
		t.Fatalf("current page must be clamped to the page count, got %d", s.CurrentPage)
	}
}

func TestReduce_FilterChangeResetsResults(t *testing.T) {
	loaded := func() State {
		s := mustReduce(t, Initial(), LoadStart{ResetPage: true})
		s = mustReduce(t, s, LoadSuccess{Seq: s.Seq, Games: games(25), Page: 1, PageSize: 25})
		return mustReduce(t, s, SetPage{Page: 4})
	}

	for _, a := range []Action{SetTeam{Team: "mia"}, SetSeason{Season: "2023-24"}, SetPageSize{Size: 50}} {
		s := mustReduce(t, loaded(), a)
		if s.CurrentPage != 1 || s.Games != nil || s.TotalGames != 0 || s.TotalPages != 0 || s.Loaded {
			t.Fatalf("%T: expected reset state, got %+v", a, s)
		}
	}
}

func TestReduce_IgnoresSupersededLoads(t *testing.T) {
	s := mustReduce(t, Initial(), LoadStart{ResetPage: true})
	stale := s.Seq

	s = mustReduce(t, s, SetPageSize{Size: 50})
	if s.Loading {
		t.Fatalf("changing page size must abandon the in-flight load")
	}
	s = mustReduce(t, s, LoadStart{})

	s = mustReduce(t, s, LoadSuccess{Seq: stale, Games: games(25), Page: 1, PageSize: 25})
	if !s.Loading || s.Loaded {
		t.Fatalf("stale success must be ignored, got %+v", s)
	}

	s = mustReduce(t, s, LoadSuccess{Seq: s.Seq, Games: games(50), Page: 1, PageSize: 50})
	if s.TotalGames != 500 || s.PageSize != 50 {
		t.Fatalf("unexpected state %+v", s)
	}
}

func TestReduce_RapidPageChangesApplyLatestOnly(t *testing.T) {
	s := mustReduce(t, Initial(), LoadStart{ResetPage: true})
	s = mustReduce(t, s, LoadSuccess{Seq: s.Seq, Games: games(25), Page: 1, PageSize: 25})

	s = mustReduce(t, s, SetPage{Page: 2})
	s = mustReduce(t, s, LoadStart{})
	pageTwo := s.Seq
	s = mustReduce(t, s, SetPage{Page: 3})
	s = mustReduce(t, s, LoadStart{})

	s = mustReduce(t, s, LoadSuccess{Seq: s.Seq, Games: games(25)[:10], Page: 3, PageSize: 25})
	s = mustReduce(t, s, LoadSuccess{Seq: pageTwo, Games: games(25), Page: 2, PageSize: 25})

	if len(s.Games) != 10 || s.TotalGames != 10 {
		t.Fatalf("late page-two response overwrote page three: %+v", s)
	}
}

func TestReduce_EmptyIsNotAnError(t *testing.T) {
	s := mustReduce(t, Initial(), LoadStart{ResetPage: true})
	if Empty(s) {
		t.Fatalf("loading state is not empty")
	}
	s = mustReduce(t, s, LoadSuccess{Seq: s.Seq, Games: nil, Page: 1, PageSize: 25})
	if !Empty(s) || s.Error != "" || s.TotalPages != 0 || s.CurrentPage != 1 {
		t.Fatalf("expected empty settled state, got %+v", s)
	}
}

func TestReduce_LoadErrorAndRetry(t *testing.T) {
	s := mustReduce(t, Initial(), LoadStart{ResetPage: true})
	s = mustReduce(t, s, LoadError{Seq: s.Seq, Message: "upstream timeout"})
	if s.Loading || s.Error != "upstream timeout" || Empty(s) {
		t.Fatalf("unexpected error state %+v", s)
	}
	s = mustReduce(t, s, LoadStart{})
	if s.Error != "" || !s.Loading {
		t.Fatalf("retry must clear error, got %+v", s)
	}
}

func TestReduce_AuthoritativeTotal(t *testing.T) {
	total := 1230
	s := mustReduce(t, Initial(), LoadStart{ResetPage: true})
	s = mustReduce(t, s, LoadSuccess{Seq: s.Seq, Games: games(25), Page: 1, PageSize: 25, Total: &total})
	if s.TotalGames != 1230 || s.TotalPages != 50 || !s.TotalExact {
		t.Fatalf("expected exact total, got %+v", s)
	}
}

type fixedEstimator struct{ total int }

func (f fixedEstimator) Estimate(in pagination.Input) pagination.Estimate {
	return pagination.Estimate{Total: f.total, Pages: pagination.Pages(f.total, in.PageSize)}
}

func TestReducer_UsesInjectedEstimator(t *testing.T) {
	r := NewReducer(fixedEstimator{total: 60})
	s, _ := r.Reduce(Initial(), LoadStart{ResetPage: true})
	s, _ = r.Reduce(s, LoadSuccess{Seq: s.Seq, Games: games(25), Page: 1, PageSize: 25})
	if s.TotalPages != 3 {
		t.Fatalf("expected estimator result, got %+v", s)
	}
}

func TestReduce_SortAndVisible(t *testing.T) {
	s := mustReduce(t, Initial(), LoadStart{ResetPage: true})
	s = mustReduce(t, s, LoadSuccess{Seq: s.Seq, Games: games(3), Page: 1, PageSize: 25})

	visible := Visible(s)
	if visible[0].ID != "g02" {
		t.Fatalf("default sort should be newest first, got %s", visible[0].ID)
	}
	if s.Games[0].ID != "g00" {
		t.Fatalf("sorting must not reorder state")
	}

	s = mustReduce(t, s, SetSort{Column: sorting.ColumnDate})
	if s.SortDirection != sorting.Asc {
		t.Fatalf("same column should toggle, got %s", s.SortDirection)
	}
	s = mustReduce(t, s, SetSort{Column: sorting.ColumnScore})
	if s.SortColumn != sorting.ColumnScore || s.SortDirection != sorting.Asc {
		t.Fatalf("new column should start ascending, got %s %s", s.SortColumn, s.SortDirection)
	}
	s = mustReduce(t, s, SetSort{Column: sorting.ColumnHomeTeam, Direction: sorting.Desc})
	if s.SortDirection != sorting.Desc {
		t.Fatalf("explicit direction should win")
	}
}

func TestReduce_RejectsInvalidInput(t *testing.T) {
	s := Initial()
	for _, a := range []Action{SetPage{Page: 0}, SetPageSize{Size: 20}, SetSeason{Season: " "}} {
		next, err := Reduce(s, a)
		if !errors.Is(err, controller.ErrRejected) {
			t.Fatalf("%T: expected rejection, got %v", a, err)
		}
		if !reflect.DeepEqual(next, s) {
			t.Fatalf("%T: rejected action changed state", a)
		}
	}
}

func TestQuery(t *testing.T) {
	s := mustReduce(t, Initial(), SetTeam{Team: "den"})
	s = mustReduce(t, s, SetPage{Page: 3})
	q := Query(s)
	want := game.Filter{Team: "DEN", Season: DefaultSeason, Limit: 25, Offset: 50}
	if q != want {
		t.Fatalf("expected %+v, got %+v", want, q)
	}
}
