package team

import "testing"

func TestCatalog_HasEveryFranchiseWithStyle(t *testing.T) {
	teams := Catalog()
	if len(teams) != 30 {
		t.Fatalf("expected 30 teams, got %d", len(teams))
	}

	for i, tm := range teams {
		if i > 0 && teams[i-1].Abbr >= tm.Abbr {
			t.Fatalf("catalog not sorted at %d: %s >= %s", i, teams[i-1].Abbr, tm.Abbr)
		}
		if StyleFor(tm.Abbr) == DefaultStyle {
			t.Fatalf("team %s has no dedicated style", tm.Abbr)
		}
	}
}

func TestStyleFor_FallsBackToDefault(t *testing.T) {
	if got := StyleFor("XYZ"); got != DefaultStyle {
		t.Fatalf("expected default style, got %+v", got)
	}
	if got := StyleFor(""); got != DefaultStyle {
		t.Fatalf("expected default style for empty id, got %+v", got)
	}
	if got := StyleFor(" bos "); got != styles["BOS"] {
		t.Fatalf("expected lookup to normalize abbreviation, got %+v", got)
	}
}

func TestLookup(t *testing.T) {
	tm, ok := Lookup("lal")
	if !ok || tm.Name != "Los Angeles Lakers" {
		t.Fatalf("unexpected lookup result: %+v ok=%v", tm, ok)
	}
	if _, ok := Lookup("ZZZ"); ok {
		t.Fatalf("unknown team must not resolve")
	}
}
