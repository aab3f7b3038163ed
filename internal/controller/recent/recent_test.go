package recent

import (
	"reflect"
	"testing"
)

func TestAdd(t *testing.T) {
	cases := []struct {
		name string
		list []string
		q    string
		want []string
	}{
		{name: "first entry", list: nil, q: "Jayson Tatum", want: []string{"Jayson Tatum"}},
		{name: "latest casing wins", list: []string{"LeBron James"}, q: "lebron james", want: []string{"lebron james"}},
		{name: "moves duplicate to front", list: []string{"a", "b", "c"}, q: "C", want: []string{"C", "a", "b"}},
		{name: "trims query", list: []string{"a"}, q: "  b  ", want: []string{"b", "a"}},
		{name: "blank ignored", list: []string{"a", "b"}, q: "   ", want: []string{"a", "b"}},
		{name: "collapses duplicates already in list", list: []string{"a", "A"}, q: "b", want: []string{"b", "a"}},
		{name: "drops blanks already in list", list: []string{" a ", "", "c"}, q: "b", want: []string{"b", "a", "c"}},
		{name: "bounded", list: []string{"a", "b", "c", "d", "e"}, q: "f", want: []string{"f", "a", "b", "c", "d"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Add(tc.list, tc.q)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestAdd_DoesNotMutateInput(t *testing.T) {
	list := make([]string, 3, 10)
	copy(list, []string{"a", "b", "c"})

	_ = Add(list, "z")
	if !reflect.DeepEqual(list, []string{"a", "b", "c"}) {
		t.Fatalf("input mutated: %v", list)
	}
}

func TestAdd_RapidRepeatedSearchesKeepFiveDistinct(t *testing.T) {
	var list []string
	for _, q := range []string{"a", "b", "A", "c", "d", "e", "f", "b", "B"} {
		list = Add(list, q)
		if len(list) > Limit {
			t.Fatalf("list exceeded limit: %v", list)
		}
	}
	want := []string{"B", "f", "e", "d", "c"}
	if !reflect.DeepEqual(list, want) {
		t.Fatalf("expected %v, got %v", want, list)
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize([]string{"x", " ", "X", "y", "z", "w", "v", "u"})
	want := []string{"x", "y", "z", "w", "v"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
