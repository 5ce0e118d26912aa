package grammar

import (
	"reflect"
	"testing"
)

func TestSymbolSet(t *testing.T) {
	set := NewSymbolSet("a", "b", "b")

	if len(set) != 2 {
		t.Fatalf("size of the set is mismatched; want: %v, got: %v", 2, len(set))
	}
	if !set.Has("a") || !set.Has("b") {
		t.Fatalf("the set lacks a registered symbol; set: %v", set)
	}
	if set.Has("c") {
		t.Fatalf("the set contains an unregistered symbol; set: %v", set)
	}

	set.Add("c")
	if !set.Has("c") {
		t.Fatalf("the set lacks an added symbol; set: %v", set)
	}
}

func TestSymbolSet_Operations(t *testing.T) {
	tests := []struct {
		caption      string
		x            SymbolSet
		y            SymbolSet
		union        []Symbol
		intersection []Symbol
		equal        bool
	}{
		{
			caption:      "disjoint sets",
			x:            NewSymbolSet("a", "b"),
			y:            NewSymbolSet("S"),
			union:        []Symbol{"S", "a", "b"},
			intersection: []Symbol{},
			equal:        false,
		},
		{
			caption:      "overlapping sets",
			x:            NewSymbolSet("a", "b"),
			y:            NewSymbolSet("b", "c"),
			union:        []Symbol{"a", "b", "c"},
			intersection: []Symbol{"b"},
			equal:        false,
		},
		{
			caption:      "equal sets",
			x:            NewSymbolSet("a", "b"),
			y:            NewSymbolSet("b", "a"),
			union:        []Symbol{"a", "b"},
			intersection: []Symbol{"a", "b"},
			equal:        true,
		},
		{
			caption:      "empty sets",
			x:            NewSymbolSet(),
			y:            NewSymbolSet(),
			union:        []Symbol{},
			intersection: []Symbol{},
			equal:        true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			if u := tt.x.Union(tt.y).Slice(); !reflect.DeepEqual(u, tt.union) {
				t.Fatalf("union is mismatched; want: %v, got: %v", tt.union, u)
			}
			if i := tt.x.Intersection(tt.y).Slice(); !reflect.DeepEqual(i, tt.intersection) {
				t.Fatalf("intersection is mismatched; want: %v, got: %v", tt.intersection, i)
			}
			if eq := tt.x.Equal(tt.y); eq != tt.equal {
				t.Fatalf("equality is mismatched; want: %v, got: %v", tt.equal, eq)
			}
		})
	}
}

func TestSymbolSet_Slice(t *testing.T) {
	set := NewSymbolSet("c", "a", "b")
	want := []Symbol{"a", "b", "c"}
	if got := set.Slice(); !reflect.DeepEqual(got, want) {
		t.Fatalf("slice is mismatched; want: %v, got: %v", want, got)
	}
}
