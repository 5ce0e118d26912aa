package grammar

import "sort"

// Symbol is an opaque textual token of a grammar. Whether a symbol is
// terminal or nonterminal is a property of the grammar it belongs to, not of
// the symbol itself.
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

// SymbolSet is a set of symbols keyed by their text.
type SymbolSet map[Symbol]struct{}

func NewSymbolSet(syms ...Symbol) SymbolSet {
	set := SymbolSet{}
	for _, sym := range syms {
		set.Add(sym)
	}
	return set
}

func (set SymbolSet) Has(sym Symbol) bool {
	_, ok := set[sym]
	return ok
}

func (set SymbolSet) Add(sym Symbol) {
	set[sym] = struct{}{}
}

func (set SymbolSet) Union(other SymbolSet) SymbolSet {
	u := SymbolSet{}
	for sym := range set {
		u.Add(sym)
	}
	for sym := range other {
		u.Add(sym)
	}
	return u
}

func (set SymbolSet) Intersection(other SymbolSet) SymbolSet {
	i := SymbolSet{}
	for sym := range set {
		if other.Has(sym) {
			i.Add(sym)
		}
	}
	return i
}

func (set SymbolSet) Equal(other SymbolSet) bool {
	if len(set) != len(other) {
		return false
	}
	for sym := range set {
		if !other.Has(sym) {
			return false
		}
	}
	return true
}

func (set SymbolSet) clone() SymbolSet {
	c := make(SymbolSet, len(set))
	for sym := range set {
		c.Add(sym)
	}
	return c
}

// Slice returns the members in lexicographic order.
func (set SymbolSet) Slice() []Symbol {
	syms := make([]Symbol, 0, len(set))
	for sym := range set {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	return syms
}
