package grammar

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"strings"
)

type ProductionID [32]byte

func (id ProductionID) String() string {
	return hex.EncodeToString(id[:])
}

// genProductionID derives an identifier from the symbol texts. Each text is
// length-prefixed so that distinct symbol sequences can never encode to the
// same byte sequence.
func genProductionID(lhs Symbol, rhs []Symbol) ProductionID {
	seq := appendSymbolBytes(nil, lhs)
	for _, sym := range rhs {
		seq = appendSymbolBytes(seq, sym)
	}
	return ProductionID(sha256.Sum256(seq))
}

func appendSymbolBytes(seq []byte, sym Symbol) []byte {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(sym)))
	seq = append(seq, length[:]...)
	return append(seq, sym...)
}

// Production is a rewrite rule. RHS is an ordered sequence and may contain
// any symbol of the grammar, terminal or nonterminal, in any position.
type Production struct {
	LHS Symbol
	RHS []Symbol
}

func (p Production) ID() ProductionID {
	return genProductionID(p.LHS, p.RHS)
}

func (p Production) Equal(q Production) bool {
	if p.LHS != q.LHS || len(p.RHS) != len(q.RHS) {
		return false
	}
	for i, sym := range p.RHS {
		if q.RHS[i] != sym {
			return false
		}
	}
	return true
}

func (p Production) String() string {
	var b strings.Builder
	b.WriteString(string(p.LHS))
	b.WriteString(" ->")
	for _, sym := range p.RHS {
		b.WriteString(" ")
		b.WriteString(string(sym))
	}
	return b.String()
}

func (p Production) isEmpty() bool {
	return len(p.RHS) == 0
}

func (p Production) clone() Production {
	return Production{
		LHS: p.LHS,
		RHS: append([]Symbol(nil), p.RHS...),
	}
}

// productionTable holds the productions in insertion order together with a
// LHS-keyed index. The index stores positions, not copies, so a filtered
// lookup preserves the original order.
type productionTable struct {
	prods    []Production
	lhs2Pos  map[Symbol][]int
	adjacent map[Symbol]SymbolSet
}

func newProductionTable(prods []Production) *productionTable {
	t := &productionTable{
		prods:    make([]Production, len(prods)),
		lhs2Pos:  map[Symbol][]int{},
		adjacent: map[Symbol]SymbolSet{},
	}
	for i, prod := range prods {
		t.prods[i] = prod.clone()
		t.lhs2Pos[prod.LHS] = append(t.lhs2Pos[prod.LHS], i)
		adj, ok := t.adjacent[prod.LHS]
		if !ok {
			adj = SymbolSet{}
			t.adjacent[prod.LHS] = adj
		}
		for _, sym := range prod.RHS {
			adj.Add(sym)
		}
	}
	return t
}

func (t *productionTable) findByLHS(lhs Symbol) []Production {
	positions := t.lhs2Pos[lhs]
	prods := make([]Production, len(positions))
	for i, pos := range positions {
		prods[i] = t.prods[pos].clone()
	}
	return prods
}

// hasAdjacency reports whether some production rewrites lhs and contains rhs
// anywhere in its right-hand side.
func (t *productionTable) hasAdjacency(lhs, rhs Symbol) bool {
	adj, ok := t.adjacent[lhs]
	if !ok {
		return false
	}
	return adj.Has(rhs)
}

func (t *productionTable) len() int {
	return len(t.prods)
}

func (t *productionTable) all() []Production {
	prods := make([]Production, len(t.prods))
	for i, prod := range t.prods {
		prods[i] = prod.clone()
	}
	return prods
}
