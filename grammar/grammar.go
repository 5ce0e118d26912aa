package grammar

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/aflah02/cfg-generator/parser"
)

// Grammar is a context-free grammar: disjoint terminal and nonterminal
// vocabularies plus an ordered sequence of productions. A Grammar is
// immutable once constructed; all accessors return copies, so a single
// instance is safe for concurrent read-only use.
type Grammar struct {
	terminals    SymbolSet
	nonterminals SymbolSet
	allSymbols   SymbolSet
	prods        *productionTable
}

// NewGrammar validates the caller-supplied vocabularies and productions and
// builds a grammar from them. Construction either fully succeeds or returns
// an error; a partially-valid grammar is never produced.
func NewGrammar(terminals, nonterminals SymbolSet, prods []Production) (*Grammar, error) {
	g := &Grammar{
		terminals:    terminals.clone(),
		nonterminals: nonterminals.clone(),
		allSymbols:   terminals.Union(nonterminals),
		prods:        newProductionTable(prods),
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate re-runs the construction-time checks against the stored sets and
// productions. For a grammar built by NewGrammar it always returns nil.
func (g *Grammar) Validate() error {
	if overlap := g.terminals.Intersection(g.nonterminals); len(overlap) > 0 {
		return fmt.Errorf("%w; overlapping: %v", ErrSymbolsNotDisjoint, overlap.Slice())
	}
	for _, prod := range g.prods.prods {
		if !g.nonterminals.Has(prod.LHS) {
			return fmt.Errorf("%w; production: %v", ErrInvalidLHS, prod)
		}
		for _, sym := range prod.RHS {
			if !g.allSymbols.Has(sym) {
				return fmt.Errorf("%w; production: %v, symbol: %v", ErrInvalidRHSSymbol, prod, sym)
			}
		}
	}
	return nil
}

func (g *Grammar) Terminals() SymbolSet {
	return g.terminals.clone()
}

func (g *Grammar) Nonterminals() SymbolSet {
	return g.nonterminals.clone()
}

// AllSymbols is the union of the terminal and nonterminal vocabularies.
func (g *Grammar) AllSymbols() SymbolSet {
	return g.allSymbols.clone()
}

func (g *Grammar) Productions() []Production {
	return g.prods.all()
}

// ProductionsFor returns every production whose LHS is sym, preserving the
// grammar's production order. An empty result is a normal outcome for a
// terminal symbol or a nonterminal without rules, not an error; only a
// symbol outside the grammar fails.
func (g *Grammar) ProductionsFor(sym Symbol) ([]Production, error) {
	if !g.allSymbols.Has(sym) {
		return nil, fmt.Errorf("%w; symbol: %v", ErrUnknownSymbol, sym)
	}
	return g.prods.findByLHS(sym), nil
}

// IsTerminal reports whether sym is a terminal symbol of the grammar. It is
// false for unknown symbols.
func (g *Grammar) IsTerminal(sym Symbol) bool {
	return g.terminals.Has(sym)
}

// IsNonterminal reports whether sym is a nonterminal symbol of the grammar.
// It is false for unknown symbols.
func (g *Grammar) IsNonterminal(sym Symbol) bool {
	return g.nonterminals.Has(sym)
}

// IsValidProduction reports whether rhs can follow lhs in one rewrite step:
// some production has lhs as its left-hand side and contains rhs anywhere in
// its right-hand side. This is a pairwise adjacency check, deliberately
// weaker than matching a full right-hand-side sequence; it is exactly the
// relation Generate induces between consecutive output symbols.
func (g *Grammar) IsValidProduction(lhs, rhs Symbol) bool {
	return g.prods.hasAdjacency(lhs, rhs)
}

// IsValidString splits text on whitespace and reports whether every token is
// a symbol of the grammar and every adjacent token pair is a valid one-step
// rewrite. Empty and single-token strings have no adjacent pairs, so they
// are valid whenever their tokens are.
func (g *Grammar) IsValidString(text string) bool {
	tokens := strings.Fields(text)
	for _, tok := range tokens {
		if !g.allSymbols.Has(Symbol(tok)) {
			return false
		}
	}
	for i := 0; i+1 < len(tokens); i++ {
		if !g.IsValidProduction(Symbol(tokens[i]), Symbol(tokens[i+1])) {
			return false
		}
	}
	return true
}

// Equal reports whether both grammars have the same terminal set, the same
// nonterminal set, and the same production sequence. Production order counts.
func (g *Grammar) Equal(other *Grammar) bool {
	if other == nil {
		return false
	}
	if !g.terminals.Equal(other.terminals) || !g.nonterminals.Equal(other.nonterminals) {
		return false
	}
	if g.prods.len() != other.prods.len() {
		return false
	}
	for i, prod := range g.prods.prods {
		if !prod.Equal(other.prods.prods[i]) {
			return false
		}
	}
	return true
}

type GrammarID [32]byte

func (id GrammarID) String() string {
	return fmt.Sprintf("%x", id[:])
}

// Fingerprint derives an identifier from the terminal set, the nonterminal
// set, and the production sequence. Equal grammars fingerprint equally: the
// sets are encoded in sorted order and the productions in sequence order.
func (g *Grammar) Fingerprint() GrammarID {
	var seq []byte
	for _, sym := range g.terminals.Slice() {
		seq = appendSymbolBytes(seq, sym)
	}
	seq = append(seq, 0)
	for _, sym := range g.nonterminals.Slice() {
		seq = appendSymbolBytes(seq, sym)
	}
	seq = append(seq, 0)
	for _, prod := range g.prods.prods {
		id := prod.ID()
		seq = append(seq, id[:]...)
	}
	return GrammarID(sha256.Sum256(seq))
}

func (g *Grammar) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "terminals: %v\n", g.terminals.Slice())
	fmt.Fprintf(&b, "nonterminals: %v\n", g.nonterminals.Slice())
	b.WriteString("productions:\n")
	for _, prod := range g.prods.prods {
		fmt.Fprintf(&b, "    %v\n", prod)
	}
	return b.String()
}

// GenGrammar builds a grammar from a parsed rule source. Every LHS symbol
// becomes a nonterminal; every RHS symbol that never appears as a LHS
// becomes a terminal. The result goes through the same validation as
// NewGrammar.
func GenGrammar(root *parser.AST) (*Grammar, error) {
	nonterminals := SymbolSet{}
	for _, ast := range root.Children {
		if ast.Ty != parser.ASTTypeProduction {
			continue
		}
		lhsAST := ast.Children[0]
		lhsText, ok := lhsAST.GetText()
		if !ok {
			return nil, fmt.Errorf("a node of the AST does not have a text representation; node: %#v", lhsAST)
		}
		nonterminals.Add(Symbol(lhsText))
	}

	terminals := SymbolSet{}
	var prods []Production
	for _, ast := range root.Children {
		if ast.Ty != parser.ASTTypeProduction {
			continue
		}
		lhsAST := ast.Children[0]
		lhsText, _ := lhsAST.GetText()

		for i := 1; i < len(ast.Children); i++ {
			altAST := ast.Children[i]
			rhs := make([]Symbol, len(altAST.Children))
			for j, symAST := range altAST.Children {
				symText, ok := symAST.GetText()
				if !ok {
					return nil, fmt.Errorf("a node of the AST does not have a text representation; node: %#v", symAST)
				}
				sym := Symbol(symText)
				if !nonterminals.Has(sym) {
					terminals.Add(sym)
				}
				rhs[j] = sym
			}
			prods = append(prods, Production{
				LHS: Symbol(lhsText),
				RHS: rhs,
			})
		}
	}

	return NewGrammar(terminals, nonterminals, prods)
}
