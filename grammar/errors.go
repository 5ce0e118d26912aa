package grammar

import "errors"

// All failures are synchronous input-validation failures. Callers tell them
// apart with errors.Is.
var (
	// Construction errors.
	ErrSymbolsNotDisjoint = errors.New("terminal and nonterminal symbols must be disjoint")
	ErrInvalidLHS         = errors.New("LHS of a production must be a nonterminal symbol")
	ErrInvalidRHSSymbol   = errors.New("RHS of a production contains a symbol the grammar does not define")

	// Query errors.
	ErrUnknownSymbol = errors.New("symbol is not defined by the grammar")

	// Generation errors.
	ErrNotNonterminal      = errors.New("start symbol must be a nonterminal symbol")
	ErrUnsupportedStrategy = errors.New("sampling strategy is not supported")
	ErrInvalidMaxLength    = errors.New("max length must be positive")
	ErrInvalidWeights      = errors.New("sampling weights are invalid")
)
