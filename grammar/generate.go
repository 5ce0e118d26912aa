package grammar

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// SamplingStrategy selects how Generate chooses among the productions that
// rewrite the current symbol.
type SamplingStrategy string

const (
	SamplingUniform  = SamplingStrategy("uniform")
	SamplingWeighted = SamplingStrategy("weighted")
)

func (s SamplingStrategy) String() string {
	return string(s)
}

// GenConfig configures a single Generate call.
//
// Weights applies only to the weighted strategy: one finite, non-negative
// weight per production, in the grammar's production order. For every
// nonterminal that has productions, the weights of its productions must sum
// to a positive finite total. Under the uniform strategy Weights is ignored.
type GenConfig struct {
	MaxLength int
	Strategy  SamplingStrategy
	Weights   []float64
}

// DefaultGenConfig returns a fresh configuration value: at most 100 symbols,
// uniform sampling.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		MaxLength: 100,
		Strategy:  SamplingUniform,
	}
}

// Generate performs a bounded random rewrite walk from start and returns the
// visited symbols joined by single spaces, start first.
//
// Each step looks up the productions for the current symbol, picks one
// according to the sampling strategy, and then picks exactly ONE symbol
// uniformly at random from that production's right-hand side; the walk moves
// to that symbol. The right-hand side acts as a menu of single-symbol
// alternatives here, not as a sequence to substitute wholesale. Do not "fix"
// this into conventional full-RHS substitution without a deliberate product
// decision; the adjacency queries and the output format both depend on it.
//
// The walk stops when it reaches a terminal symbol, when the current symbol
// has no productions, or when the output holds MaxLength symbols. None of
// these is an error: once the preconditions pass, Generate cannot fail.
//
// rnd is the random source for this call. Passing nil selects a fresh
// time-seeded source; pass a seeded *rand.Rand for reproducible output.
func (g *Grammar) Generate(start Symbol, cfg GenConfig, rnd *rand.Rand) (string, error) {
	if !g.nonterminals.Has(start) {
		return "", fmt.Errorf("%w; symbol: %v", ErrNotNonterminal, start)
	}
	if cfg.Strategy != SamplingUniform && cfg.Strategy != SamplingWeighted {
		return "", fmt.Errorf("%w; strategy: %v", ErrUnsupportedStrategy, cfg.Strategy)
	}
	if cfg.MaxLength <= 0 {
		return "", fmt.Errorf("%w; max length: %v", ErrInvalidMaxLength, cfg.MaxLength)
	}
	if cfg.Strategy == SamplingWeighted {
		if err := g.validateWeights(cfg.Weights); err != nil {
			return "", err
		}
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if cfg.MaxLength == 1 {
		return string(start), nil
	}

	var out strings.Builder
	out.WriteString(string(start))
	current := start
	for i := 0; i < cfg.MaxLength-1; i++ {
		positions := g.prods.lhs2Pos[current]
		if len(positions) == 0 {
			break
		}

		var pos int
		switch cfg.Strategy {
		case SamplingUniform:
			pos = positions[rnd.Intn(len(positions))]
		case SamplingWeighted:
			pos = pickWeighted(positions, cfg.Weights, rnd)
		}

		prod := g.prods.prods[pos]
		if prod.isEmpty() {
			// An empty production offers no symbol to move to.
			break
		}
		next := prod.RHS[rnd.Intn(len(prod.RHS))]

		out.WriteString(" ")
		out.WriteString(string(next))
		current = next
		if g.terminals.Has(current) {
			break
		}
	}

	return out.String(), nil
}

// validateWeights checks the whole weight vector before any random draw so
// that a bad configuration can never surface mid-walk.
func (g *Grammar) validateWeights(weights []float64) error {
	if len(weights) != g.prods.len() {
		return fmt.Errorf("%w; want: %v weights, got: %v", ErrInvalidWeights, g.prods.len(), len(weights))
	}
	for i, w := range weights {
		// NaN slips past a plain negativity check, and a non-finite
		// weight would poison every cumulative comparison.
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w; weight #%v is not finite: %v", ErrInvalidWeights, i, w)
		}
		if w < 0 {
			return fmt.Errorf("%w; weight #%v is negative: %v", ErrInvalidWeights, i, w)
		}
	}
	for lhs, positions := range g.prods.lhs2Pos {
		total := 0.0
		for _, pos := range positions {
			total += weights[pos]
		}
		// Finite weights can still overflow their sum.
		if total <= 0 || math.IsInf(total, 0) {
			return fmt.Errorf("%w; weights for %v sum to %v, want a positive finite total", ErrInvalidWeights, lhs, total)
		}
	}
	return nil
}

// pickWeighted selects one of the candidate production positions with
// probability proportional to its weight. validateWeights guarantees a
// positive total, so the cumulative scan always lands on a candidate with
// nonzero weight.
func pickWeighted(positions []int, weights []float64, rnd *rand.Rand) int {
	total := 0.0
	for _, pos := range positions {
		total += weights[pos]
	}
	r := rnd.Float64() * total
	sum := 0.0
	for _, pos := range positions {
		sum += weights[pos]
		if r < sum {
			return pos
		}
	}
	// Float64 returns values in [0, 1), but guard against accumulated
	// rounding leaving r at the far edge.
	for i := len(positions) - 1; i >= 0; i-- {
		if weights[positions[i]] > 0 {
			return positions[i]
		}
	}
	return positions[len(positions)-1]
}
