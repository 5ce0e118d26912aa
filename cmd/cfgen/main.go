package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aflah02/cfg-generator/grammar"
	"github.com/aflah02/cfg-generator/log"
	"github.com/aflah02/cfg-generator/parser"
)

var (
	flagStart     = flag.String("start", "S", "start symbol of the generation walk")
	flagMaxLength = flag.Int("max-length", 10, "maximum number of symbols in the generated string")
	flagSeed      = flag.Int64("seed", 0, "random seed; 0 means the current time")
	flagStrategy  = flag.String("strategy", "uniform", "sampling strategy (uniform or weighted)")
	flagWeights   = flag.String("weights", "", "comma-separated per-production weights for the weighted strategy")
	flagSamples   = flag.Int("samples", 1, "number of strings to generate")
	flagDebug     = flag.String("debug", "", "write a debug log to this path")
)

func main() {
	os.Exit(doMain())
}

func doMain() int {
	flag.Parse()

	err := run(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

func run(args []string) error {
	if *flagDebug != "" {
		err := log.Init(*flagDebug)
		if err != nil {
			return err
		}
		defer log.Close()
	}

	gram, err := loadGrammar(args)
	if err != nil {
		return err
	}
	if w := log.GetWriter(); w != nil {
		fmt.Fprint(w, gram)
	}

	cfg := grammar.DefaultGenConfig()
	cfg.MaxLength = *flagMaxLength
	cfg.Strategy = grammar.SamplingStrategy(*flagStrategy)
	if *flagWeights != "" {
		weights, err := parseWeights(*flagWeights)
		if err != nil {
			return err
		}
		cfg.Weights = weights
	}

	seed := *flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))
	log.Log("seed: %v, strategy: %v, max length: %v", seed, cfg.Strategy, cfg.MaxLength)

	for i := 0; i < *flagSamples; i++ {
		s, err := gram.Generate(grammar.Symbol(*flagStart), cfg, rnd)
		if err != nil {
			return err
		}
		log.Log("sample #%v: %v", i, s)
		fmt.Println(s)
	}

	return nil
}

// loadGrammar builds a grammar from a rule source when a path is given ("-"
// means stdin). With no argument it falls back to the built-in alphabet
// grammar.
func loadGrammar(args []string) (*grammar.Grammar, error) {
	if len(args) == 0 {
		return alphabetGrammar()
	}

	var src io.Reader
	if args[0] == "-" {
		src = os.Stdin
	} else {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer file.Close()
		src = file
	}

	psr, err := parser.NewParser(src)
	if err != nil {
		return nil, err
	}
	ast, err := psr.Parse()
	if err != nil {
		return nil, err
	}

	return grammar.GenGrammar(ast)
}

// alphabetGrammar treats "a" as the only terminal symbol and every other
// ASCII letter as a nonterminal that can rewrite to any letter at all.
func alphabetGrammar() (*grammar.Grammar, error) {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	alphabet := make([]grammar.Symbol, 0, len(letters))
	for _, c := range letters {
		alphabet = append(alphabet, grammar.Symbol(c))
	}

	terminals := grammar.NewSymbolSet("a")
	nonterminals := grammar.SymbolSet{}
	var prods []grammar.Production
	for _, sym := range alphabet {
		if terminals.Has(sym) {
			continue
		}
		nonterminals.Add(sym)
		prods = append(prods, grammar.Production{
			LHS: sym,
			RHS: alphabet,
		})
	}

	return grammar.NewGrammar(terminals, nonterminals, prods)
}

func parseWeights(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	weights := make([]float64, len(parts))
	for i, part := range parts {
		w, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %v", part, err)
		}
		weights[i] = w
	}
	return weights, nil
}
