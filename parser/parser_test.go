package parser

import (
	"errors"
	"strings"
	"testing"
)

func TestParser(t *testing.T) {
	tests := []struct {
		caption     string
		src         string
		syntaxError bool
	}{
		{
			caption: "when a source is in the correct format, the parser can recognize it",
			src:     `a: a b c | c; c: c d e | e;`,
		},
		{
			caption: "when a source contains empty alternatives, the parser can recognize it",
			src:     `a: ; b: | ; c: | d | ;`,
		},
		{
			caption: "when a source contains comments, the parser skips them",
			src:     "# top comment\na: b c; # trailing comment\nb: a;",
		},
		{
			caption:     "when a source contains an unknown token, the parser raises a syntax error",
			src:         `a: ?;`,
			syntaxError: true,
		},
		{
			caption:     "when a source contains a production that lacks the LHS, the parser raises a syntax error",
			src:         `: b;`,
			syntaxError: true,
		},
		{
			caption:     "when a source contains a production that lacks \":\" (delimiter), the parser raises a syntax error",
			src:         `a b;`,
			syntaxError: true,
		},
		{
			caption:     "when a source contains a production that lacks \";\" (terminator), the parser raises a syntax error",
			src:         `a: b`,
			syntaxError: true,
		},
		{
			caption:     "when a source contains a production that lacks the LHS and the RHS, the parser raises a syntax error",
			src:         `;`,
			syntaxError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			parser, err := NewParser(strings.NewReader(tt.src))
			if err != nil {
				t.Fatalf("failed to create a new parser: %v", err)
			}

			ast, err := parser.Parse()
			if tt.syntaxError {
				var syntaxErr *SyntaxError
				if !errors.As(err, &syntaxErr) {
					t.Fatalf("error type is mismatched; want: %T, got: %T", syntaxErr, err)
				}
			} else {
				if err != nil {
					t.Fatalf("the parser raised an error: %v", err)
				}
				if ast == nil {
					t.Fatalf("AST is nil")
				}
			}
		})
	}
}

func TestParser_AST(t *testing.T) {
	src := `
S: a S | b T ;
T: a
 | ;
`
	parser, err := NewParser(strings.NewReader(src))
	if err != nil {
		t.Fatalf("failed to create a new parser: %v", err)
	}
	root, err := parser.Parse()
	if err != nil {
		t.Fatalf("the parser raised an error: %v", err)
	}

	expected := []struct {
		lhs  string
		alts [][]string
	}{
		{
			lhs: "S",
			alts: [][]string{
				{"a", "S"},
				{"b", "T"},
			},
		},
		{
			lhs: "T",
			alts: [][]string{
				{"a"},
				{},
			},
		},
	}

	if root.Ty != ASTTypeStart {
		t.Fatalf("unexpected root type; want: %v, got: %v", ASTTypeStart, root.Ty)
	}
	if len(root.Children) != len(expected) {
		t.Fatalf("number of productions is mismatched; want: %v, got: %v", len(expected), len(root.Children))
	}
	for i, eProd := range expected {
		prodAST := root.Children[i]
		if prodAST.Ty != ASTTypeProduction {
			t.Fatalf("unexpected node type; want: %v, got: %v", ASTTypeProduction, prodAST.Ty)
		}
		lhsText, ok := prodAST.Children[0].GetText()
		if !ok || lhsText != eProd.lhs {
			t.Fatalf("LHS is mismatched; want: %v, got: %v", eProd.lhs, lhsText)
		}
		if len(prodAST.Children)-1 != len(eProd.alts) {
			t.Fatalf("number of alternatives of %v is mismatched; want: %v, got: %v", eProd.lhs, len(eProd.alts), len(prodAST.Children)-1)
		}
		for j, eAlt := range eProd.alts {
			altAST := prodAST.Children[j+1]
			if altAST.Ty != ASTTypeAlternative {
				t.Fatalf("unexpected node type; want: %v, got: %v", ASTTypeAlternative, altAST.Ty)
			}
			if len(altAST.Children) != len(eAlt) {
				t.Fatalf("length of an alternative of %v is mismatched; want: %v, got: %v", eProd.lhs, len(eAlt), len(altAST.Children))
			}
			for k, eSym := range eAlt {
				symText, ok := altAST.Children[k].GetText()
				if !ok || symText != eSym {
					t.Fatalf("symbol is mismatched; want: %v, got: %v", eSym, symText)
				}
			}
		}
	}
}
