package sv

import cst "github.com/erihsu/sv-parser-go"

// SequenceExpr is a minimal stand-in for `sequence_expr`: a single
// Expression. The full sequence-expression grammar (delay ranges, `##`,
// `throughout`, ...) is out of scope for this illustrative package.
type SequenceExpr struct {
	Value Expression
}

func (n SequenceExpr) Visit(emit func(cst.Locate, cst.Trivia)) { n.Value.Visit(emit) }

func sequenceExprP() cst.Parser[SequenceExpr] {
	return cst.Map(ExpressionP(), func(e Expression) SequenceExpr { return SequenceExpr{Value: e} })
}

// PropertyExprKind tags which alternative of PropertyExpr matched.
type PropertyExprKind int

const (
	PropertyExprStrong PropertyExprKind = iota
	PropertyExprWeak
)

// PropertyExpr is a minimal stand-in for `property_expr`, covering only its
// `strong ( sequence_expr )` and `weak ( sequence_expr )` alternatives.
type PropertyExpr struct {
	Kind     PropertyExprKind
	Keyword  cst.Keyword
	Sequence cst.Paren[SequenceExpr]
}

func (n PropertyExpr) Visit(emit func(cst.Locate, cst.Trivia)) {
	n.Keyword.Visit(emit)
	n.Sequence.Visit(emit)
}

// PropertyExprStrongP is `strong ( sequence_expr )`.
func PropertyExprStrongP() cst.Parser[PropertyExpr] {
	return func(s cst.Span) (cst.Span, PropertyExpr, error) {
		var zero PropertyExpr
		s1, kw, err := cst.KeywordOf("strong")(s)
		if err != nil {
			return s, zero, err
		}
		s2, seq, err := cst.ParenOf(sequenceExprP())(s1)
		if err != nil {
			return s, zero, err
		}
		return s2, PropertyExpr{Kind: PropertyExprStrong, Keyword: kw, Sequence: seq}, nil
	}
}

// PropertyExprWeakP is `weak ( sequence_expr )`. Constructs the Weak
// variant, matching the keyword it actually parsed.
func PropertyExprWeakP() cst.Parser[PropertyExpr] {
	return func(s cst.Span) (cst.Span, PropertyExpr, error) {
		var zero PropertyExpr
		s1, kw, err := cst.KeywordOf("weak")(s)
		if err != nil {
			return s, zero, err
		}
		s2, seq, err := cst.ParenOf(sequenceExprP())(s1)
		if err != nil {
			return s, zero, err
		}
		return s2, PropertyExpr{Kind: PropertyExprWeak, Keyword: kw, Sequence: seq}, nil
	}
}

// PropertyExprP is `property_expr`, restricted to its strong/weak
// alternatives.
func PropertyExprP() cst.Parser[PropertyExpr] {
	return cst.Alt(PropertyExprStrongP(), PropertyExprWeakP())
}
