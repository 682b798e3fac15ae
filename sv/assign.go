package sv

import cst "github.com/erihsu/sv-parser-go"

// BlockingAssignmentKind tags which of the three sub-forms matched.
type BlockingAssignmentKind int

const (
	// BlockingPlain is `variable_lvalue = expression`.
	BlockingPlain BlockingAssignmentKind = iota
	// BlockingDynamicArrayNew is `nonrange_variable_lvalue = dynamic_array_new`,
	// e.g. "idest = new [3] (isrc)".
	BlockingDynamicArrayNew
	// BlockingClassNew is `variable_lvalue = class_new`.
	BlockingClassNew
)

// BlockingAssignment is `blocking_assignment` (LRM A.6.3), restricted to its
// three identifier-lvalue alternatives. The grammar text is genuinely
// three-way ambiguous at the "=" (all three alternatives can start an
// arbitrary expression) but the token immediately following "=" resolves
// it without backtracking: `new [` only opens dynamic_array_new, `new (`
// or bare `new` only opens class_new, anything else is a plain expression.
// Trying the two `new`-led forms before the catch-all expression implements
// the LRM's longest-match resolution the same way NetTypeDeclarationP's
// Alt ordering does.
type BlockingAssignment struct {
	Lvalue cst.Ident
	Eq     cst.Symbol
	Kind   BlockingAssignmentKind
	Array  *DynamicArrayNew
	New    *ClassNew
	Expr   *Expression
}

func (n BlockingAssignment) Visit(emit func(cst.Locate, cst.Trivia)) {
	n.Lvalue.Visit(emit)
	n.Eq.Visit(emit)
	switch n.Kind {
	case BlockingDynamicArrayNew:
		n.Array.Visit(emit)
	case BlockingClassNew:
		n.New.Visit(emit)
	case BlockingPlain:
		n.Expr.Visit(emit)
	}
}

// BlockingAssignmentP is `blocking_assignment`.
func BlockingAssignmentP() cst.Parser[BlockingAssignment] {
	return func(s cst.Span) (cst.Span, BlockingAssignment, error) {
		var zero BlockingAssignment
		s1, lv, err := cst.Identifier()(s)
		if err != nil {
			return s, zero, err
		}
		s2, eq, err := cst.SymbolOf("=")(s1)
		if err != nil {
			return s, zero, err
		}

		if s3, arr, err := dynamicArrayNewP()(s2); err == nil {
			return s3, BlockingAssignment{Lvalue: lv, Eq: eq, Kind: BlockingDynamicArrayNew, Array: &arr}, nil
		} else if cst.IsFatal(err) {
			return s, zero, err
		}

		if s3, cn, err := classNewP()(s2); err == nil {
			return s3, BlockingAssignment{Lvalue: lv, Eq: eq, Kind: BlockingClassNew, New: &cn}, nil
		} else if cst.IsFatal(err) {
			return s, zero, err
		}

		s3, expr, err := ExpressionP()(s2)
		if err != nil {
			return s, zero, err
		}
		return s3, BlockingAssignment{Lvalue: lv, Eq: eq, Kind: BlockingPlain, Expr: &expr}, nil
	}
}
