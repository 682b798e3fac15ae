package sv

import cst "github.com/erihsu/sv-parser-go"

// DataTypeKind tags which alternative of DataType matched.
type DataTypeKind int

const (
	// DataTypePrimitive is one of the built-in keyword type names.
	DataTypePrimitive DataTypeKind = iota
	// DataTypeReference is a user-defined type referenced by name, e.g. the
	// `T` in `nettype T wTsum with Tsum;`.
	DataTypeReference
)

// DataType is a deliberately small slice of the LRM's data_type production:
// a built-in keyword (logic/bit/reg/...) or a plain type reference. The
// full data_type grammar (packed arrays, struct/union/enum bodies, signing)
// is out of scope for this illustrative package.
type DataType struct {
	Kind      DataTypeKind
	Primitive cst.Keyword
	Reference cst.Ident
}

func (n DataType) Visit(emit func(cst.Locate, cst.Trivia)) {
	switch n.Kind {
	case DataTypePrimitive:
		n.Primitive.Visit(emit)
	case DataTypeReference:
		n.Reference.Visit(emit)
	}
}

var primitiveTypeNames = []string{
	"logic", "reg", "bit", "byte", "shortint", "int", "longint", "integer",
	"time", "real", "realtime", "shortreal", "string", "chandle", "event",
}

// DataTypeP is `data_type`, memoized: it is reached from several
// alternatives in DataDeclarationP and NetDeclarationP, so a production at
// a given offset that already resolved it does not re-walk the keyword
// table and identifier scan a second time.
func DataTypeP() cst.Parser[DataType] {
	return cst.Memoize(idDataType, func(s cst.Span) (cst.Span, DataType, error) {
		primitiveAlts := make([]cst.Parser[cst.Keyword], len(primitiveTypeNames))
		for i, name := range primitiveTypeNames {
			primitiveAlts[i] = cst.KeywordOf(name)
		}
		primitive := cst.Alt(primitiveAlts...)

		out, kw, err := primitive(s)
		if err == nil {
			return out, DataType{Kind: DataTypePrimitive, Primitive: kw}, nil
		}
		if cst.IsFatal(err) {
			var zero DataType
			return s, zero, err
		}

		out, id, err := cst.Identifier()(s)
		if err != nil {
			var zero DataType
			return s, zero, err
		}
		return out, DataType{Kind: DataTypeReference, Reference: id}, nil
	})
}

// PrimaryExprKind tags which alternative of PrimaryExpr matched.
type PrimaryExprKind int

const (
	PrimaryNumber PrimaryExprKind = iota
	PrimaryString
	PrimaryIdent
	PrimaryParen
)

// PrimaryExpr is the non-recursive leaf of Expression: a number, a string
// literal, an identifier, or a parenthesized sub-expression.
type PrimaryExpr struct {
	Kind   PrimaryExprKind
	Number cst.Number
	String cst.StringLiteral
	Ident  cst.Ident
	Paren  *cst.Paren[Expression]
}

func (n PrimaryExpr) Visit(emit func(cst.Locate, cst.Trivia)) {
	switch n.Kind {
	case PrimaryNumber:
		n.Number.Visit(emit)
	case PrimaryString:
		n.String.Visit(emit)
	case PrimaryIdent:
		n.Ident.Visit(emit)
	case PrimaryParen:
		n.Paren.Visit(emit)
	}
}

func primaryExprP() cst.Parser[PrimaryExpr] {
	return cst.Alt(
		cst.Map(cst.NumberP(), func(n cst.Number) PrimaryExpr {
			return PrimaryExpr{Kind: PrimaryNumber, Number: n}
		}),
		cst.Map(cst.StringLiteralP(), func(n cst.StringLiteral) PrimaryExpr {
			return PrimaryExpr{Kind: PrimaryString, String: n}
		}),
		cst.Map(cst.ParenOf(ExpressionP()), func(p cst.Paren[Expression]) PrimaryExpr {
			return PrimaryExpr{Kind: PrimaryParen, Paren: &p}
		}),
		cst.Map(cst.Identifier(), func(n cst.Ident) PrimaryExpr {
			return PrimaryExpr{Kind: PrimaryIdent, Ident: n}
		}),
	)
}

// BinaryExpr is `expression binary_operator expression`, transcribed
// directly in left-recursive form the way the LRM writes it:
// without LeftRecursive bounding this would not terminate.
type BinaryExpr struct {
	Left  Expression
	Op    cst.Symbol
	Right Expression
}

func (n BinaryExpr) Visit(emit func(cst.Locate, cst.Trivia)) {
	n.Left.Visit(emit)
	n.Op.Visit(emit)
	n.Right.Visit(emit)
}

// ExpressionKind tags which alternative of Expression matched.
type ExpressionKind int

const (
	ExpressionBinary ExpressionKind = iota
	ExpressionPrimary
)

// Expression is `expression binary_operator expression | primary`, tagged
// MaybeRecursive. The left-recursive alternative is listed first, per
// the rule that alternative ordering is how a grammar encodes which
// reading wins; see ExpressionP for how the bounded-recursion harness
// actually groups a chain of operators.
type Expression struct {
	Kind    ExpressionKind
	Binary  *BinaryExpr
	Primary *PrimaryExpr
}

func (n Expression) Visit(emit func(cst.Locate, cst.Trivia)) {
	switch n.Kind {
	case ExpressionBinary:
		n.Binary.Visit(emit)
	case ExpressionPrimary:
		n.Primary.Visit(emit)
	}
}

var binaryOperators = []string{"+", "-", "*", "/", "%"}

// ExpressionP is `expression`. It is its own first alternative's left
// operand, so the left-recursive alternative alone (not the surrounding
// Alt) is wrapped in LeftRecursive under idExpression: wrapping the whole
// production instead would have the self-call observe its own caller's
// depth and block unconditionally, leaving the binary alternative
// unreachable. With only the binary branch bounded, a chain like "1+2+3"
// still parses in full, grouping right-to-left: the left operand of each
// binary is forced down to a single primary (its own recursive attempt at
// the same offset is the one that gets bounded), while the right operand
// is free to recurse again at the new offset and absorb the rest of the
// chain.
func ExpressionP() cst.Parser[Expression] {
	opAlts := make([]cst.Parser[cst.Symbol], len(binaryOperators))
	for i, op := range binaryOperators {
		opAlts[i] = cst.SymbolOf(op)
	}

	binary := cst.LeftRecursive(idExpression, func(s cst.Span) (cst.Span, Expression, error) {
		var zero Expression
		s1, left, err := ExpressionP()(s)
		if err != nil {
			return s, zero, err
		}
		s2, op, err := cst.Alt(opAlts...)(s1)
		if err != nil {
			return s, zero, err
		}
		s3, right, err := ExpressionP()(s2)
		if err != nil {
			return s, zero, err
		}
		be := BinaryExpr{Left: left, Op: op, Right: right}
		return s3, Expression{Kind: ExpressionBinary, Binary: &be}, nil
	})

	primary := func(s cst.Span) (cst.Span, Expression, error) {
		var zero Expression
		s1, p, err := primaryExprP()(s)
		if err != nil {
			return s, zero, err
		}
		return s1, Expression{Kind: ExpressionPrimary, Primary: &p}, nil
	}

	return cst.Alt(binary, primary)
}

// ClassNew is `new [ ( list_of_arguments ) ]`, the class-instance form of
// `new`, distinct from DynamicArrayNew's bracketed size argument. One of
// the three blocking-assignment sub-forms.
type ClassNew struct {
	New  cst.Keyword
	Args cst.Option[cst.Paren[cst.Option[cst.ListOf[cst.Symbol, Expression]]]]
}

func (n ClassNew) Visit(emit func(cst.Locate, cst.Trivia)) {
	n.New.Visit(emit)
	cst.VisitField(n.Args, emit)
}

func classNewP() cst.Parser[ClassNew] {
	return func(s cst.Span) (cst.Span, ClassNew, error) {
		var zero ClassNew
		s1, kw, err := cst.KeywordOf("new")(s)
		if err != nil {
			return s, zero, err
		}
		args := cst.ParenOf(cst.Opt(cst.List(cst.SymbolOf(","), ExpressionP())))
		s2, a, err := cst.Opt(args)(s1)
		if err != nil {
			return s, zero, err
		}
		return s2, ClassNew{New: kw, Args: a}, nil
	}
}

// DynamicArrayNew is `new [ expression ] [ ( expression ) ]`: the
// dynamic-array-resize form of `new`. "idest = new [3]
// (isrc)" is exactly this production.
type DynamicArrayNew struct {
	New  cst.Keyword
	Size cst.Bracket[Expression]
	Init cst.Option[cst.Paren[Expression]]
}

func (n DynamicArrayNew) Visit(emit func(cst.Locate, cst.Trivia)) {
	n.New.Visit(emit)
	n.Size.Visit(emit)
	cst.VisitField(n.Init, emit)
}

func dynamicArrayNewP() cst.Parser[DynamicArrayNew] {
	return func(s cst.Span) (cst.Span, DynamicArrayNew, error) {
		var zero DynamicArrayNew
		s1, kw, err := cst.KeywordOf("new")(s)
		if err != nil {
			return s, zero, err
		}
		s2, size, err := cst.BracketOf(ExpressionP())(s1)
		if err != nil {
			return s, zero, err
		}
		s3, init, err := cst.Opt(cst.ParenOf(ExpressionP()))(s2)
		if err != nil {
			return s, zero, err
		}
		return s3, DynamicArrayNew{New: kw, Size: size, Init: init}, nil
	}
}
