package sv

import cst "github.com/erihsu/sv-parser-go"

// StatementOrNullKind tags which alternative of StatementOrNull matched.
type StatementOrNullKind int

const (
	StatementNull StatementOrNullKind = iota
	StatementAssign
	StatementConditional
)

// StatementOrNull is a deliberately small slice of `statement_or_null`: a
// bare `;`, a blocking-assignment statement, or a nested conditional
// statement. The full statement grammar (loops, case, procedural blocks) is
// out of scope for this illustrative package.
type StatementOrNull struct {
	Kind        StatementOrNullKind
	Semi        cst.Symbol
	Assign      *BlockingAssignment
	AssignSemi  cst.Symbol
	Conditional *ConditionalStatement
}

func (n StatementOrNull) Visit(emit func(cst.Locate, cst.Trivia)) {
	switch n.Kind {
	case StatementNull:
		n.Semi.Visit(emit)
	case StatementAssign:
		n.Assign.Visit(emit)
		n.AssignSemi.Visit(emit)
	case StatementConditional:
		n.Conditional.Visit(emit)
	}
}

func statementOrNullP() cst.Parser[StatementOrNull] {
	return cst.Alt(
		cst.Map(cst.SymbolOf(";"), func(s cst.Symbol) StatementOrNull {
			return StatementOrNull{Kind: StatementNull, Semi: s}
		}),
		func(s cst.Span) (cst.Span, StatementOrNull, error) {
			var zero StatementOrNull
			s1, cond, err := ConditionalStatementP()(s)
			if err != nil {
				return s, zero, err
			}
			return s1, StatementOrNull{Kind: StatementConditional, Conditional: &cond}, nil
		},
		func(s cst.Span) (cst.Span, StatementOrNull, error) {
			var zero StatementOrNull
			s1, a, err := BlockingAssignmentP()(s)
			if err != nil {
				return s, zero, err
			}
			s2, semi, err := cst.SymbolOf(";")(s1)
			if err != nil {
				return s, zero, err
			}
			return s2, StatementOrNull{Kind: StatementAssign, Assign: &a, AssignSemi: semi}, nil
		},
	)
}

// ElseIfArm is `else if ( expression ) statement_or_null`.
type ElseIfArm struct {
	Else cst.Keyword
	If   cst.Keyword
	Cond cst.Paren[Expression]
	Body StatementOrNull
}

func (n ElseIfArm) Visit(emit func(cst.Locate, cst.Trivia)) {
	n.Else.Visit(emit)
	n.If.Visit(emit)
	n.Cond.Visit(emit)
	n.Body.Visit(emit)
}

// ConditionalStatement is `conditional_statement` (LRM A.6.6), restricted
// to the `if (cond) stmt {else if (cond) stmt} [else stmt]` shape; the
// `unique`/`priority` prefix and `cond_predicate`'s `matches`/`&&&` forms
// are out of scope.
type ConditionalStatement struct {
	If      cst.Keyword
	Cond    cst.Paren[Expression]
	Then    StatementOrNull
	ElseIfs []ElseIfArm
	Else    cst.Option[cst.Pair2[cst.Keyword, StatementOrNull]]
}

func (n ConditionalStatement) Visit(emit func(cst.Locate, cst.Trivia)) {
	n.If.Visit(emit)
	n.Cond.Visit(emit)
	n.Then.Visit(emit)
	for _, arm := range n.ElseIfs {
		arm.Visit(emit)
	}
	cst.VisitField(n.Else, emit)
}

func elseIfArmP() cst.Parser[ElseIfArm] {
	return func(s cst.Span) (cst.Span, ElseIfArm, error) {
		var zero ElseIfArm
		s1, elseKw, err := cst.KeywordOf("else")(s)
		if err != nil {
			return s, zero, err
		}
		s2, ifKw, err := cst.KeywordOf("if")(s1)
		if err != nil {
			return s, zero, err
		}
		s3, cond, err := cst.ParenOf(ExpressionP())(s2)
		if err != nil {
			return s, zero, err
		}
		s4, body, err := statementOrNullP()(s3)
		if err != nil {
			return s, zero, err
		}
		return s4, ElseIfArm{Else: elseKw, If: ifKw, Cond: cond, Body: body}, nil
	}
}

// ConditionalStatementP is `conditional_statement`, MaybeRecursive only
// through StatementOrNull's own nested use of ConditionalStatementP; the
// production itself is right-recursive (if/else nest rightward), so no
// LeftRecursive wrapping is needed here; bounding applies only to alternatives
// that are left-recursive as written.
func ConditionalStatementP() cst.Parser[ConditionalStatement] {
	return func(s cst.Span) (cst.Span, ConditionalStatement, error) {
		var zero ConditionalStatement
		s1, ifKw, err := cst.KeywordOf("if")(s)
		if err != nil {
			return s, zero, err
		}
		s2, cond, err := cst.ParenOf(ExpressionP())(s1)
		if err != nil {
			return s, zero, err
		}
		s3, then, err := statementOrNullP()(s2)
		if err != nil {
			return s, zero, err
		}
		s4, elseIfs, err := cst.Many0(elseIfArmP())(s3)
		if err != nil {
			return s, zero, err
		}
		s5, els, err := cst.Opt(cst.Pair(cst.KeywordOf("else"), statementOrNullP()))(s4)
		if err != nil {
			return s, zero, err
		}
		return s5, ConditionalStatement{If: ifKw, Cond: cond, Then: then, ElseIfs: elseIfs, Else: els}, nil
	}
}

// DataDeclaration is the `[ data_type ] list_of_variable_decl_assignments ;`
// ambiguity: "opt(type) name" where `type` and
// `name` can both be a bare identifier. "T x;" reads as explicit type `T`
// naming variable `x`. "x;" starts the same way, with `x` taken as a type,
// but then no variable name follows before `;`, so the declaration must
// retry with the type absent and `x` as the variable name.
// This production exercises AmbiguousOpt directly rather than resolving the
// ambiguity by Alt ordering, unlike NetTypeDeclarationP and
// BlockingAssignmentP above, because here the same token sequence truly
// requires the two-pass retry: a single leading identifier is consistent
// with both interpretations until the continuation (the rest of the
// statement) is attempted.
type DataDeclaration struct {
	Type cst.Option[DataType]
	Name cst.Ident
	Semi cst.Symbol
}

func (n DataDeclaration) Visit(emit func(cst.Locate, cst.Trivia)) {
	cst.VisitField(n.Type, emit)
	n.Name.Visit(emit)
	n.Semi.Visit(emit)
}

// DataDeclarationP is `data_declaration`, tagged Ambiguous.
func DataDeclarationP() cst.Parser[DataDeclaration] {
	return cst.AmbiguousOpt(DataTypeP(), func(ty cst.Option[DataType]) cst.Parser[DataDeclaration] {
		return func(s cst.Span) (cst.Span, DataDeclaration, error) {
			var zero DataDeclaration
			s1, name, err := cst.Identifier()(s)
			if err != nil {
				return s, zero, err
			}
			s2, semi, err := cst.SymbolOf(";")(s1)
			if err != nil {
				return s, zero, err
			}
			return s2, DataDeclaration{Type: ty, Name: name, Semi: semi}, nil
		}
	})
}
