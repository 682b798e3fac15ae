package cst

// Paren, Brace and Bracket carry no state beyond their three children; they
// exist so that transcribing `( T )` / `{ T }` / `[ T ]` productions from
// the LRM BNF is mechanical.
type Paren[T any] struct {
	Open  Symbol
	Inner T
	Close Symbol
}

func (p Paren[T]) Visit(emit func(Locate, Trivia)) {
	visitField(p.Open, emit)
	visitField(p.Inner, emit)
	visitField(p.Close, emit)
}

type Brace[T any] struct {
	Open  Symbol
	Inner T
	Close Symbol
}

func (b Brace[T]) Visit(emit func(Locate, Trivia)) {
	visitField(b.Open, emit)
	visitField(b.Inner, emit)
	visitField(b.Close, emit)
}

type Bracket[T any] struct {
	Open  Symbol
	Inner T
	Close Symbol
}

func (b Bracket[T]) Visit(emit func(Locate, Trivia)) {
	visitField(b.Open, emit)
	visitField(b.Inner, emit)
	visitField(b.Close, emit)
}

// SepItem is one (separator, item) pair following the head of a List.
type SepItem[Sep, T any] struct {
	Sep  Sep
	Item T
}

// ListOf is the non-empty sequence `T (Sep T)*`.
type ListOf[Sep, T any] struct {
	First T
	Rest  []SepItem[Sep, T]
}

func (l ListOf[Sep, T]) Visit(emit func(Locate, Trivia)) {
	visitField(l.First, emit)
	for _, item := range l.Rest {
		visitField(item.Sep, emit)
		visitField(item.Item, emit)
	}
}

// VisitField exposes visitField to grammar packages outside cst: it
// dispatches to Node.Visit when v implements Node, recurses into the
// library's own generic containers (Option/slice/Pair2/Pair3/Pair4) when it
// doesn't, and is a no-op for plain scalars.
func VisitField(v interface{}, emit func(Locate, Trivia)) { visitField(v, emit) }

func visitField(v interface{}, emit func(Locate, Trivia)) {
	switch n := v.(type) {
	case Node:
		n.Visit(emit)
	case nil:
		// absent Option or similar; nothing to emit.
	default:
		visitGeneric(v, emit)
	}
}

func paren[T any](p Parser[T]) Parser[Paren[T]] {
	return func(s Span) (Span, Paren[T], error) {
		var zero Paren[T]
		s1, open, err := symbol("(")(s)
		if err != nil {
			return s, zero, err
		}
		s2, inner, err := p(s1)
		if err != nil {
			return s, zero, err
		}
		s3, close, err := symbol(")")(s2)
		if err != nil {
			return s, zero, err
		}
		return s3, Paren[T]{open, inner, close}, nil
	}
}

func brace[T any](p Parser[T]) Parser[Brace[T]] {
	return func(s Span) (Span, Brace[T], error) {
		var zero Brace[T]
		s1, open, err := symbol("{")(s)
		if err != nil {
			return s, zero, err
		}
		s2, inner, err := p(s1)
		if err != nil {
			return s, zero, err
		}
		s3, close, err := symbol("}")(s2)
		if err != nil {
			return s, zero, err
		}
		return s3, Brace[T]{open, inner, close}, nil
	}
}

func bracket[T any](p Parser[T]) Parser[Bracket[T]] {
	return func(s Span) (Span, Bracket[T], error) {
		var zero Bracket[T]
		s1, open, err := symbol("[")(s)
		if err != nil {
			return s, zero, err
		}
		s2, inner, err := p(s1)
		if err != nil {
			return s, zero, err
		}
		s3, close, err := symbol("]")(s2)
		if err != nil {
			return s, zero, err
		}
		return s3, Bracket[T]{open, inner, close}, nil
	}
}

// ParenOf exposes the `(` inner `)` wrapper to grammar packages outside cst.
func ParenOf[T any](p Parser[T]) Parser[Paren[T]] { return paren(p) }

// BraceOf exposes the `{` inner `}` wrapper to grammar packages outside cst.
func BraceOf[T any](p Parser[T]) Parser[Brace[T]] { return brace(p) }

// BracketOf exposes the `[` inner `]` wrapper to grammar packages outside cst.
func BracketOf[T any](p Parser[T]) Parser[Bracket[T]] { return bracket(p) }
