package cst

import "strings"

// whitespaceRun matches a non-empty run of ASCII blank/tab/CR/LF bytes.
func whitespaceRun() Parser[WhiteSpace] {
	return func(s Span) (Span, WhiteSpace, error) {
		out, _, err := IsA(" \t\r\n")(s)
		if err != nil {
			return s, WhiteSpace{}, err
		}
		return out, WhiteSpace{Kind: Whitespace, Locate: out.locate(s)}, nil
	}
}

// oneLineComment matches `// ...` up to but excluding the next '\n'.
// Reaching end-of-file before a newline is fine: the comment simply ends
// there.
func oneLineComment() Parser[WhiteSpace] {
	return func(s Span) (Span, WhiteSpace, error) {
		s1, _, err := Tag("//")(s)
		if err != nil {
			return s, WhiteSpace{}, err
		}
		s2, _, err := IsNot("\n")(s1)
		if err != nil {
			// nothing before the newline/EOF: still a valid (empty) comment body.
			s2 = s1
		}
		return s2, WhiteSpace{Kind: LineComment, Locate: s2.locate(s)}, nil
	}
}

// blockComment matches `/* ... */`, non-nesting. An unterminated block
// comment is a fatal lexical error: it is never recovered by
// Alt, because by the time we've matched "/*" we are committed to there
// being a close.
func blockComment() Parser[WhiteSpace] {
	return func(s Span) (Span, WhiteSpace, error) {
		s1, _, err := Tag("/*")(s)
		if err != nil {
			return s, WhiteSpace{}, err
		}
		idx := strings.Index(s1.Remaining(), "*/")
		if idx < 0 {
			return s, WhiteSpace{}, fatalf(s, "unterminated block comment")
		}
		s2 := s1.advance(idx + 2)
		return s2, WhiteSpace{Kind: BlockComment, Locate: s2.locate(s)}, nil
	}
}

var trivium = Alt(whitespaceRun(), oneLineComment(), blockComment())

// ws runs p, then greedily consumes trailing whitespace and comments,
// returning p's result alongside the trivia it ate. Symbol and keyword
// recognizers are built through ws so that trivia attaches to the
// preceding token.
func ws[T any](p Parser[T]) Parser[Pair2[T, Trivia]] {
	return func(s Span) (Span, Pair2[T, Trivia], error) {
		var zero Pair2[T, Trivia]
		s1, v, err := p(s)
		if err != nil {
			return s, zero, err
		}
		s2, trivia, err := Many0(trivium)(s1)
		if err != nil {
			return s, zero, err
		}
		return s2, Pair2[T, Trivia]{v, trivia}, nil
	}
}

// WS is the public form of ws, exposed to grammar packages outside cst.
func WS[T any](p Parser[T]) Parser[Pair2[T, Trivia]] { return ws(p) }

// LeadingTrivia is consumed by the top-level entry point before the first
// token: start-of-file trivia has no preceding token to attach to, so it
// is owned by the root node instead.
func LeadingTrivia() Parser[Trivia] {
	return Many0(trivium)
}
