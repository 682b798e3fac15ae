package cst

import "strings"

// Tag matches a literal byte sequence exactly (case-sensitive).
func Tag(literal string) Parser[string] {
	return func(s Span) (Span, string, error) {
		if !strings.HasPrefix(s.Remaining(), literal) {
			return s, "", mismatch(s, literal)
		}
		return s.advance(len(literal)), literal, nil
	}
}

// TagNoCase matches a literal byte sequence, ASCII case-insensitively.
func TagNoCase(literal string) Parser[string] {
	return func(s Span) (Span, string, error) {
		rem := s.Remaining()
		if len(rem) < len(literal) || !strings.EqualFold(rem[:len(literal)], literal) {
			return s, "", mismatch(s, literal)
		}
		return s.advance(len(literal)), rem[:len(literal)], nil
	}
}

// IsA matches the longest non-empty run of bytes that are all members of
// charset.
func IsA(charset string) Parser[string] {
	return func(s Span) (Span, string, error) {
		rem := s.Remaining()
		n := 0
		for n < len(rem) && strings.IndexByte(charset, rem[n]) >= 0 {
			n++
		}
		if n == 0 {
			return s, "", mismatch(s, "one of "+charset)
		}
		return s.advance(n), rem[:n], nil
	}
}

// IsNot matches the longest non-empty run of bytes that contain none of
// charset's bytes.
func IsNot(charset string) Parser[string] {
	return func(s Span) (Span, string, error) {
		rem := s.Remaining()
		n := 0
		for n < len(rem) && strings.IndexByte(charset, rem[n]) < 0 {
			n++
		}
		if n == 0 {
			return s, "", mismatch(s, "not one of "+charset)
		}
		return s.advance(n), rem[:n], nil
	}
}

// Take consumes exactly n bytes, failing if fewer remain.
func Take(n int) Parser[string] {
	return func(s Span) (Span, string, error) {
		rem := s.Remaining()
		if len(rem) < n {
			return s, "", mismatch(s, "n more bytes")
		}
		return s.advance(n), rem[:n], nil
	}
}

// Digit1 matches one or more ASCII decimal digits.
func Digit1() Parser[string] {
	return IsA("0123456789")
}

// EOF succeeds, consuming nothing, only at end of input.
func EOF() Parser[struct{}] {
	return func(s Span) (Span, struct{}, error) {
		if !s.AtEOF() {
			return s, struct{}{}, mismatch(s, "end of input")
		}
		return s, struct{}{}, nil
	}
}

// Lexeme is a matched piece of text together with the cursor it started
// at, which is what Concat needs to check adjacency.
type Lexeme struct {
	Start Span
	Text  string
}

// End returns the cursor immediately after this lexeme.
func (l Lexeme) End() Span { return l.Start.advance(len(l.Text)) }

// Lex wraps a text-producing parser so its result carries the start
// cursor it matched from, which Concat needs.
func Lex(p Parser[string]) Parser[Lexeme] {
	return func(s Span) (Span, Lexeme, error) {
		out, txt, err := p(s)
		if err != nil {
			return s, Lexeme{}, err
		}
		return out, Lexeme{Start: s, Text: txt}, nil
	}
}

// Concat re-borrows two adjacent lexemes into the one spanning both,
// failing if they are not adjacent. This is what the numeric
// micro-grammar uses to stitch an underscore-separated digit run back into
// a single contiguous token without allocating on every digit.
func Concat(a, b Lexeme) (Lexeme, bool) {
	if a.Start.st != b.Start.st || a.End().offset != b.Start.offset {
		return Lexeme{}, false
	}
	return Lexeme{Start: a.Start, Text: a.Text + b.Text}, true
}
