package sv

import cst "github.com/erihsu/sv-parser-go"

// cstSpan is a one-word alias for cst.NewSpan, used throughout this
// package's tests.
func cstSpan(text string) cst.Span {
	return cst.NewSpan(text)
}
