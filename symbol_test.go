package cst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Longest match: symbol("<") must never succeed on input starting
// with "<=", because "<=" is itself a recognized operator and sorts before
// the bare "<" in the maximal-munch scan.
func TestSymbol_LongestMatch(t *testing.T) {
	_, _, err := SymbolOf("<")(NewSpan("<="))
	require.Error(t, err)

	out, sym, err := SymbolOf("<=")(NewSpan("<= x"))
	require.NoError(t, err)
	require.Equal(t, "x", out.Remaining())
	require.Equal(t, "<=", sym.Locate.Text())
}

func TestSymbol_PlainLessThanStillMatchesAlone(t *testing.T) {
	out, sym, err := SymbolOf("<")(NewSpan("< x"))
	require.NoError(t, err)
	require.Equal(t, "x", out.Remaining())
	require.Equal(t, "<", sym.Locate.Text())
}

// Longest match: keyword("always") must not match the prefix of the
// longer identifier "always_comb".
func TestKeyword_DoesNotMatchLongerIdentifier(t *testing.T) {
	_, _, err := KeywordOf("always")(NewSpan("always_comb"))
	require.Error(t, err)

	out, kw, err := KeywordOf("always_comb")(NewSpan("always_comb begin"))
	require.NoError(t, err)
	require.Equal(t, "begin", out.Remaining())
	require.Equal(t, "always_comb", kw.Locate.Text())
}

func TestIdentifier_RejectsReservedWord(t *testing.T) {
	_, _, err := Identifier()(NewSpan("always"))
	require.Error(t, err)

	out, id, err := Identifier()(NewSpan("always_x"))
	require.NoError(t, err)
	require.True(t, out.AtEOF())
	require.Equal(t, "always_x", id.Locate.Text())
}
