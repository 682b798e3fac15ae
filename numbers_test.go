package cst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// "659" is an unsigned decimal literal.
func TestNumberP_UnsignedDecimal(t *testing.T) {
	out, n, err := NumberP()(NewSpan("659"))
	require.NoError(t, err)
	require.True(t, out.AtEOF())
	require.Equal(t, NumberIntegral, n.Kind)
	require.Equal(t, IntegralDecimal, n.Integral.Kind)
	require.Equal(t, "659", n.Integral.Decimal.Unsigned.Locate.Text())
}

// "32 'h 12ab_f001" is a sized hex literal with
// underscore-separated digits and whitespace freely interleaved between
// size/base/value.
func TestNumberP_SizedHexWithUnderscores(t *testing.T) {
	out, n, err := NumberP()(NewSpan("32 'h 12ab_f001"))
	require.NoError(t, err)
	require.True(t, out.AtEOF())
	require.Equal(t, NumberIntegral, n.Kind)
	require.Equal(t, IntegralHex, n.Integral.Kind)
	hex := n.Integral.Hex
	require.True(t, hex.Size.Some)
	require.Equal(t, "32", hex.Size.Value.Value.Locate.Text())
	require.Equal(t, "12ab_f001", hex.Value.Locate.Text())
}

// "1.30e-2" is a floating real number with a fraction and a signed
// exponent.
func TestNumberP_FloatingReal(t *testing.T) {
	out, n, err := NumberP()(NewSpan("1.30e-2"))
	require.NoError(t, err)
	require.True(t, out.AtEOF())
	require.Equal(t, NumberReal, n.Kind)
	require.Equal(t, RealFloating, n.Real.Kind)
	require.Equal(t, "1", n.Real.Floating.Integer.Locate.Text())
	require.True(t, n.Real.Floating.Sign.Some)
}

// A based decimal literal's value digits attach their trailing trivia the
// same way every other token does, so a declaration can continue right
// after the literal.
func TestNumberP_BasedDecimalAttachesTrailingTrivia(t *testing.T) {
	out, n, err := NumberP()(NewSpan("4 'd 10 "))
	require.NoError(t, err)
	require.True(t, out.AtEOF())
	require.Equal(t, NumberIntegral, n.Kind)
	require.Equal(t, IntegralDecimal, n.Integral.Kind)
	require.Equal(t, DecimalBaseUnsigned, n.Integral.Decimal.Kind)
}

func TestUnbasedUnsizedLiteralP_FourForms(t *testing.T) {
	for _, src := range []string{"'0", "'1", "'x", "'z"} {
		out, lit, err := UnbasedUnsizedLiteralP()(NewSpan(src))
		require.NoError(t, err, src)
		require.True(t, out.AtEOF(), src)
		require.Equal(t, src, lit.Value.Locate.Text())
	}
}

func TestNumberP_LeadingDotFails(t *testing.T) {
	_, _, err := NumberP()(NewSpan(".12"))
	require.Error(t, err)
}

func TestNumberP_TrailingDotNotReal(t *testing.T) {
	// "9." is not a valid real (no digits after the dot); NumberP falls
	// back to matching the decimal "9" alone, leaving "." as residual.
	out, n, err := NumberP()(NewSpan("9."))
	require.NoError(t, err)
	require.Equal(t, NumberIntegral, n.Kind)
	require.Equal(t, ".", out.Remaining())
}
