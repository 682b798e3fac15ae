package sv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConditionalStatementP_IfElseIfElse(t *testing.T) {
	out, cs, err := ConditionalStatementP()(cstSpan("if (x) y = z; else if (a) b = c; else w = v;"))
	require.NoError(t, err)
	require.True(t, out.AtEOF())
	require.Equal(t, StatementAssign, cs.Then.Kind)
	require.Len(t, cs.ElseIfs, 1)
	require.Equal(t, "a", cs.ElseIfs[0].Cond.Inner.Primary.Ident.Locate.Text())
	require.True(t, cs.Else.Some)
}

func TestConditionalStatementP_BareIfNoElse(t *testing.T) {
	out, cs, err := ConditionalStatementP()(cstSpan("if (x) y = z;"))
	require.NoError(t, err)
	require.True(t, out.AtEOF())
	require.Len(t, cs.ElseIfs, 0)
	require.False(t, cs.Else.Some)
}

// "T x;" is consistent with the data_type-present reading on the first
// try, since the continuation (identifier, then ";") also succeeds.
func TestDataDeclarationP_ExplicitTypeWins(t *testing.T) {
	out, dd, err := DataDeclarationP()(cstSpan("T x;"))
	require.NoError(t, err)
	require.True(t, out.AtEOF())
	require.True(t, dd.Type.Some)
	require.Equal(t, "T", dd.Type.Value.Reference.Locate.Text())
	require.Equal(t, "x", dd.Name.Locate.Text())
}

// "x;" greedily matches as a DataType reference first, but the ";" that
// should terminate the declaration can't double as the variable name, so
// AmbiguousOpt retries the continuation with the type absent.
func TestDataDeclarationP_BareIdentifierRetriesWithoutType(t *testing.T) {
	out, dd, err := DataDeclarationP()(cstSpan("x;"))
	require.NoError(t, err)
	require.True(t, out.AtEOF())
	require.False(t, dd.Type.Some)
	require.Equal(t, "x", dd.Name.Locate.Text())
}
