package sv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// "nettype T wTsum with Tsum;" is the data_type form with
// an optional with-clause present.
func TestNetTypeDeclarationP_DataTypeFormWithClause(t *testing.T) {
	out, decl, err := NetTypeDeclarationP()(cstSpan("nettype T wTsum with Tsum;"))
	require.NoError(t, err)
	require.True(t, out.AtEOF())
	require.Equal(t, NetTypeDataType, decl.Kind)
	require.Equal(t, DataTypeReference, decl.Type.Kind)
	require.Equal(t, "T", decl.Type.Reference.Locate.Text())
	require.Equal(t, "wTsum", decl.Name.Locate.Text())
	require.True(t, decl.With.Some)
	require.Equal(t, "Tsum", decl.With.Value.Name.Locate.Text())
}

func TestNetTypeDeclarationP_DataTypeFormNoWithClause(t *testing.T) {
	out, decl, err := NetTypeDeclarationP()(cstSpan("nettype logic wSum;"))
	require.NoError(t, err)
	require.True(t, out.AtEOF())
	require.Equal(t, NetTypeDataType, decl.Kind)
	require.Equal(t, DataTypePrimitive, decl.Type.Kind)
	require.False(t, decl.With.Some)
}

func TestNetTypeDeclarationP_AliasForm(t *testing.T) {
	out, decl, err := NetTypeDeclarationP()(cstSpan("nettype wTsum wSum;"))
	require.NoError(t, err)
	require.True(t, out.AtEOF())
	require.Equal(t, NetTypeAlias, decl.Kind)
	require.Equal(t, "wTsum", decl.Alias.Locate.Text())
	require.Equal(t, "wSum", decl.Name.Locate.Text())
}
