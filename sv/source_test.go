package sv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSourceText_MultipleItemKinds(t *testing.T) {
	src := "nettype T wTsum with Tsum;\n" +
		"wire a;\n" +
		"andgate g1(.a(x), y);\n" +
		"x;\n"

	result, err := ParseSourceText(src)
	require.NoError(t, err)
	require.True(t, result.Residual.AtEOF())
	require.Len(t, result.Node.Items, 4)

	require.Equal(t, ItemNetTypeDecl, result.Node.Items[0].Kind)
	require.Equal(t, ItemNetDecl, result.Node.Items[1].Kind)
	require.Equal(t, ItemModuleInst, result.Node.Items[2].Kind)
	require.Equal(t, ItemDataDecl, result.Node.Items[3].Kind)

	require.Equal(t, "x", result.Node.Items[3].Data.Name.Locate.Text())
	require.False(t, result.Node.Items[3].Data.Type.Some)
}

func TestParseSourceText_EmptySourceIsZeroItems(t *testing.T) {
	result, err := ParseSourceText("")
	require.NoError(t, err)
	require.Len(t, result.Node.Items, 0)
}
