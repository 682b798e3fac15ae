package sv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// "trireg (large) logic #(0,0,0) cap1;" exercises charge
// strength, an explicit data_type, a three-expression delay3, and a single
// net_decl_assignment, all in one declaration.
func TestNetDeclarationP_FullForm(t *testing.T) {
	out, decl, err := NetDeclarationP()(cstSpan("trireg (large) logic #(0,0,0) cap1;"))
	require.NoError(t, err)
	require.True(t, out.AtEOF())
	require.Equal(t, "trireg", decl.NetTy.Locate.Text())

	require.True(t, decl.Strength.Some)
	require.Equal(t, StrengthCharge, decl.Strength.Value.Kind)
	require.Equal(t, "large", decl.Strength.Value.Charge.Level.Inner.Locate.Text())

	require.False(t, decl.VecScalared.Some)

	require.True(t, decl.Type.Some)
	require.Equal(t, DataTypePrimitive, decl.Type.Value.Kind)
	require.Equal(t, "logic", decl.Type.Value.Primitive.Locate.Text())

	require.True(t, decl.Delay.Some)
	require.True(t, decl.Delay.Value.List.Some)
	require.Len(t, decl.Delay.Value.List.Value.Inner.Rest, 2) // 3 total: First + 2 more

	require.Len(t, decl.Assignments.Rest, 0) // a single net_decl_assignment
	require.Equal(t, "cap1", decl.Assignments.First.Name.Locate.Text())
	require.False(t, decl.Assignments.First.Value.Some)
}

// A bare form with no strength, vectored/scalared, explicit type, or delay
// still parses: every optional slot legitimately absent.
func TestNetDeclarationP_BareForm(t *testing.T) {
	out, decl, err := NetDeclarationP()(cstSpan("wire a;"))
	require.NoError(t, err)
	require.True(t, out.AtEOF())
	require.False(t, decl.Strength.Some)
	require.False(t, decl.VecScalared.Some)
	require.False(t, decl.Type.Some)
	require.False(t, decl.Delay.Some)
	require.Len(t, decl.Assignments.Rest, 0)
}

// "wire w = x + 1;" has an implicit type: `w` is first tried as a type
// reference, the assignment list then finds nothing before "=", and the
// declaration retries with the type absent so `w` becomes the net name.
func TestNetDeclarationP_ImplicitTypeWithInitializer(t *testing.T) {
	out, decl, err := NetDeclarationP()(cstSpan("wire w = x + 1;"))
	require.NoError(t, err)
	require.True(t, out.AtEOF())
	require.False(t, decl.Type.Some)
	require.Equal(t, "w", decl.Assignments.First.Name.Locate.Text())
	require.True(t, decl.Assignments.First.Value.Some)
}

// With both an explicit type and a net name present, the explicit-type
// reading wins on the first pass (longest match).
func TestNetDeclarationP_ExplicitTypeReferenceWins(t *testing.T) {
	out, decl, err := NetDeclarationP()(cstSpan("wire mytype w;"))
	require.NoError(t, err)
	require.True(t, out.AtEOF())
	require.True(t, decl.Type.Some)
	require.Equal(t, DataTypeReference, decl.Type.Value.Kind)
	require.Equal(t, "mytype", decl.Type.Value.Reference.Locate.Text())
	require.Equal(t, "w", decl.Assignments.First.Name.Locate.Text())
}
