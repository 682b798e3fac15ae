package sv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModuleInstantiationP_NamedAndOrderedPorts(t *testing.T) {
	out, mi, err := ModuleInstantiationP()(cstSpan("andgate g1(.a(x), y);"))
	require.NoError(t, err)
	require.True(t, out.AtEOF())
	require.Equal(t, "andgate", mi.ModuleName.Locate.Text())
	require.Len(t, mi.Instances.Rest, 0)

	inst := mi.Instances.First
	require.Equal(t, "g1", inst.Instance.Name.Locate.Text())
	require.True(t, inst.Ports.Inner.Some)

	ports := inst.Ports.Inner.Value
	require.Equal(t, PortNamed, ports.First.Kind)
	require.Equal(t, "a", ports.First.Name.Locate.Text())
	require.True(t, ports.First.Expr.Inner.Some)
	require.Len(t, ports.Rest, 1)
	require.Equal(t, PortOrdered, ports.Rest[0].Item.Kind)
	require.Equal(t, "y", ports.Rest[0].Item.Ordered.Primary.Ident.Locate.Text())
}

func TestModuleInstantiationP_MultipleInstancesNoPorts(t *testing.T) {
	out, mi, err := ModuleInstantiationP()(cstSpan("mybuf b1(), b2();"))
	require.NoError(t, err)
	require.True(t, out.AtEOF())
	require.Len(t, mi.Instances.Rest, 1)
	require.False(t, mi.Instances.First.Ports.Inner.Some)
	require.Equal(t, "b2", mi.Instances.Rest[0].Item.Instance.Name.Locate.Text())
}
