package sv

import (
	"testing"

	cst "github.com/erihsu/sv-parser-go"
	"github.com/stretchr/testify/require"
)

// SpecifyTerminalDescriptorP is a deliberate stub: it must fail
// cleanly, as a recoverable mismatch rather than a fatal error, on any
// input whatsoever, and must not advance the cursor.
func TestSpecifyTerminalDescriptorP_AlwaysFailsWithoutAdvancing(t *testing.T) {
	out, _, err := SpecifyTerminalDescriptorP()(cstSpan("pin_a"))
	require.Error(t, err)
	require.False(t, cst.IsFatal(err))
	require.Equal(t, 0, out.Offset())
}
