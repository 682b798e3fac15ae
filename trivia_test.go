package cst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// A one-line comment and a block comment are both recognized as trivia;
// at start of input LeadingTrivia returns them for the root to own, and
// the token that follows is left unconsumed.
func TestLeadingTrivia_ConsumesLineThenBlockComment(t *testing.T) {
	src := "// hello\n/* multi\nline */foo"
	out, trivia, err := LeadingTrivia()(NewSpan(src))
	require.NoError(t, err)
	require.Equal(t, "foo", out.Remaining())
	require.Len(t, trivia, 3) // comment, the newline ending its line, block comment
	require.Equal(t, LineComment, trivia[0].Kind)
	require.Equal(t, "// hello", trivia[0].Locate.Text())
	require.Equal(t, Whitespace, trivia[1].Kind)
	require.Equal(t, BlockComment, trivia[2].Kind)
	require.Equal(t, "/* multi\nline */", trivia[2].Locate.Text())
}

func TestWS_AttachesTrailingCommentToPrecedingToken(t *testing.T) {
	out, sym, err := symbol(";")(NewSpan("; // trailing\nnext"))
	require.NoError(t, err)
	require.Equal(t, "next", out.Remaining())
	require.Len(t, sym.Trivia, 3) // the space, the line comment, its newline
	require.Equal(t, LineComment, sym.Trivia[1].Kind)
	require.Equal(t, "// trailing", sym.Trivia[1].Locate.Text())
}

func TestBlockComment_UnterminatedIsFatal(t *testing.T) {
	_, _, err := blockComment()(NewSpan("/* never closes"))
	require.Error(t, err)
	require.True(t, IsFatal(err))
}
