package cstfmt

import (
	"testing"

	"github.com/erihsu/sv-parser-go/sv"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// Emit/EmitString reconstruct the source byte-for-byte (the round-trip
// property): every token's trailing trivia is already attached by the
// lexical layer, so walking leading trivia plus the root recovers the
// original text exactly, with no separate handling needed for whitespace
// between tokens.
func TestEmitString_RoundTripsExactSource(t *testing.T) {
	const src = "  // header\nwire a;\n"
	result, err := sv.ParseSourceText(src)
	require.NoError(t, err)

	got, err := EmitString(result.Node, result.Leading)
	require.NoError(t, err)
	require.Equal(t, src, got)
}

func TestEmitString_RoundTripsMultipleItems(t *testing.T) {
	const src = "nettype T wTsum with Tsum;\nwire a;\nx;\n"
	result, err := sv.ParseSourceText(src)
	require.NoError(t, err)

	got, err := EmitString(result.Node, result.Leading)
	require.NoError(t, err)
	require.Equal(t, src, got)
}

// Snapshot/Restore round-trip a parsed tree's flattened token shape through
// CBOR without loss.
func TestSnapshotRestore_RoundTrips(t *testing.T) {
	const src = "wire a;\n"
	result, err := sv.ParseSourceText(src)
	require.NoError(t, err)

	data, err := Snapshot(result.Node, result.Leading)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	restored, err := Restore(data)
	require.NoError(t, err)
	require.NotEmpty(t, restored)
	require.Equal(t, "wire", restored[0].Text)

	direct := flatten(result.Node, result.Leading)
	if diff := cmp.Diff(direct, restored); diff != "" {
		t.Fatalf("restored snapshot diverged from direct flatten (-direct +restored):\n%s", diff)
	}
}

// Equal reports structural equality for two independent parses of the same
// source (the idempotence property: parse, pretty-emit, re-parse, compare
// structurally) and inequality for parses of different source.
func TestEqual_SameSourceParsedTwiceIsEqual(t *testing.T) {
	const src = "wire a;\n"
	r1, err := sv.ParseSourceText(src)
	require.NoError(t, err)
	r2, err := sv.ParseSourceText(src)
	require.NoError(t, err)

	require.True(t, Equal(r1.Node, r2.Node, r1.Leading, r2.Leading))
}

func TestEqual_DifferentSourceIsNotEqual(t *testing.T) {
	r1, err := sv.ParseSourceText("wire a;\n")
	require.NoError(t, err)
	r2, err := sv.ParseSourceText("wire b;\n")
	require.NoError(t, err)

	require.False(t, Equal(r1.Node, r2.Node, r1.Leading, r2.Leading))
}
