// Package cstfmt supplies the two pieces of tooling the core's CST walking
// API (cst.Walk) is built to support but does not itself provide: a
// byte-for-byte source reconstructor (Emit) and a stable on-disk snapshot
// format (Snapshot/Restore) for the idempotence property test and for
// external tooling (the linter, pretty-printer, and elaborator the core
// treats as collaborators) that wants to cache a parsed tree without
// re-parsing.
package cstfmt

import (
	"bytes"
	"io"

	cst "github.com/erihsu/sv-parser-go"
	"github.com/fxamacker/cbor/v2"
)

// Emit performs the pre-order walk over a parsed tree: every
// Locate's exact source bytes, followed immediately by its attached
// trivia's exact source bytes, reproducing the original input exactly
//. leading is the file-level trivia the
// top-level entry point returns alongside the root node (owned by the
// root, not by any token).
func Emit(w io.Writer, root cst.Node, leading cst.Trivia) error {
	var werr error
	write := func(s string) {
		if werr != nil {
			return
		}
		_, werr = io.WriteString(w, s)
	}
	emitTrivia := func(t cst.Trivia) {
		for _, piece := range t {
			write(piece.Locate.Text())
		}
	}
	cst.Walk(root, leading, func(loc cst.Locate, trivia cst.Trivia) {
		write(loc.Text())
		emitTrivia(trivia)
	})
	return werr
}

// EmitString is Emit into a freshly allocated buffer, for callers that want
// the reconstructed text directly rather than an io.Writer destination.
func EmitString(root cst.Node, leading cst.Trivia) (string, error) {
	var buf bytes.Buffer
	if err := Emit(&buf, root, leading); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// TokenSnapshot is one emitted piece of a pre-order walk: either a token's
// Locate or one attached trivia item, flattened into source order. Two
// parses of equivalent source produce equal snapshot slices iff their CSTs
// visit every field in the same order with the same coordinates, which is
// exactly what the idempotence check needs ("parse, pretty-emit,
// re-parse, compare structurally") without requiring a generic deep-equal
// over the closed Node type family.
type TokenSnapshot struct {
	Offset    int    `cbor:"1,keyasint"`
	Length    int    `cbor:"2,keyasint"`
	Line      int    `cbor:"3,keyasint"`
	Column    int    `cbor:"4,keyasint"`
	Text      string `cbor:"5,keyasint"`
	IsTrivia  bool   `cbor:"6,keyasint"`
	TriviaKnd int    `cbor:"7,keyasint"`
}

func flatten(root cst.Node, leading cst.Trivia) []TokenSnapshot {
	var out []TokenSnapshot
	appendTrivia := func(t cst.Trivia) {
		for _, piece := range t {
			out = append(out, TokenSnapshot{
				Offset: piece.Locate.Offset, Length: piece.Locate.Length,
				Line: piece.Locate.Line, Column: piece.Locate.Column,
				Text: piece.Locate.Text(), IsTrivia: true, TriviaKnd: int(piece.Kind),
			})
		}
	}
	cst.Walk(root, leading, func(loc cst.Locate, trivia cst.Trivia) {
		out = append(out, TokenSnapshot{
			Offset: loc.Offset, Length: loc.Length, Line: loc.Line, Column: loc.Column,
			Text: loc.Text(),
		})
		appendTrivia(trivia)
	})
	return out
}

// Snapshot marshals a parsed tree's structural shape, every token and
// trivia piece in pre-order, to CBOR. It is not a serialization
// of the typed Node tree itself (the closed per-production type family has
// no generic decode path); it is a stable fingerprint sufficient to compare
// two parses for structural equality, which is all the idempotence
// property test needs.
func Snapshot(root cst.Node, leading cst.Trivia) ([]byte, error) {
	return cbor.Marshal(flatten(root, leading))
}

// Restore decodes bytes produced by Snapshot back into the flattened
// token/trivia sequence, for comparison against a freshly computed one.
func Restore(data []byte) ([]TokenSnapshot, error) {
	var out []TokenSnapshot
	if err := cbor.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Equal reports whether two parses produced structurally equal trees, by
// comparing their flattened token/trivia sequences directly (no CBOR round
// trip needed when both trees are already in memory).
func Equal(a, b cst.Node, aLeading, bLeading cst.Trivia) bool {
	fa, fb := flatten(a, aLeading), flatten(b, bLeading)
	if len(fa) != len(fb) {
		return false
	}
	for i := range fa {
		if fa[i] != fb[i] {
			return false
		}
	}
	return true
}
