package sv

import cst "github.com/erihsu/sv-parser-go"

// SpecifyTerminalDescriptor is the placeholder node for `specify_terminal_descriptor`
// (LRM A.7.5.3: a path endpoint, optionally range-indexed). The real
// path-description productions are left for an external grammar layer to
// supply; this core keeps a stub rather than guessing at path syntax it
// cannot verify against the LRM's specify-block semantics.
type SpecifyTerminalDescriptor struct{}

func (SpecifyTerminalDescriptor) Visit(func(cst.Locate, cst.Trivia)) {}

// SpecifyTerminalDescriptorP always fails, per the stub note above: any
// caller reaching into the specify section gets a clean, well-typed
// mismatch rather than a silently wrong parse.
func SpecifyTerminalDescriptorP() cst.Parser[SpecifyTerminalDescriptor] {
	return func(s cst.Span) (cst.Span, SpecifyTerminalDescriptor, error) {
		var zero SpecifyTerminalDescriptor
		return s, zero, cst.AlwaysFail(s, "specify_terminal_descriptor is not implemented by this core")
	}
}
