package cst

// ambiguityFrame marks one level of two-pass speculative evaluation, kept
// on the parse context's stack purely so nested AmbiguousOpt calls can be
// told apart while debugging; the harness itself does not need to inspect
// it.
type ambiguityFrame struct {
	offset int
}

// AmbiguousOpt resolves the `opt(type) name`-shaped ambiguity:
// a handful of productions have an optional prefix that is itself
// ambiguous with what follows it (the classic case is implicit-vs-explicit
// data type). Rather than threading a speculative "maybe retry as None"
// token through a generic sequence combinator, AmbiguousOpt takes the rest
// of the enclosing production as an explicit continuation:
//
//  1. It tries p, then runs cont with the Some(p) result.
//  2. If that fails (and p itself matched), it rewinds to before p and
//     reruns cont with None, letting the enclosing production succeed
//     without the optional prefix.
//  3. If both interpretations would succeed, the "with p" interpretation
//     wins because it is always tried first: this is the longest-match
//     tie-break the grammar requires.
//
// A fatal error from either p or cont bypasses the retry and propagates
// immediately, same as it would through Alt.
func AmbiguousOpt[T, R any](p Parser[T], cont func(Option[T]) Parser[R]) Parser[R] {
	return func(s Span) (Span, R, error) {
		var zero R
		s.st.ambig = append(s.st.ambig, ambiguityFrame{offset: s.offset})
		defer func() {
			s.st.ambig = s.st.ambig[:len(s.st.ambig)-1]
		}()

		if s1, v, err := p(s); err == nil {
			if out, r, err2 := cont(Some(v))(s1); err2 == nil {
				return out, r, nil
			} else if IsFatal(err2) {
				return s, zero, err2
			}
			// enclosing sequence failed with p present: rewind and retry
			// as if p had been absent.
		} else if IsFatal(err) {
			return s, zero, err
		}

		return cont(None[T]())(s)
	}
}
