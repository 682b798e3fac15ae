package cst

// memoEntry is a cached production result keyed by (production, offset).
// value/err are stored as interface{} because one shared map serves every
// production's Memoize wrapper regardless of that production's result
// type T; Memoize recovers the concrete type with a type assertion.
type memoEntry struct {
	endOffset int
	value     interface{}
	err       error
}

// Memoize caches a production's result in the parse context, keyed by
// (id, offset): a cache hit returns the stored residual offset and result
// without re-running p. Memoize must not be applied to the same
// production as LeftRecursive: the two harnesses are never combined on
// one production, since a cached success would never be re-entered to let
// the recursion counter decay.
func Memoize[T any](id ProductionID, p Parser[T]) Parser[T] {
	return func(s Span) (Span, T, error) {
		key := recKey{id: id, offset: s.offset}
		if e, hit := s.st.memo[key]; hit {
			if e.err != nil {
				return s, e.value.(T), e.err
			}
			pos := s.st.pcalc.calculate(e.endOffset)
			out := Span{st: s.st, offset: e.endOffset, line: pos.line, column: pos.column}
			return out, e.value.(T), nil
		}

		out, v, err := p(s)
		if err != nil {
			if IsFatal(err) {
				// fatal errors abort the parse; nothing to cache.
				var zero T
				return s, zero, err
			}
			var zero T
			s.st.memo[key] = memoEntry{value: zero, err: err}
			return s, zero, err
		}
		s.st.memo[key] = memoEntry{endOffset: out.offset, value: v}
		return out, v, nil
	}
}
