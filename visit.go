package cst

import "reflect"

// visitGeneric provides the declared-order field walk for the library's own
// generic container types (Option[T], Pair2/Pair3/Pair4, raw slices) so that
// grammar productions built out of them do not each need a hand-written
// Visit method just to recurse into their plumbing. Concrete grammar nodes
// still implement Node.Visit by hand, in source order; this
// reflection fallback only ever looks at the shapes this package itself
// defines.
func visitGeneric(v interface{}, emit func(Locate, Trivia)) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			visitField(rv.Index(i).Interface(), emit)
		}
	case reflect.Ptr:
		if !rv.IsNil() {
			visitField(rv.Elem().Interface(), emit)
		}
	case reflect.Struct:
		if some := rv.FieldByName("Some"); some.IsValid() && some.Kind() == reflect.Bool {
			// Option[T]
			if some.Bool() {
				if val := rv.FieldByName("Value"); val.IsValid() {
					visitField(val.Interface(), emit)
				}
			}
			return
		}
		t := rv.Type()
		for i := 0; i < rv.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			visitField(rv.Field(i).Interface(), emit)
		}
	default:
		// Scalars (bools, strings used as markers, ...) carry no Locate.
	}
}

// Walk performs the pre-order traversal over a parsed tree: every Locate is
// emitted followed immediately by its attached trivia, which is exactly the
// order needed to reconstruct the original source byte-for-byte.
func Walk(root Node, leading Trivia, emit func(Locate, Trivia)) {
	for _, w := range leading {
		emit(w.Locate, nil)
	}
	root.Visit(emit)
}
