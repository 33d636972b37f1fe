package domain

import m "markhound.dev/pkg/markhound/internal/model"

// classScope records a class header's indentation level together with the
// markers declared on the class itself.
type classScope struct {
	indent  int
	markers m.MarkerSet
}

// scopeTracker maintains the currently-active class scopes during a forward
// scan. Scope boundaries are approximated by indentation: a later class at
// the same or a shallower indentation closes the earlier scope.
type scopeTracker struct {
	scopes []classScope
}

// enterClass registers a class definition at the given indentation level.
// Scopes at the same or deeper indentation are closed first. Classes with no
// markers of their own are not stored since they can never exclude a method.
func (t *scopeTracker) enterClass(indent int, markers m.MarkerSet) {
	active := t.scopes[:0]
	for _, scope := range t.scopes {
		if scope.indent < indent {
			active = append(active, scope)
		}
	}

	t.scopes = active

	if len(markers) > 0 {
		t.scopes = append(t.scopes, classScope{indent: indent, markers: markers})
	}
}

// marked reports whether a function at the given indentation level inherits
// an excluded marker from any enclosing class. A function is enclosed by a
// scope iff its indentation is strictly deeper than the class header's.
func (t *scopeTracker) marked(indent int, excluded m.MarkerSet) bool {
	for _, scope := range t.scopes {
		if indent > scope.indent && scope.markers.Intersects(excluded) {
			return true
		}
	}

	return false
}
