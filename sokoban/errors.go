package sokoban

import "errors"

// ErrInternalInvariant marks defects spec.md §7 calls InternalInvariant:
// an attempt to move a box that does not exist in the current state. It is
// never raised for deadlock or dominance pruning, which are silent per
// spec.md §7; Domain.Result panics with it only when the macro-action
// threaded in by the search engine names a box absent from the state it is
// applied to or carries no keystrokes, which would indicate a bug in
// macro-action enumeration itself.
var ErrInternalInvariant = errors.New("sokoban: internal invariant violated")
