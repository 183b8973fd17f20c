package sut

import "fmt"

// ConstraintKind tags the semantics of a Constraint.
type ConstraintKind int

const (
	// Positive requires the ordered pair to occur at least once across the
	// whole test set.
	Positive ConstraintKind = iota
	// Once requires the ordered pair to occur in exactly one path, and at
	// most once within that path.
	Once
	// Negative forbids the ordered pair from occurring in any path.
	Negative
	// MaxOnce requires the ordered pair to occur in at most one path, and
	// at most once within that path.
	MaxOnce
)

// String renders the kind using the textual tokens from the SUT text
// format's constraint lines ("Constraint[<from> - <to> - <TYPE>]").
func (k ConstraintKind) String() string {
	switch k {
	case Positive:
		return "POSITIVE"
	case Once:
		return "ONCE"
	case Negative:
		return "NEGATIVE"
	case MaxOnce:
		return "MAX_ONCE"
	default:
		return fmt.Sprintf("ConstraintKind(%d)", int(k))
	}
}

// ParseConstraintKind parses one of the four grammar tokens. It is exported
// so suttext can reuse the canonical token set instead of duplicating it.
func ParseConstraintKind(token string) (ConstraintKind, bool) {
	switch token {
	case "POSITIVE":
		return Positive, true
	case "ONCE":
		return Once, true
	case "NEGATIVE":
		return Negative, true
	case "MAX_ONCE":
		return MaxOnce, true
	default:
		return 0, false
	}
}

// Constraint is an ordered vertex pair tagged with a kind. Immutable once
// created; comparable, so it can key a set (map[Constraint]struct{}) for
// coverage bookkeeping.
type Constraint struct {
	From string
	To   string
	Kind ConstraintKind
}
