// Package registration holds the course-registration core: reference-counted
// courses and students, the bounded lists that share them, and the offerings
// that bind a course to a room, a date and a group of attendees.
//
// Every holder of a course or student reference registers itself with Attach and
// gives the reference up with Detach. The holder whose Detach brings the count to
// zero is the last user and calls Remove. Release and Ref encode that rule so the
// lists in this package never pair an attach with the wrong detach.
//
// Nothing in this package is safe for concurrent use.
package registration

import (
	"fmt"
	"io"

	"github.com/yigit/courseregistry/internal/pkg/apperrors"
)

// Shared is implemented by entities that live on several lists at once.
type Shared interface {
	Name() string
	RefCount() int
	Attach() int
	Detach() int
	Remove()
	AreYou(name string) int
	Print(w io.Writer)
	ShortPrint(w io.Writer)
}

// ConsistencyError is the panic payload raised when the reference protocol is broken.
type ConsistencyError struct {
	Kind string
	Name string
	Op   string
	Refs int
}

func (e *ConsistencyError) Error() string {
	switch e.Op {
	case "remove":
		return fmt.Sprintf("a %s object (%s) destroyed with %d other objects referencing it", e.Kind, e.Name, e.Refs)
	case "detach":
		return fmt.Sprintf("detach on %s %q with no remaining references", e.Kind, e.Name)
	default:
		return fmt.Sprintf("%s on %s %q: %d references", e.Op, e.Kind, e.Name, e.Refs)
	}
}

// Unwrap lets callers match the payload with errors.Is.
func (e *ConsistencyError) Unwrap() error {
	return apperrors.ErrReferenceConsistency
}

func violation(kind, name, op string, refs int) {
	panic(&ConsistencyError{Kind: kind, Name: name, Op: op, Refs: refs})
}

// refCounter is embedded by Course and Student.
type refCounter struct {
	refs    int
	removed bool
}

func newRefCounter() refCounter {
	return refCounter{refs: 1}
}

func (r *refCounter) attach(kind, name string) int {
	if r.removed {
		violation(kind, name, "attach", r.refs)
	}
	r.refs++
	return r.refs
}

func (r *refCounter) detach(kind, name string) int {
	if r.refs <= 0 {
		violation(kind, name, "detach", r.refs)
	}
	r.refs--
	return r.refs
}

// beginRemove checks the destructor precondition and marks the entity removed.
func (r *refCounter) beginRemove(kind, name string) {
	if r.removed {
		violation(kind, name, "double remove", r.refs)
	}
	if r.refs > 1 {
		violation(kind, name, "remove", r.refs)
	}
	r.refs = 0
	r.removed = true
}

// Release detaches e and removes it when this was the last reference.
// It reports whether e was removed.
func Release(e Shared) bool {
	if e.Detach() == 0 {
		e.Remove()
		return true
	}
	return false
}

// Ref is one holder's reference to a shared entity. NewRef and Clone are the only
// ways to attach; Release is the only way to detach.
type Ref[T Shared] struct {
	entity   T
	released bool
}

// NewRef attaches a new holder to e.
func NewRef[T Shared](e T) *Ref[T] {
	e.Attach()
	return &Ref[T]{entity: e}
}

// Get returns the referenced entity.
func (r *Ref[T]) Get() T {
	if r.released {
		violation("reference", r.entity.Name(), "use after release", r.entity.RefCount())
	}
	return r.entity
}

// Clone attaches another holder to the same entity.
func (r *Ref[T]) Clone() *Ref[T] {
	return NewRef(r.Get())
}

// Release gives up this reference, removing the entity if it was the last one.
func (r *Ref[T]) Release() bool {
	if r.released {
		violation("reference", r.entity.Name(), "double release", r.entity.RefCount())
	}
	r.released = true
	return Release(r.entity)
}
