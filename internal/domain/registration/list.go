package registration

import (
	"io"

	"github.com/yigit/courseregistry/internal/pkg/apperrors"
)

// List is an ordered, capacity-bounded list of shared references. Holding an
// element accounts for exactly one reference on it.
type List[T Shared] struct {
	label    string
	capacity int
	refs     []*Ref[T]
}

// CourseList is used both as a catalog and as a prerequisite set.
type CourseList = List[*Course]

// StudentList is used both as a roster and as an attendee set.
type StudentList = List[*Student]

// NewList creates an empty list that accepts at most capacity elements.
func NewList[T Shared](label string, capacity int) *List[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &List[T]{label: label, capacity: capacity}
}

// NewCourseList creates an empty course list.
func NewCourseList(capacity int) *CourseList {
	return NewList[*Course]("course list", capacity)
}

// NewStudentList creates an empty student list.
func NewStudentList(capacity int) *StudentList {
	return NewList[*Student]("student list", capacity)
}

// CopyList returns a list of the same capacity holding the same entities, each
// attached once more. Entity payloads are never copied.
func CopyList[T Shared](other *List[T]) *List[T] {
	clone := NewList[T](other.label, other.capacity)
	clone.refs = make([]*Ref[T], 0, len(other.refs))
	for _, r := range other.refs {
		clone.refs = append(clone.refs, r.Clone())
	}
	return clone
}

func (l *List[T]) Len() int { return len(l.refs) }
func (l *List[T]) Cap() int { return l.capacity }

// Full reports whether the next Add would be rejected.
func (l *List[T]) Full() bool {
	return len(l.refs) >= l.capacity
}

// Items returns the held entities in insertion order.
func (l *List[T]) Items() []T {
	items := make([]T, 0, len(l.refs))
	for _, r := range l.refs {
		items = append(items, r.Get())
	}
	return items
}

// Add appends e and attaches it. A full list is left unchanged.
func (l *List[T]) Add(e T) error {
	if l.Full() {
		return apperrors.NewCapacityError(l.label, l.capacity)
	}
	l.refs = append(l.refs, NewRef(e))
	return nil
}

// Find returns the first element whose name matches.
func (l *List[T]) Find(name string) (T, bool) {
	if i := l.index(name); i >= 0 {
		return l.refs[i].Get(), true
	}
	var zero T
	return zero, false
}

// Contains reports whether an element with the given name is held.
func (l *List[T]) Contains(name string) bool {
	return l.index(name) >= 0
}

// FindAll reports whether every element of other is present in l by name.
func (l *List[T]) FindAll(other *List[T]) bool {
	for _, r := range other.refs {
		if !l.Contains(r.Get().Name()) {
			return false
		}
	}
	return true
}

// Delete drops the named element from the list and releases its reference.
// It reports whether an element was found.
func (l *List[T]) Delete(name string) bool {
	i := l.index(name)
	if i < 0 {
		return false
	}
	r := l.refs[i]
	l.refs = append(l.refs[:i], l.refs[i+1:]...)
	r.Release()
	return true
}

// Remove releases every element in insertion order and empties the list.
func (l *List[T]) Remove() {
	refs := l.refs
	l.refs = nil
	for _, r := range refs {
		r.Release()
	}
}

// Print writes the short form of each element.
func (l *List[T]) Print(w io.Writer) {
	for _, r := range l.refs {
		r.Get().ShortPrint(w)
	}
}

func (l *List[T]) index(name string) int {
	for i, r := range l.refs {
		if r.Get().AreYou(name) == 0 {
			return i
		}
	}
	return -1
}
