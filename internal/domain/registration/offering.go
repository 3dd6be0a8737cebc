package registration

import (
	"fmt"
	"io"

	"github.com/yigit/courseregistry/internal/pkg/apperrors"
)

// Outcome is the result of an enrollment attempt that did not fail.
type Outcome int

const (
	OutcomeEnrolled Outcome = iota + 1
	OutcomeRefused
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEnrolled:
		return "enrolled"
	case OutcomeRefused:
		return "refused"
	default:
		return "unknown"
	}
}

// Enrollment describes an enrollment attempt. Missing names the prerequisites the
// student lacks when the admission was refused.
type Enrollment struct {
	Outcome Outcome
	Missing []string
}

// Enrolled reports whether the student was admitted.
func (e Enrollment) Enrolled() bool {
	return e.Outcome == OutcomeEnrolled
}

// CourseOffering binds a course to a room, a date and its attendees. Offerings are
// owned by a single OfferingList and are never shared.
type CourseOffering struct {
	course    *Ref[*Course]
	room      string
	date      string
	attendees *StudentList
	removed   bool
}

// NewCourseOffering attaches course and creates an empty attendee list.
func NewCourseOffering(course *Course, room, date string, attendeeCapacity int) *CourseOffering {
	return &CourseOffering{
		course:    NewRef(course),
		room:      room,
		date:      date,
		attendees: NewStudentList(attendeeCapacity),
	}
}

func (o *CourseOffering) Course() *Course { return o.course.Get() }
func (o *CourseOffering) Room() string    { return o.room }
func (o *CourseOffering) Date() string    { return o.date }

// Attendees exposes the attendee list for reading.
func (o *CourseOffering) Attendees() *StudentList { return o.attendees }

// AddStudent admits s when s has completed every prerequisite of the course.
// A refusal is an outcome, not an error; a full attendee list is an error.
func (o *CourseOffering) AddStudent(s *Student) (Enrollment, error) {
	course := o.Course()
	if !course.CheckPrerequisites(s.Courses()) {
		return Enrollment{
			Outcome: OutcomeRefused,
			Missing: course.MissingPrerequisites(s.Courses()),
		}, nil
	}
	if o.attendees.Contains(s.Name()) {
		return Enrollment{}, apperrors.NewConflictError(fmt.Sprintf("%s is already enrolled in %s", s.Name(), o.key()))
	}
	if err := o.attendees.Add(s); err != nil {
		return Enrollment{}, fmt.Errorf("enrolling %s in %s: %w", s.Name(), o.key(), err)
	}
	return Enrollment{Outcome: OutcomeEnrolled}, nil
}

// Remove releases the course reference and the attendee list.
func (o *CourseOffering) Remove() {
	if o.removed {
		violation("offering", o.key(), "double remove", 0)
	}
	o.removed = true
	o.course.Release()
	o.attendees.Remove()
}

// AreYou matches on both course name and date.
func (o *CourseOffering) AreYou(name, date string) bool {
	return o.date == date && o.Course().AreYou(name) == 0
}

func (o *CourseOffering) key() string {
	return o.course.entity.Name() + "@" + o.date
}

func (o *CourseOffering) Print(w io.Writer) {
	fmt.Fprintln(w, "The course offering for")
	o.Course().ShortPrint(w)
	fmt.Fprintf(w, "will be held in room %s starting on %s\n", o.room, o.date)
	fmt.Fprintln(w, "Current attendees include:")
	o.attendees.Print(w)
}

func (o *CourseOffering) ShortPrint(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", o.Course().Name(), o.date)
}

// OfferingList is a bounded list of owned offerings.
type OfferingList struct {
	capacity  int
	offerings []*CourseOffering
}

// NewOfferingList creates an empty list that accepts at most capacity offerings.
func NewOfferingList(capacity int) *OfferingList {
	if capacity < 0 {
		capacity = 0
	}
	return &OfferingList{capacity: capacity}
}

func (l *OfferingList) Len() int { return len(l.offerings) }
func (l *OfferingList) Cap() int { return l.capacity }

// Items returns the offerings in insertion order.
func (l *OfferingList) Items() []*CourseOffering {
	return append([]*CourseOffering(nil), l.offerings...)
}

// Add takes ownership of o. A full list is left unchanged and o stays with the caller.
func (l *OfferingList) Add(o *CourseOffering) error {
	if len(l.offerings) >= l.capacity {
		return apperrors.NewCapacityError("offering list", l.capacity)
	}
	l.offerings = append(l.offerings, o)
	return nil
}

// Find returns the offering of the named course on date.
func (l *OfferingList) Find(name, date string) (*CourseOffering, bool) {
	if i := l.index(name, date); i >= 0 {
		return l.offerings[i], true
	}
	return nil, false
}

// Delete removes and destroys the offering of the named course on date.
func (l *OfferingList) Delete(name, date string) bool {
	i := l.index(name, date)
	if i < 0 {
		return false
	}
	o := l.offerings[i]
	l.offerings = append(l.offerings[:i], l.offerings[i+1:]...)
	o.Remove()
	return true
}

// Remove destroys every offering in insertion order and empties the list.
func (l *OfferingList) Remove() {
	offerings := l.offerings
	l.offerings = nil
	for _, o := range offerings {
		o.Remove()
	}
}

func (l *OfferingList) Print(w io.Writer) {
	for _, o := range l.offerings {
		o.ShortPrint(w)
	}
}

func (l *OfferingList) index(name, date string) int {
	for i, o := range l.offerings {
		if o.AreYou(name, date) {
			return i
		}
	}
	return -1
}
