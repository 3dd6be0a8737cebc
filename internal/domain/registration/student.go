package registration

import (
	"fmt"
	"io"
	"strings"

	"github.com/yigit/courseregistry/internal/pkg/apperrors"
)

const kindStudent = "student"

// Student is shared by the roster and by the attendee list of every offering the
// student is enrolled in. It keeps the courses it has completed.
type Student struct {
	name    string
	id      string
	age     int
	courses *CourseList
	refCounter
}

// NewStudent creates a student holding its creator's reference.
func NewStudent(name, id string, age, courseCapacity int) *Student {
	return &Student{
		name:       name,
		id:         id,
		age:        age,
		courses:    NewCourseList(courseCapacity),
		refCounter: newRefCounter(),
	}
}

// CopyStudent returns a new student sharing the original's completed courses.
func CopyStudent(s *Student) *Student {
	return &Student{
		name:       s.name,
		id:         s.id,
		age:        s.age,
		courses:    CopyList(s.courses),
		refCounter: newRefCounter(),
	}
}

func (s *Student) Name() string  { return s.name }
func (s *Student) ID() string    { return s.id }
func (s *Student) Age() int      { return s.age }
func (s *Student) RefCount() int { return s.refs }

// Courses exposes the completed-course list for reading. Callers change it only
// through AddCourse.
func (s *Student) Courses() *CourseList { return s.courses }

func (s *Student) Attach() int { return s.attach(kindStudent, s.name) }
func (s *Student) Detach() int { return s.detach(kindStudent, s.name) }

// Remove releases the completed-course list. Only the last holder may call it.
func (s *Student) Remove() {
	s.beginRemove(kindStudent, s.name)
	s.courses.Remove()
}

func (s *Student) AreYou(name string) int {
	return strings.Compare(s.name, name)
}

// AddCourse records c as completed.
func (s *Student) AddCourse(c *Course) error {
	if s.courses.Contains(c.Name()) {
		return apperrors.NewConflictError(fmt.Sprintf("%s has already completed %s", s.name, c.Name()))
	}
	if err := s.courses.Add(c); err != nil {
		return fmt.Errorf("cannot add any new courses to %s: %w", s.name, err)
	}
	return nil
}

func (s *Student) Print(w io.Writer) {
	fmt.Fprintf(w, "Name: %s\n", s.name)
	fmt.Fprintf(w, "SSN: %s\n", s.id)
	fmt.Fprintf(w, "Age: %d\n", s.age)
	fmt.Fprintln(w, "Completed Courses:")
	s.courses.Print(w)
}

func (s *Student) ShortPrint(w io.Writer) {
	fmt.Fprintln(w, s.name)
}
