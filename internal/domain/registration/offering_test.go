package registration

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yigit/courseregistry/internal/pkg/apperrors"
)

func TestOfferingAttachesCourse(t *testing.T) {
	c := NewCourse("CS101", "Intro", 1, 1)
	o := NewCourseOffering(c, "Room1", "2024-01-10", 2)

	require.Equal(t, 2, c.RefCount())
	require.Same(t, c, o.Course())
	require.True(t, o.AreYou("CS101", "2024-01-10"))
	require.False(t, o.AreYou("CS101", "2024-01-11"))
	require.False(t, o.AreYou("CS102", "2024-01-10"))
}

// Scenario A: enrollment is refused until the prerequisite is completed.
func TestAddStudentChecksPrerequisites(t *testing.T) {
	cs101 := NewCourse("CS101", "Intro", 1, 2)
	cs201 := NewCourse("CS201", "DataStructures", 1, 2)
	require.NoError(t, cs201.AddPrerequisite(cs101))
	alice := NewStudent("Alice", "111", 20, 5)
	o := NewCourseOffering(cs201, "Room1", "2024-01-10", 15)

	res, err := o.AddStudent(alice)
	require.NoError(t, err)
	require.Equal(t, OutcomeRefused, res.Outcome)
	require.Equal(t, []string{"CS101"}, res.Missing)
	require.Equal(t, 0, o.Attendees().Len())
	require.Equal(t, 1, alice.RefCount())

	require.NoError(t, alice.AddCourse(cs101))
	res, err = o.AddStudent(alice)
	require.NoError(t, err)
	require.True(t, res.Enrolled())
	require.Equal(t, 2, alice.RefCount())

	_, err = o.AddStudent(alice)
	require.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)
}

func TestAddStudentCapacityIsAnError(t *testing.T) {
	c := NewCourse("CS101", "Intro", 1, 1)
	o := NewCourseOffering(c, "Room1", "2024-01-10", 1)

	_, err := o.AddStudent(NewStudent("Alice", "1", 20, 1))
	require.NoError(t, err)

	bob := NewStudent("Bob", "2", 20, 1)
	res, err := o.AddStudent(bob)
	require.ErrorIs(t, err, apperrors.ErrCapacityExceeded)
	require.NotEqual(t, OutcomeRefused, res.Outcome)
	require.Equal(t, 1, bob.RefCount())
}

func TestOfferingRemoveCascades(t *testing.T) {
	c := NewCourse("CS101", "Intro", 1, 1)
	alice := NewStudent("Alice", "1", 20, 1)
	bob := NewStudent("Bob", "2", 20, 1)
	o := NewCourseOffering(c, "Room1", "2024-01-10", 5)
	_, err := o.AddStudent(alice)
	require.NoError(t, err)
	_, err = o.AddStudent(bob)
	require.NoError(t, err)

	Release(c)
	Release(bob)
	o.Remove()

	require.True(t, c.removed, "offering held the last course reference")
	require.True(t, bob.removed)
	require.False(t, alice.removed)
	require.Equal(t, 1, alice.RefCount())

	requireViolation(t, func() { o.Remove() })
}

func TestOfferingListBoundedAndOwned(t *testing.T) {
	c := NewCourse("CS101", "Intro", 1, 1)
	list := NewOfferingList(1)
	first := NewCourseOffering(c, "Room1", "2024-01-10", 1)
	second := NewCourseOffering(c, "Room2", "2024-02-10", 1)

	require.NoError(t, list.Add(first))
	require.ErrorIs(t, list.Add(second), apperrors.ErrCapacityExceeded)
	second.Remove()
	require.Equal(t, 2, c.RefCount())

	got, ok := list.Find("CS101", "2024-01-10")
	require.True(t, ok)
	require.Same(t, first, got)
	_, ok = list.Find("CS101", "2024-02-10")
	require.False(t, ok)

	list.Remove()
	require.Equal(t, 0, list.Len())
	require.Equal(t, 1, c.RefCount())
}

func TestOfferingListDelete(t *testing.T) {
	c := NewCourse("CS101", "Intro", 1, 1)
	list := NewOfferingList(2)
	require.NoError(t, list.Add(NewCourseOffering(c, "Room1", "2024-01-10", 1)))

	require.False(t, list.Delete("CS101", "2030-01-01"))
	require.True(t, list.Delete("CS101", "2024-01-10"))
	require.Equal(t, 1, c.RefCount())
}

func TestOfferingPrint(t *testing.T) {
	c := NewCourse("CS101", "Intro", 1, 1)
	o := NewCourseOffering(c, "Room1", "2024-01-10", 2)
	_, err := o.AddStudent(NewStudent("Alice", "1", 20, 1))
	require.NoError(t, err)

	var buf bytes.Buffer
	o.Print(&buf)
	require.Equal(t, "The course offering for\nCS101\nwill be held in room Room1 starting on 2024-01-10\nCurrent attendees include:\nAlice\n", buf.String())

	buf.Reset()
	o.ShortPrint(&buf)
	require.Equal(t, "CS101 2024-01-10\n", buf.String())
}

func TestStudentPrintAndCopy(t *testing.T) {
	cs101 := NewCourse("CS101", "Intro", 1, 1)
	alice := NewStudent("Alice", "111", 20, 3)
	require.NoError(t, alice.AddCourse(cs101))
	require.ErrorIs(t, alice.AddCourse(cs101), apperrors.ErrResourceAlreadyExists)

	var buf bytes.Buffer
	alice.Print(&buf)
	require.Equal(t, "Name: Alice\nSSN: 111\nAge: 20\nCompleted Courses:\nCS101\n", buf.String())

	cp := CopyStudent(alice)
	require.Equal(t, 1, cp.RefCount())
	require.Equal(t, "111", cp.ID())
	require.Equal(t, 3, cs101.RefCount())
}
