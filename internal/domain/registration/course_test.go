package registration

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yigit/courseregistry/internal/pkg/apperrors"
)

func TestAddPrerequisiteAttaches(t *testing.T) {
	cs101 := NewCourse("CS101", "Intro", 1, 2)
	cs201 := NewCourse("CS201", "Data Structures", 1, 2)

	require.NoError(t, cs201.AddPrerequisite(cs101))
	require.Equal(t, 2, cs101.RefCount())
	require.Equal(t, 1, cs201.Prerequisites().Len())
}

func TestAddPrerequisiteErrors(t *testing.T) {
	a := NewCourse("A", "", 1, 1)
	b := NewCourse("B", "", 1, 1)
	c := NewCourse("C", "", 1, 1)

	require.ErrorIs(t, a.AddPrerequisite(a), apperrors.ErrValidationFailed)

	require.NoError(t, b.AddPrerequisite(a))
	require.ErrorIs(t, b.AddPrerequisite(a), apperrors.ErrResourceAlreadyExists)
	require.ErrorIs(t, b.AddPrerequisite(c), apperrors.ErrCapacityExceeded)
	require.ErrorIs(t, a.AddPrerequisite(b), apperrors.ErrValidationFailed, "cycles are rejected")
	require.Equal(t, 1, c.RefCount())
}

func TestCycleCheckComparesIdentity(t *testing.T) {
	oldA := NewCourse("A", "", 1, 1)
	b := NewCourse("B", "", 1, 1)
	require.NoError(t, b.AddPrerequisite(oldA))

	// A new course named A is not the A that B holds.
	newA := NewCourse("A", "", 1, 1)
	require.NoError(t, newA.AddPrerequisite(b))
	require.Equal(t, 2, b.RefCount())

	require.ErrorIs(t, b.AddPrerequisite(newA), apperrors.ErrValidationFailed)
}

// Each layer holds two courses that both require both courses of the layer below,
// so the number of paths doubles per layer while the number of courses stays small.
func TestCycleCheckOnLayeredDiamond(t *testing.T) {
	const layers = 40

	below := []*Course{NewCourse("L0a", "", 1, 2), NewCourse("L0b", "", 1, 2)}
	for i := 1; i < layers; i++ {
		layer := []*Course{
			NewCourse(fmt.Sprintf("L%da", i), "", 1, 2),
			NewCourse(fmt.Sprintf("L%db", i), "", 1, 2),
		}
		for _, c := range layer {
			for _, p := range below {
				require.NoError(t, c.AddPrerequisite(p))
			}
		}
		below = layer
	}

	x := NewCourse("X", "", 1, 1)
	start := time.Now()
	require.NoError(t, x.AddPrerequisite(below[0]))
	require.Less(t, time.Since(start), 100*time.Millisecond)

	bottom := NewCourse("bottom", "", 1, 1)
	start = time.Now()
	require.False(t, below[0].dependsOn(bottom))
	require.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestCheckPrerequisites(t *testing.T) {
	cs101 := NewCourse("CS101", "Intro", 1, 2)
	math := NewCourse("MATH1", "Calculus", 1, 2)
	cs201 := NewCourse("CS201", "Data Structures", 1, 2)

	taken := NewCourseList(5)
	require.True(t, cs201.CheckPrerequisites(taken), "no prerequisites")

	require.NoError(t, cs201.AddPrerequisite(cs101))
	require.NoError(t, cs201.AddPrerequisite(math))
	require.False(t, cs201.CheckPrerequisites(taken))
	require.Equal(t, []string{"CS101", "MATH1"}, cs201.MissingPrerequisites(taken))

	require.NoError(t, taken.Add(math))
	require.False(t, cs201.CheckPrerequisites(taken))
	require.Equal(t, []string{"CS101"}, cs201.MissingPrerequisites(taken))

	require.NoError(t, taken.Add(cs101))
	require.True(t, cs201.CheckPrerequisites(taken))
	require.Empty(t, cs201.MissingPrerequisites(taken))
}

func TestCopyCourse(t *testing.T) {
	cs101 := NewCourse("CS101", "Intro", 1, 2)
	cs201 := NewCourse("CS201", "Data Structures", 3, 2)
	require.NoError(t, cs201.AddPrerequisite(cs101))
	cs201.Attach()

	cp := CopyCourse(cs201)

	require.NotSame(t, cs201, cp)
	require.Equal(t, "CS201", cp.Name())
	require.Equal(t, 3, cp.Duration())
	require.Equal(t, 1, cp.RefCount(), "a copy is a new entity")
	require.Equal(t, 2, cp.Prerequisites().Cap())
	require.Same(t, cs101, cp.Prerequisites().Items()[0])
	require.Equal(t, 3, cs101.RefCount())
}

// Scenario C: a course shared as prerequisite of two others survives until its
// last holder lets go.
func TestSharedPrerequisiteLifetime(t *testing.T) {
	c := NewCourse("C", "shared", 1, 1)
	base := NewCourse("Base", "", 1, 1)
	require.NoError(t, c.AddPrerequisite(base))
	Release(base)

	c2 := NewCourse("C2", "", 1, 1)
	c3 := NewCourse("C3", "", 1, 1)
	require.NoError(t, c2.AddPrerequisite(c))
	require.NoError(t, c3.AddPrerequisite(c))
	require.Equal(t, 3, c.RefCount())

	require.True(t, Release(c2))
	require.Equal(t, 2, c.RefCount())
	require.False(t, c.removed)

	require.True(t, Release(c3))
	require.Equal(t, 1, c.RefCount())
	require.False(t, c.removed)

	require.True(t, Release(c))
	require.True(t, c.removed)
	require.True(t, base.removed, "removing C removes its own prerequisite list")
}

func TestCoursePrint(t *testing.T) {
	cs101 := NewCourse("CS101", "Intro", 1, 2)
	cs201 := NewCourse("CS201", "Data Structures", 2, 2)
	require.NoError(t, cs201.AddPrerequisite(cs101))

	var buf bytes.Buffer
	cs201.Print(&buf)
	require.Equal(t, "Course: CS201\nDescription: Data Structures\nDuration: 2\nList of Prerequisites:\nCS101\n", buf.String())

	buf.Reset()
	cs201.ShortPrint(&buf)
	require.Equal(t, "CS201\n", buf.String())
}

func TestAreYouOrdersByName(t *testing.T) {
	c := NewCourse("CS201", "", 1, 1)
	require.Equal(t, 0, c.AreYou("CS201"))
	require.Equal(t, 1, c.AreYou("CS101"))
	require.Equal(t, -1, c.AreYou("CS301"))
}
