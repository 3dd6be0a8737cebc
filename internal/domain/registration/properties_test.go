package registration

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// ===========================================================================
// Property-Based Tests (using pgregory.net/rapid)
// ===========================================================================

func TestProperty_RefCountNeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := NewCourse("C", "", 1, 1)
		expected := 1
		ops := rapid.SliceOfN(rapid.Bool(), 0, 50).Draw(rt, "ops")

		for _, attach := range ops {
			if attach {
				expected++
				require.Equal(rt, expected, c.Attach())
				continue
			}
			if expected == 0 {
				requireViolation(rt, func() { c.Detach() })
				require.Equal(rt, 0, c.RefCount())
				continue
			}
			expected--
			require.Equal(rt, expected, c.Detach())
		}
		require.GreaterOrEqual(rt, c.RefCount(), 0)
	})
}

func TestProperty_AttachDetachBalance(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 100).Draw(rt, "n")
		s := NewStudent("S", "1", 20, 1)

		for i := 0; i < n; i++ {
			s.Attach()
		}
		require.Equal(rt, 1+n, s.RefCount())
		for i := 0; i < n; i++ {
			s.Detach()
		}
		require.Equal(rt, 1, s.RefCount())
	})
}

func TestProperty_ListNeverExceedsCapacity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		capacity := rapid.IntRange(0, 20).Draw(rt, "capacity")
		adds := rapid.IntRange(0, 40).Draw(rt, "adds")
		list := NewCourseList(capacity)

		for i := 0; i < adds; i++ {
			c := NewCourse(fmt.Sprintf("C%d", i), "", 1, 1)
			before := list.Len()
			err := list.Add(c)
			if before == capacity {
				require.Error(rt, err)
				require.Equal(rt, before, list.Len())
				require.Equal(rt, 1, c.RefCount())
			} else {
				require.NoError(rt, err)
				require.Equal(rt, 2, c.RefCount())
			}
			require.LessOrEqual(rt, list.Len(), capacity)
		}
	})
}

func TestProperty_CopyAttachesEachElementOnce(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k := rapid.IntRange(0, 15).Draw(rt, "k")
		src := NewStudentList(15)
		for i := 0; i < k; i++ {
			require.NoError(rt, src.Add(NewStudent(fmt.Sprintf("S%d", i), "", 20, 1)))
		}

		before := make([]int, k)
		for i, s := range src.Items() {
			before[i] = s.RefCount()
		}

		cp := CopyList(src)
		require.Equal(rt, src.Cap(), cp.Cap())
		for i, s := range cp.Items() {
			require.Same(rt, src.Items()[i], s)
			require.Equal(rt, before[i]+1, s.RefCount())
		}
	})
}

func TestProperty_PrerequisiteCheckIsSubset(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		pool := make([]*Course, 8)
		for i := range pool {
			pool[i] = NewCourse(fmt.Sprintf("P%d", i), "", 1, 1)
		}
		prereqIdx := rapid.SliceOfNDistinct(rapid.IntRange(0, 7), 0, 8, rapid.ID[int]).Draw(rt, "prereqs")
		takenIdx := rapid.SliceOfNDistinct(rapid.IntRange(0, 7), 0, 8, rapid.ID[int]).Draw(rt, "taken")

		target := NewCourse("Target", "", 1, 8)
		for _, i := range prereqIdx {
			require.NoError(rt, target.AddPrerequisite(pool[i]))
		}
		taken := NewCourseList(8)
		takenSet := map[int]bool{}
		for _, i := range takenIdx {
			require.NoError(rt, taken.Add(pool[i]))
			takenSet[i] = true
		}

		want := true
		for _, i := range prereqIdx {
			if !takenSet[i] {
				want = false
			}
		}
		require.Equal(rt, want, target.CheckPrerequisites(taken))
		require.Equal(rt, want, len(target.MissingPrerequisites(taken)) == 0)
	})
}

func TestProperty_RemovalReleasesExactlyOnce(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 10).Draw(rt, "n")
		list := NewCourseList(10)
		courses := make([]*Course, n)
		extra := make([]int, n)
		for i := 0; i < n; i++ {
			courses[i] = NewCourse(fmt.Sprintf("C%d", i), "", 1, 1)
			require.NoError(rt, list.Add(courses[i]))
			// the creator keeps its reference only for some courses
			extra[i] = rapid.IntRange(0, 1).Draw(rt, fmt.Sprintf("keep%d", i))
			if extra[i] == 0 {
				Release(courses[i])
			}
		}

		list.Remove()

		for i, c := range courses {
			require.Equal(rt, extra[i], c.RefCount())
			require.Equal(rt, extra[i] == 0, c.removed)
		}
		require.Equal(rt, 0, list.Len())
	})
}
