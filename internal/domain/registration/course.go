package registration

import (
	"fmt"
	"io"
	"strings"

	"github.com/yigit/courseregistry/internal/pkg/apperrors"
)

const kindCourse = "course"

// Course is a catalog entry. A course is shared by the catalog and by every
// course that lists it as a prerequisite.
type Course struct {
	name        string
	description string
	duration    int
	prereqs     *CourseList
	refCounter
}

// NewCourse creates a course holding its creator's reference.
func NewCourse(name, description string, duration, prereqCapacity int) *Course {
	return &Course{
		name:        name,
		description: description,
		duration:    duration,
		prereqs:     NewCourseList(prereqCapacity),
		refCounter:  newRefCounter(),
	}
}

// CopyCourse returns a new course with the same fields whose prerequisite list
// shares the original's prerequisites. The copy is a separate entity with its own
// reference count.
func CopyCourse(c *Course) *Course {
	return &Course{
		name:        c.name,
		description: c.description,
		duration:    c.duration,
		prereqs:     CopyList(c.prereqs),
		refCounter:  newRefCounter(),
	}
}

func (c *Course) Name() string        { return c.name }
func (c *Course) Description() string { return c.description }
func (c *Course) Duration() int       { return c.duration }
func (c *Course) RefCount() int       { return c.refs }

// Prerequisites exposes the prerequisite list for reading.
func (c *Course) Prerequisites() *CourseList { return c.prereqs }

func (c *Course) Attach() int { return c.attach(kindCourse, c.name) }
func (c *Course) Detach() int { return c.detach(kindCourse, c.name) }

// Remove releases the prerequisite list. Only the last holder may call it.
func (c *Course) Remove() {
	c.beginRemove(kindCourse, c.name)
	c.prereqs.Remove()
}

// AreYou compares the course name with name.
func (c *Course) AreYou(name string) int {
	return strings.Compare(c.name, name)
}

// AddPrerequisite attaches p to the prerequisite list.
func (c *Course) AddPrerequisite(p *Course) error {
	if p == c || p.dependsOn(c) {
		return fmt.Errorf("%w: %s cannot be a prerequisite of %s", apperrors.ErrValidationFailed, p.name, c.name)
	}
	if c.prereqs.Contains(p.name) {
		return apperrors.NewConflictError(fmt.Sprintf("%s is already a prerequisite of %s", p.name, c.name))
	}
	if err := c.prereqs.Add(p); err != nil {
		return fmt.Errorf("cannot add any new prerequisites to %s: %w", c.name, err)
	}
	return nil
}

// CheckPrerequisites reports whether every prerequisite appears in taken.
func (c *Course) CheckPrerequisites(taken *CourseList) bool {
	return taken.FindAll(c.prereqs)
}

// MissingPrerequisites lists, in prerequisite order, the prerequisites absent from taken.
func (c *Course) MissingPrerequisites(taken *CourseList) []string {
	var missing []string
	for _, p := range c.prereqs.Items() {
		if !taken.Contains(p.name) {
			missing = append(missing, p.name)
		}
	}
	return missing
}

// dependsOn reports whether target is reachable through the prerequisite graph.
// Prerequisite cycles would keep each other's counts above zero forever. Courses are
// compared by identity, so a removed course that is still held as a prerequisite is
// a different node from a new course with the same name.
func (c *Course) dependsOn(target *Course) bool {
	visited := map[*Course]bool{c: true}
	stack := []*Course{c}
	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, r := range next.prereqs.refs {
			p := r.Get()
			if p == target {
				return true
			}
			if !visited[p] {
				visited[p] = true
				stack = append(stack, p)
			}
		}
	}
	return false
}

func (c *Course) Print(w io.Writer) {
	fmt.Fprintf(w, "Course: %s\n", c.name)
	fmt.Fprintf(w, "Description: %s\n", c.description)
	fmt.Fprintf(w, "Duration: %d\n", c.duration)
	fmt.Fprintln(w, "List of Prerequisites:")
	c.prereqs.Print(w)
}

func (c *Course) ShortPrint(w io.Writer) {
	fmt.Fprintln(w, c.name)
}
