package seed

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/courseregistry/internal/app/models"
	"github.com/yigit/courseregistry/internal/app/services"
	"github.com/yigit/courseregistry/internal/pkg/apperrors"
	"github.com/yigit/courseregistry/internal/pkg/logger"
)

func newRegistrar() services.RegistrarService {
	return services.NewRegistrarService(services.DefaultCapacities(), logger.Nop())
}

func TestLoadFileAndApply(t *testing.T) {
	data, err := LoadFile(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)
	require.Len(t, data.Courses, 2)
	assert.Equal(t, []string{"CS101"}, data.Courses[1].Prerequisites)

	ctx := context.Background()
	r := newRegistrar()
	require.NoError(t, Apply(ctx, r, data, logger.Nop()))

	offering, err := r.GetOffering(ctx, models.OfferingKey{Course: "CS201", Date: "2024-01-10"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, offering.Attendees)

	cs101, err := r.GetCourse(ctx, "CS101")
	require.NoError(t, err)
	// catalog, CS201's prerequisites and Alice's completed courses
	assert.Equal(t, 3, cs101.References)
}

func TestApplyCollectsFailures(t *testing.T) {
	data, err := Parse(strings.NewReader(`
courses:
  - name: CS201
    duration: 1
    prerequisites: [CS101]
students:
  - name: Bob
    id: "222"
    age: 21
offerings:
  - course: CS201
    room: Room1
    date: "2024-01-10"
    attendees: [Bob]
  - course: MATH1
    room: Room2
    date: "2024-01-11"
`))
	require.NoError(t, err)

	ctx := context.Background()
	r := newRegistrar()
	err = Apply(ctx, r, data, logger.Nop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrCourseNotFound))

	// The valid entries still went in.
	_, err = r.GetCourse(ctx, "CS201")
	require.NoError(t, err)
	_, err = r.GetStudent(ctx, "Bob")
	require.NoError(t, err)

	offering, err := r.GetOffering(ctx, models.OfferingKey{Course: "CS201", Date: "2024-01-10"})
	require.NoError(t, err)
	// CS101 never existed, so CS201 has no prerequisites to check.
	assert.Equal(t, []string{"Bob"}, offering.Attendees)
}

func TestApplyReportsRefusedAttendee(t *testing.T) {
	data, err := Parse(strings.NewReader(`
courses:
  - name: CS101
    duration: 1
  - name: CS201
    duration: 1
    prerequisites: [CS101]
students:
  - name: Bob
    id: "222"
    age: 21
offerings:
  - course: CS201
    room: Room1
    date: "2024-01-10"
    attendees: [Bob]
`))
	require.NoError(t, err)

	err = Apply(context.Background(), newRegistrar(), data, logger.Nop())
	assert.True(t, errors.Is(err, apperrors.ErrPrerequisiteNotMet))
}

func TestParse(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		data, err := Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, data.Courses)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Parse(strings.NewReader("teachers: []\n"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join("testdata", "missing.yaml"))
		assert.Error(t, err)
	})
}
