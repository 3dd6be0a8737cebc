package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/yigit/courseregistry/internal/app/models"
	"github.com/yigit/courseregistry/internal/app/services"
	"github.com/yigit/courseregistry/internal/pkg/apperrors"
	"gopkg.in/yaml.v3"
)

// Course is a seeded catalog course
type Course struct {
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Duration      int      `yaml:"duration"`
	Prerequisites []string `yaml:"prerequisites"`
}

// Student is a seeded student
type Student struct {
	Name      string   `yaml:"name"`
	ID        string   `yaml:"id"`
	Age       int      `yaml:"age"`
	Completed []string `yaml:"completed"`
}

// Offering is a seeded offering with its initial attendees
type Offering struct {
	Course    string   `yaml:"course"`
	Room      string   `yaml:"room"`
	Date      string   `yaml:"date"`
	Attendees []string `yaml:"attendees"`
}

// Data is the content of a seed file
type Data struct {
	Courses   []Course   `yaml:"courses"`
	Students  []Student  `yaml:"students"`
	Offerings []Offering `yaml:"offerings"`
}

// LoadFile reads a seed file
func LoadFile(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes seed data. Unknown keys are rejected.
func Parse(r io.Reader) (*Data, error) {
	data := &Data{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(data); err != nil {
		if errors.Is(err, io.EOF) {
			return data, nil
		}
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return data, nil
}

// Apply loads seed data into the registrar: courses, then prerequisites, then
// students, then offerings. Every failure is logged and collected, and the
// remaining entries are still applied.
func Apply(ctx context.Context, registrar services.RegistrarService, data *Data, lgr zerolog.Logger) error {
	lgr.Info().
		Int("courses", len(data.Courses)).
		Int("students", len(data.Students)).
		Int("offerings", len(data.Offerings)).
		Msg("Seeding registrar...")

	var finalErr error
	record := func(err error, event string, fields map[string]interface{}) {
		lgr.Error().Err(err).Fields(fields).Msg(event)
		finalErr = errors.Join(finalErr, err)
	}

	for _, c := range data.Courses {
		if _, err := registrar.CreateCourse(ctx, c.Name, c.Description, c.Duration); err != nil {
			record(fmt.Errorf("course %s: %w", c.Name, err), "Error seeding course", map[string]interface{}{"course": c.Name})
		}
	}
	for _, c := range data.Courses {
		for _, p := range c.Prerequisites {
			if _, err := registrar.AddPrerequisite(ctx, c.Name, p); err != nil {
				record(fmt.Errorf("prerequisite %s of %s: %w", p, c.Name, err), "Error seeding prerequisite",
					map[string]interface{}{"course": c.Name, "prerequisite": p})
			}
		}
	}

	for _, s := range data.Students {
		if _, err := registrar.CreateStudent(ctx, s.Name, s.ID, s.Age); err != nil {
			record(fmt.Errorf("student %s: %w", s.Name, err), "Error seeding student", map[string]interface{}{"student": s.Name})
			continue
		}
		for _, c := range s.Completed {
			if _, err := registrar.AddCompletedCourse(ctx, s.Name, c); err != nil {
				record(fmt.Errorf("completed course %s of %s: %w", c, s.Name, err), "Error seeding completed course",
					map[string]interface{}{"student": s.Name, "course": c})
			}
		}
	}

	for _, o := range data.Offerings {
		if _, err := registrar.CreateOffering(ctx, o.Course, o.Room, o.Date); err != nil {
			record(fmt.Errorf("offering %s@%s: %w", o.Course, o.Date, err), "Error seeding offering",
				map[string]interface{}{"course": o.Course, "date": o.Date})
			continue
		}
		key := models.OfferingKey{Course: o.Course, Date: o.Date}
		for _, a := range o.Attendees {
			res, err := registrar.EnrollStudent(ctx, key, a)
			if err == nil && res.Status == models.EnrollmentRefused {
				err = fmt.Errorf("%w: missing %v", apperrors.ErrPrerequisiteNotMet, res.Missing)
			}
			if err != nil {
				record(fmt.Errorf("attendee %s of %s: %w", a, key, err), "Error seeding attendee",
					map[string]interface{}{"offering": key.String(), "student": a})
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Seed data applied.")
	}
	return finalErr
}
