package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/yigit/courseregistry/internal/app/models"
	"github.com/yigit/courseregistry/internal/domain/registration"
	"github.com/yigit/courseregistry/internal/pkg/apperrors"
	"github.com/yigit/courseregistry/internal/pkg/logger"
	"github.com/yigit/courseregistry/internal/pkg/validation"
)

// RegistrarService is the façade over the registration core: it owns the course
// catalog, the student roster and the offering list.
type RegistrarService interface {
	CreateCourse(ctx context.Context, name, description string, duration int) (*models.Course, error)
	CreateStudent(ctx context.Context, name, identifier string, age int) (*models.Student, error)
	CreateOffering(ctx context.Context, courseName, room, date string) (*models.CourseOffering, error)
	AddPrerequisite(ctx context.Context, courseName, prereqName string) (*models.Course, error)
	AddCompletedCourse(ctx context.Context, studentName, courseName string) (*models.Student, error)
	EnrollStudent(ctx context.Context, key models.OfferingKey, studentName string) (*models.EnrollmentResult, error)

	ListCourses(ctx context.Context) ([]string, error)
	ListStudents(ctx context.Context) ([]string, error)
	ListOfferings(ctx context.Context) ([]string, error)

	GetCourse(ctx context.Context, name string) (*models.Course, error)
	GetStudent(ctx context.Context, name string) (*models.Student, error)
	GetOffering(ctx context.Context, key models.OfferingKey) (*models.CourseOffering, error)

	DescribeCourse(ctx context.Context, name string) (string, error)
	DescribeStudent(ctx context.Context, name string) (string, error)
	DescribeOffering(ctx context.Context, key models.OfferingKey) (string, error)

	RemoveCourse(ctx context.Context, name string) error
	RemoveStudent(ctx context.Context, name string) error
	RemoveOffering(ctx context.Context, key models.OfferingKey) error

	Stats(ctx context.Context) (*models.RegistryStats, error)
	Close(ctx context.Context) error
}

// Capacities bounds every list the registrar creates.
type Capacities struct {
	Courses       int
	Students      int
	Offerings     int
	Prerequisites int
	Completed     int
	Attendees     int
}

// DefaultCapacities matches the sizes of the original menu-driven registrar.
func DefaultCapacities() Capacities {
	return Capacities{
		Courses:       50,
		Students:      50,
		Offerings:     50,
		Prerequisites: 10,
		Completed:     50,
		Attendees:     15,
	}
}

// registrarServiceImpl implements RegistrarService. The core is single-threaded, so
// every call holds mu for its whole duration.
type registrarServiceImpl struct {
	mu        sync.Mutex
	caps      Capacities
	courses   *registration.CourseList
	students  *registration.StudentList
	offerings *registration.OfferingList
	closed    bool
	logger    zerolog.Logger
}

// NewRegistrarService creates an empty registrar
func NewRegistrarService(caps Capacities, lgr zerolog.Logger) RegistrarService {
	return &registrarServiceImpl{
		caps:      caps,
		courses:   registration.NewCourseList(caps.Courses),
		students:  registration.NewStudentList(caps.Students),
		offerings: registration.NewOfferingList(caps.Offerings),
		logger:    logger.WithComponent(lgr, "registrar"),
	}
}

// lock serializes access and rejects calls on a cancelled context or a closed registrar.
func (s *registrarServiceImpl) lock(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, apperrors.ErrRegistrarClosed
	}
	return s.mu.Unlock, nil
}

// logViolation records a broken reference protocol and lets the panic continue.
func (s *registrarServiceImpl) logViolation(op string) {
	if r := recover(); r != nil {
		if err, ok := r.(error); ok && errors.Is(err, apperrors.ErrReferenceConsistency) {
			s.logger.Error().Err(err).Str("operation", op).Msg("Reference consistency violation")
		}
		panic(r)
	}
}

// CreateCourse adds a new course to the catalog. The catalog ends up as the only holder.
func (s *registrarServiceImpl) CreateCourse(ctx context.Context, name, description string, duration int) (*models.Course, error) {
	if err := validation.All(
		validation.NewStringValidation("name", name).WithPattern(validation.CompiledPatterns.Name).WithMaxLength(validation.NameMaxLength).Validate(),
		validation.NewStringValidation("description", description).WithRequired(false).WithMaxLength(validation.DescriptionMaxLength).Validate(),
		validation.NewNumericValidation("duration", duration).WithMin(1).Validate(),
	); err != nil {
		return nil, err
	}

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	defer s.logViolation("CreateCourse")

	if s.courses.Contains(name) {
		return nil, apperrors.NewConflictError(fmt.Sprintf("course %s already exists", name))
	}

	course := registration.NewCourse(name, description, duration, s.caps.Prerequisites)
	if err := s.courses.Add(course); err != nil {
		registration.Release(course)
		s.logger.Warn().Err(err).Str("course", name).Msg("Course catalog is full")
		return nil, err
	}
	registration.Release(course)

	s.logger.Debug().Str("course", name).Int("duration", duration).Msg("Course created")
	return courseView(course), nil
}

// CreateStudent adds a new student to the roster.
func (s *registrarServiceImpl) CreateStudent(ctx context.Context, name, identifier string, age int) (*models.Student, error) {
	if err := validation.All(
		validation.NewStringValidation("name", name).WithPattern(validation.CompiledPatterns.Name).WithMaxLength(validation.NameMaxLength).Validate(),
		validation.NewStringValidation("identifier", identifier).WithPattern(validation.CompiledPatterns.Identifier).Validate(),
		validation.NewNumericValidation("age", age).WithMax(150).Validate(),
	); err != nil {
		return nil, err
	}

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	defer s.logViolation("CreateStudent")

	if s.students.Contains(name) {
		return nil, apperrors.NewConflictError(fmt.Sprintf("student %s already exists", name))
	}

	student := registration.NewStudent(name, identifier, age, s.caps.Completed)
	if err := s.students.Add(student); err != nil {
		registration.Release(student)
		s.logger.Warn().Err(err).Str("student", name).Msg("Student roster is full")
		return nil, err
	}
	registration.Release(student)

	s.logger.Debug().Str("student", name).Msg("Student created")
	return studentView(student), nil
}

// CreateOffering schedules a catalog course in a room on a date.
func (s *registrarServiceImpl) CreateOffering(ctx context.Context, courseName, room, date string) (*models.CourseOffering, error) {
	if err := validation.All(
		validation.NewStringValidation("course", courseName).Validate(),
		validation.NewStringValidation("room", room).WithMaxLength(validation.RoomMaxLength).Validate(),
		validation.ValidateDate("date", date),
	); err != nil {
		return nil, err
	}

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	defer s.logViolation("CreateOffering")

	course, ok := s.courses.Find(courseName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCourseNotFound, courseName)
	}
	if _, exists := s.offerings.Find(courseName, date); exists {
		return nil, apperrors.NewConflictError(fmt.Sprintf("%s is already offered on %s", courseName, date))
	}

	offering := registration.NewCourseOffering(course, room, date, s.caps.Attendees)
	if err := s.offerings.Add(offering); err != nil {
		offering.Remove()
		s.logger.Warn().Err(err).Str("course", courseName).Str("date", date).Msg("Offering list is full")
		return nil, err
	}

	s.logger.Debug().Str("course", courseName).Str("room", room).Str("date", date).Msg("Offering created")
	return offeringView(offering), nil
}

// AddPrerequisite makes prereqName a prerequisite of courseName.
func (s *registrarServiceImpl) AddPrerequisite(ctx context.Context, courseName, prereqName string) (*models.Course, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	defer s.logViolation("AddPrerequisite")

	course, ok := s.courses.Find(courseName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCourseNotFound, courseName)
	}
	prereq, ok := s.courses.Find(prereqName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCourseNotFound, prereqName)
	}
	if err := course.AddPrerequisite(prereq); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("course", courseName).Str("prerequisite", prereqName).Int("references", prereq.RefCount()).Msg("Prerequisite added")
	return courseView(course), nil
}

// AddCompletedCourse records that a student has completed a catalog course.
func (s *registrarServiceImpl) AddCompletedCourse(ctx context.Context, studentName, courseName string) (*models.Student, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	defer s.logViolation("AddCompletedCourse")

	student, ok := s.students.Find(studentName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrStudentNotFound, studentName)
	}
	course, ok := s.courses.Find(courseName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCourseNotFound, courseName)
	}
	if err := student.AddCourse(course); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("student", studentName).Str("course", courseName).Msg("Completed course recorded")
	return studentView(student), nil
}

// EnrollStudent adds a student to an offering. A refusal for missing prerequisites
// is reported in the result, not as an error.
func (s *registrarServiceImpl) EnrollStudent(ctx context.Context, key models.OfferingKey, studentName string) (*models.EnrollmentResult, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	defer s.logViolation("EnrollStudent")

	offering, ok := s.offerings.Find(key.Course, key.Date)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrOfferingNotFound, key)
	}
	student, ok := s.students.Find(studentName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrStudentNotFound, studentName)
	}

	enrollment, err := offering.AddStudent(student)
	if err != nil {
		s.logger.Warn().Err(err).Str("offering", key.String()).Str("student", studentName).Msg("Enrollment failed")
		return nil, err
	}

	result := &models.EnrollmentResult{Offering: key, Student: studentName, Status: models.EnrollmentEnrolled}
	if !enrollment.Enrolled() {
		result.Status = models.EnrollmentRefused
		result.Missing = enrollment.Missing
		s.logger.Info().Str("offering", key.String()).Str("student", studentName).Strs("missing", enrollment.Missing).Msg("Admission refused")
		return result, nil
	}

	s.logger.Debug().Str("offering", key.String()).Str("student", studentName).Msg("Student enrolled")
	return result, nil
}

// ListCourses returns the short form of every catalog course.
func (s *registrarServiceImpl) ListCourses(ctx context.Context) ([]string, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return shortForms(s.courses.Items()), nil
}

// ListStudents returns the short form of every rostered student.
func (s *registrarServiceImpl) ListStudents(ctx context.Context) ([]string, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return shortForms(s.students.Items()), nil
}

// ListOfferings returns the short form of every offering.
func (s *registrarServiceImpl) ListOfferings(ctx context.Context) ([]string, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return shortForms(s.offerings.Items()), nil
}

func (s *registrarServiceImpl) GetCourse(ctx context.Context, name string) (*models.Course, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	course, ok := s.courses.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCourseNotFound, name)
	}
	return courseView(course), nil
}

func (s *registrarServiceImpl) GetStudent(ctx context.Context, name string) (*models.Student, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	student, ok := s.students.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrStudentNotFound, name)
	}
	return studentView(student), nil
}

func (s *registrarServiceImpl) GetOffering(ctx context.Context, key models.OfferingKey) (*models.CourseOffering, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	offering, ok := s.offerings.Find(key.Course, key.Date)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrOfferingNotFound, key)
	}
	return offeringView(offering), nil
}

// DescribeCourse returns the full text of a course.
func (s *registrarServiceImpl) DescribeCourse(ctx context.Context, name string) (string, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return "", err
	}
	defer unlock()

	course, ok := s.courses.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", apperrors.ErrCourseNotFound, name)
	}
	return render(course.Print), nil
}

// DescribeStudent returns the full text of a student.
func (s *registrarServiceImpl) DescribeStudent(ctx context.Context, name string) (string, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return "", err
	}
	defer unlock()

	student, ok := s.students.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", apperrors.ErrStudentNotFound, name)
	}
	return render(student.Print), nil
}

// DescribeOffering returns the full text of an offering.
func (s *registrarServiceImpl) DescribeOffering(ctx context.Context, key models.OfferingKey) (string, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return "", err
	}
	defer unlock()

	offering, ok := s.offerings.Find(key.Course, key.Date)
	if !ok {
		return "", fmt.Errorf("%w: %s", apperrors.ErrOfferingNotFound, key)
	}
	return render(offering.Print), nil
}

// RemoveCourse drops the catalog entry. Prerequisite lists and offerings that still
// hold the course keep it alive.
func (s *registrarServiceImpl) RemoveCourse(ctx context.Context, name string) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	defer s.logViolation("RemoveCourse")

	if !s.courses.Delete(name) {
		return fmt.Errorf("%w: %s", apperrors.ErrCourseNotFound, name)
	}
	s.logger.Debug().Str("course", name).Msg("Course removed from catalog")
	return nil
}

// RemoveStudent drops the roster entry. Attendee lists keep the student alive.
func (s *registrarServiceImpl) RemoveStudent(ctx context.Context, name string) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	defer s.logViolation("RemoveStudent")

	if !s.students.Delete(name) {
		return fmt.Errorf("%w: %s", apperrors.ErrStudentNotFound, name)
	}
	s.logger.Debug().Str("student", name).Msg("Student removed from roster")
	return nil
}

// RemoveOffering destroys an offering, releasing its course and attendees.
func (s *registrarServiceImpl) RemoveOffering(ctx context.Context, key models.OfferingKey) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	defer s.logViolation("RemoveOffering")

	if !s.offerings.Delete(key.Course, key.Date) {
		return fmt.Errorf("%w: %s", apperrors.ErrOfferingNotFound, key)
	}
	s.logger.Debug().Str("offering", key.String()).Msg("Offering removed")
	return nil
}

// Stats reports how full the top-level lists are.
func (s *registrarServiceImpl) Stats(ctx context.Context) (*models.RegistryStats, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return &models.RegistryStats{
		Courses:   models.ListUsage{Size: s.courses.Len(), Capacity: s.courses.Cap()},
		Students:  models.ListUsage{Size: s.students.Len(), Capacity: s.students.Cap()},
		Offerings: models.ListUsage{Size: s.offerings.Len(), Capacity: s.offerings.Cap()},
	}, nil
}

// Close tears everything down: offerings first, then the roster, then the catalog.
func (s *registrarServiceImpl) Close(ctx context.Context) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	defer s.logViolation("Close")

	s.offerings.Remove()
	s.students.Remove()
	s.courses.Remove()
	s.closed = true
	s.logger.Info().Msg("Registrar closed")
	return nil
}

func courseView(c *registration.Course) *models.Course {
	return &models.Course{
		Name:          c.Name(),
		Description:   c.Description(),
		Duration:      c.Duration(),
		Prerequisites: names(c.Prerequisites().Items()),
		References:    c.RefCount(),
	}
}

func studentView(st *registration.Student) *models.Student {
	return &models.Student{
		Name:       st.Name(),
		Identifier: st.ID(),
		Age:        st.Age(),
		Completed:  names(st.Courses().Items()),
		References: st.RefCount(),
	}
}

func offeringView(o *registration.CourseOffering) *models.CourseOffering {
	return &models.CourseOffering{
		OfferingKey: models.OfferingKey{Course: o.Course().Name(), Date: o.Date()},
		Room:        o.Room(),
		Attendees:   names(o.Attendees().Items()),
		Capacity:    o.Attendees().Cap(),
	}
}

func names[T registration.Shared](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name())
	}
	return out
}

func render(print func(io.Writer)) string {
	var b strings.Builder
	print(&b)
	return b.String()
}

func shortForms[T interface{ ShortPrint(io.Writer) }](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, strings.TrimSuffix(render(item.ShortPrint), "\n"))
	}
	return out
}
