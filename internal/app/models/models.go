package models

// EnrollmentStatus is the outcome of an enrollment request.
type EnrollmentStatus string

const (
	EnrollmentEnrolled EnrollmentStatus = "ENROLLED"
	EnrollmentRefused  EnrollmentStatus = "REFUSED"
)

// EnrollmentResult reports an enrollment. Missing lists the prerequisites the
// student has not completed when the admission was refused.
type EnrollmentResult struct {
	Offering OfferingKey      `json:"offering"`
	Student  string           `json:"student"`
	Status   EnrollmentStatus `json:"status"`
	Missing  []string         `json:"missing,omitempty"`
}

// ListUsage is the fill level of one bounded list.
type ListUsage struct {
	Size     int `json:"size"`
	Capacity int `json:"capacity"`
}

// RegistryStats summarises the top-level catalogs.
type RegistryStats struct {
	Courses   ListUsage `json:"courses"`
	Students  ListUsage `json:"students"`
	Offerings ListUsage `json:"offerings"`
}
