package models

// Student is the read view of a rostered student.
type Student struct {
	Name       string   `json:"name" example:"Alice"`
	Identifier string   `json:"identifier" example:"111"` // ssn in the registrar's terms
	Age        int      `json:"age" example:"20"`
	Completed  []string `json:"completed"`
	References int      `json:"references" example:"1"`
}
