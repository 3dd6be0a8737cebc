package services

// Services defined in this package:
// - RegistrarService: owns the course catalog, the student roster and the
//   offering list, and is the only entry point into the registration core
