package directory

import "errors"

var (
	// ErrDuplicateDepartment is returned when a department name collides
	// (case-insensitively) with an existing one.
	ErrDuplicateDepartment = errors.New("department already exists")

	// ErrDepartmentNotFound is returned for operations on an unknown department.
	ErrDepartmentNotFound = errors.New("department not found")

	// ErrEmployeeNotFound is returned for operations on an unknown employee.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrEmptyName is returned when a required name field trims to nothing.
	ErrEmptyName = errors.New("name is required")
)
