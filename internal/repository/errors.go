package repository

import "errors"

// Common repository errors
var (
	// ErrEmployeeNotFound is returned when an employee is not found
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrTeamNotFound is returned when a team is not found
	ErrTeamNotFound = errors.New("team not found")

	// ErrTaskNotFound is returned when a task is not found
	ErrTaskNotFound = errors.New("task not found")
)
