package repository

import "errors"

var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrMinistryNotFound = errors.New("ministry not found")
	ErrRosterNotFound   = errors.New("roster not found")
	ErrMinistryExists   = errors.New("ministry already exists")
)
