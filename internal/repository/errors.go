package repository

import "errors"

// ErrNotFound is returned when a registry holds no record for the requested id.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateID is returned when an insert reuses an id already present in the registry.
var ErrDuplicateID = errors.New("duplicate id")
