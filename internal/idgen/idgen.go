package idgen

import "github.com/google/uuid"

// NewFunc returns a new run identifier; override in tests for stable ids.
var NewFunc = func() string { return uuid.New().String() }

// NewRunID returns identifier of a single task invocation.
func NewRunID() string { return NewFunc() }
