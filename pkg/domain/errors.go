package domain

import "errors"

// ErrSessionNotFound is returned when a session ID cannot be found in a store.
var ErrSessionNotFound = errors.New("session not found")

// ErrMalformedSnapshot is returned when an imported snapshot cannot be
// decoded or carries values outside the permitted shapes. Importing a
// malformed snapshot must leave the live session untouched.
var ErrMalformedSnapshot = errors.New("malformed session snapshot")

// ErrNotAnswered is returned by the traversal engine when Advance is
// called on a node that is not fully answered yet.
var ErrNotAnswered = errors.New("current question not fully answered")
