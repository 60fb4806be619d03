package etl

import crerr "github.com/cockroachdb/errors"

// Stage failure kinds. Every stage logs at the point of failure and returns
// an error wrapping exactly one of these; callers never recover or retry.
var (
	// ErrConfig marks missing or invalid connection configuration,
	// detected before any network or database dial.
	ErrConfig = crerr.New("missing configuration")

	// ErrRequest marks an upstream HTTP or transport failure,
	// including non-2xx statuses.
	ErrRequest = crerr.New("upstream request failed")

	// ErrData marks an empty or structurally invalid payload, or an empty
	// result where a non-empty one is required downstream.
	ErrData = crerr.New("empty or invalid data")

	// ErrSchema marks an absent or empty expected top-level collection.
	ErrSchema = crerr.New("unexpected payload schema")

	// ErrLoad marks a destination write failure.
	ErrLoad = crerr.New("destination load failed")
)
