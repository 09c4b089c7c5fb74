package domain

import "errors"

// ErrMissingData marks a corpus layout with no readable documents under the
// expected split/label directories.
var ErrMissingData = errors.New("no documents found")

// ErrInvalidConfig marks a configuration value the pipeline cannot run with,
// such as a non-positive vocabulary cap or sequence length.
var ErrInvalidConfig = errors.New("invalid configuration")
