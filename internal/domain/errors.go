package domain

import "errors"

// ErrInvalidParameter reports caller-supplied configuration that is
// structurally infeasible. Deterministic for the same inputs; never
// worth retrying.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrGenerationExhausted reports that randomized search failed to find a
// valid puzzle within the retry budget. A fresh call may succeed.
var ErrGenerationExhausted = errors.New("generation retries exhausted")
