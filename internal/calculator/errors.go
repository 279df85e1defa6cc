package calculator

import "errors"

// ErrUnknownULDType is returned when a requested ULD code is not present in
// the specification table. Callers that render text reports are expected to
// enumerate the valid codes alongside it.
var ErrUnknownULDType = errors.New("unknown ULD type")
