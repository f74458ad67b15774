package sim

import "errors"

var ErrPhaseNotFound = errors.New("phase not found")
