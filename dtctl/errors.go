package dtctl

import "errors"

// ErrNonPositiveDt indicates Set or New was given dt <= 0.
var ErrNonPositiveDt = errors.New("dtctl: dt must be positive")
