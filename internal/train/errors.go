package train

import "errors"

// ErrInvalidConfig reports a configuration rejected before the first
// iteration: training never starts.
var ErrInvalidConfig = errors.New("train: invalid config")

// ErrDiverged reports that the loss became non-finite. Training aborts
// immediately; the result carries the last finite best parameters.
//
// Exhausting the iteration budget without reaching the tolerance is NOT an
// error: the result reports Converged=false and callers decide whether the
// approximate model is acceptable.
var ErrDiverged = errors.New("train: loss diverged to a non-finite value")
