package train

import (
	"encoding/json"
	"io"
	"math"
	"strconv"
)

// Diag is one diagnostics sample: the composite loss decomposition at one
// iteration.
type Diag struct {
	Iteration   int     `json:"iteration"`
	DataLoss    float64 `json:"data_loss"`
	PhysicsLoss float64 `json:"physics_loss"`
	TotalLoss   float64 `json:"total_loss"`
}

// jsonFloat encodes as a JSON number, falling back to a string for the
// non-finite values JSON cannot represent. The diverged iteration's record
// is the one most worth keeping, and it is exactly the one whose losses
// are NaN or Inf.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return json.Marshal(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return json.Marshal(v)
}

// MarshalJSON keeps non-finite losses representable.
func (d Diag) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Iteration   int       `json:"iteration"`
		DataLoss    jsonFloat `json:"data_loss"`
		PhysicsLoss jsonFloat `json:"physics_loss"`
		TotalLoss   jsonFloat `json:"total_loss"`
	}{d.Iteration, jsonFloat(d.DataLoss), jsonFloat(d.PhysicsLoss), jsonFloat(d.TotalLoss)})
}

// JSONEmitter returns an iteration callback that writes each diagnostics
// sample as one JSON line to w.
func JSONEmitter(w io.Writer) func(Diag) {
	enc := json.NewEncoder(w)
	return func(d Diag) {
		// An emitter has nowhere useful to report a write error
		// mid-training, so it is dropped.
		_ = enc.Encode(d)
	}
}
