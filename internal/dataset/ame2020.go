// Package dataset ingests external labeled data tables. The one table
// currently supported is AME2020, the 2020 Atomic Mass Evaluation
// (`mass_1.mas20.txt`): per-nuclide mass excess, binding energy per
// nucleon, beta-decay energy and atomic mass, usable as the labeled
// observations of a data-fit term.
package dataset

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// DefaultAME2020URL is the published location of the AME2020 mass table.
const DefaultAME2020URL = "https://www-nds.iaea.org/amdc/ame2020/mass_1.mas20.txt"

// ErrBadRecord reports a data line that does not follow the table format.
var ErrBadRecord = errors.New("dataset: malformed record")

// Quantity is one tabulated value with its uncertainty.
//
// The table marks two degraded cases: a value derived from systematics
// rather than measurement carries a trailing '#' (Estimated), and a value
// the evaluation cannot provide at all is written '*' (Known is false and
// the numbers are meaningless).
type Quantity struct {
	Value     float64 `json:"value"`
	Sigma     float64 `json:"sigma"`
	Estimated bool    `json:"estimated"`
	Known     bool    `json:"known"`
}

// Record is one nuclide row of the mass table. Energies are in keV,
// atomic mass in micro-u, as published.
type Record struct {
	N       int    `json:"n"`
	Z       int    `json:"z"`
	A       int    `json:"a"`
	Element string `json:"element"`
	Origin  string `json:"origin,omitempty"`

	MassExcess    Quantity `json:"mass_excess_kev"`
	BindingPerA   Quantity `json:"binding_energy_per_a_kev"`
	BetaDecayType string   `json:"beta_decay_type,omitempty"`
	BetaDecay     Quantity `json:"beta_decay_energy_kev"`
	AtomicMass    Quantity `json:"atomic_mass_micro_u"`
}

// AME2020 downloads and parses `mass_1.mas20.txt` files.
type AME2020 struct {
	// HeaderLines is the number of preamble lines before the first data
	// row; the published file carries 36.
	HeaderLines int
	// Client performs downloads; nil means http.DefaultClient.
	Client *http.Client
}

// NewAME2020 returns a parser configured for the published file layout.
func NewAME2020() *AME2020 {
	return &AME2020{HeaderLines: 36}
}

// Fetch downloads the table and parses it into records.
func (p *AME2020) Fetch(ctx context.Context, url string) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dataset: fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dataset: fetching %s: unexpected status %s", url, resp.Status)
	}
	return p.Parse(resp.Body)
}

// Parse reads the table body. The preamble is skipped; blank lines and
// '#'-prefixed lines are ignored; every remaining line must be a data row.
func (p *AME2020) Parse(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)

	var records []Record
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo <= p.HeaderLines {
			continue
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRecord, lineNo, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	return records, nil
}

// Column slots of one normalized data row.
const (
	colNMinusZ = iota
	colN
	colZ
	colA
	colElement
	colOrigin
	colMassExcess
	colMassExcessSigma
	colBindingPerA
	colBindingPerASigma
	colBetaType
	colBetaDecay
	colBetaDecaySigma
	colAtomicMass
	colAtomicMassSigma
	numCols
)

// parseLine normalizes one data row into fixed column slots and converts
// it to a typed record.
//
// The published rows need three repairs before the columns line up:
// the atomic mass is printed as two tokens (integer part, then mantissa),
// a missing beta-decay energy collapses its value and sigma into one '*',
// and the origin column is blank on most rows.
func parseLine(line string) (Record, error) {
	if line != "" {
		line = line[1:] // leading Fortran control character
	}
	tokens := strings.Fields(line)

	// Rejoin the split atomic mass (sign-preserving concatenation).
	if len(tokens) >= 3 {
		tokens[len(tokens)-3] += tokens[len(tokens)-2]
		tokens = append(tokens[:len(tokens)-2], tokens[len(tokens)-1])
	}

	// Missing beta-decay energy: restore the value and sigma slots.
	if len(tokens) >= 3 && strings.Contains(tokens[len(tokens)-3], "*") {
		i := len(tokens) - 3
		tokens[i] = "*"
		tokens = append(tokens[:i+1], append([]string{"*"}, tokens[i+1:]...)...)
	}

	// Blank origin column.
	if len(tokens) < numCols {
		tokens = append(tokens[:colOrigin], append([]string{""}, tokens[colOrigin:]...)...)
	}
	if len(tokens) != numCols {
		return Record{}, fmt.Errorf("got %d columns, want %d", len(tokens), numCols)
	}

	var rec Record
	var err error
	nMinusZ := 0
	for _, f := range []struct {
		col  int
		dst  *int
		name string
	}{
		{colNMinusZ, &nMinusZ, "N-Z"},
		{colN, &rec.N, "N"},
		{colZ, &rec.Z, "Z"},
		{colA, &rec.A, "A"},
	} {
		if *f.dst, err = strconv.Atoi(tokens[f.col]); err != nil {
			return Record{}, fmt.Errorf("%s: %v", f.name, err)
		}
	}
	if nMinusZ != rec.N-rec.Z {
		return Record{}, fmt.Errorf("inconsistent nucleon counts: N-Z column %d, N=%d Z=%d", nMinusZ, rec.N, rec.Z)
	}
	if rec.A != rec.N+rec.Z {
		return Record{}, fmt.Errorf("inconsistent mass number: A=%d, N=%d Z=%d", rec.A, rec.N, rec.Z)
	}

	rec.Element = tokens[colElement]
	rec.Origin = tokens[colOrigin]
	rec.BetaDecayType = missingToEmpty(tokens[colBetaType])

	for _, q := range []struct {
		value, sigma int
		dst          *Quantity
		name         string
	}{
		{colMassExcess, colMassExcessSigma, &rec.MassExcess, "mass excess"},
		{colBindingPerA, colBindingPerASigma, &rec.BindingPerA, "binding energy"},
		{colBetaDecay, colBetaDecaySigma, &rec.BetaDecay, "beta-decay energy"},
		{colAtomicMass, colAtomicMassSigma, &rec.AtomicMass, "atomic mass"},
	} {
		if *q.dst, err = parseQuantity(tokens[q.value], tokens[q.sigma]); err != nil {
			return Record{}, fmt.Errorf("%s: %v", q.name, err)
		}
	}
	return rec, nil
}

func missingToEmpty(tok string) string {
	if strings.Contains(tok, "*") {
		return ""
	}
	return tok
}

// parseQuantity converts a value/sigma token pair, handling the table's
// '#' (estimated) and '*' (not provided) markers.
func parseQuantity(value, sigma string) (Quantity, error) {
	v, estimated, known, err := parseNumber(value)
	if err != nil {
		return Quantity{}, err
	}
	if !known {
		return Quantity{}, nil
	}

	s, _, sigmaKnown, err := parseNumber(sigma)
	if err != nil {
		return Quantity{}, fmt.Errorf("sigma: %v", err)
	}
	if !sigmaKnown {
		s = 0
	}
	return Quantity{Value: v, Sigma: s, Estimated: estimated, Known: true}, nil
}

func parseNumber(tok string) (v float64, estimated, known bool, err error) {
	if tok == "" || strings.Contains(tok, "*") {
		return 0, false, false, nil
	}
	if strings.HasSuffix(tok, "#") {
		estimated = true
		tok = strings.TrimSuffix(tok, "#")
	}
	v, err = strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false, false, err
	}
	return v, estimated, true, nil
}

// Observation is one labeled point for a data-fit term: a mass number and
// the measured binding energy per nucleon in MeV.
type Observation struct {
	A           float64
	BindingPerA float64
	Estimated   bool
}

// Observations extracts the binding-energy curve from a record set,
// skipping nuclides whose binding energy the table does not provide.
// Energies are converted from the table's keV to MeV.
func Observations(records []Record) []Observation {
	var obs []Observation
	for _, r := range records {
		if !r.BindingPerA.Known {
			continue
		}
		obs = append(obs, Observation{
			A:           float64(r.A),
			BindingPerA: r.BindingPerA.Value / 1000,
			Estimated:   r.BindingPerA.Estimated,
		})
	}
	return obs
}
