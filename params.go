package lissajous

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is wrapped by the errors returned from
// [Params.Sanitize].
var ErrInvalidParameter = errors.New("lissajous: invalid parameter")

// MaxDetail is the largest number of samples a figure may use.
const MaxDetail = 5000

// Params describes a figure. The zero value describes an empty figure.
type Params struct {
	AmplitudeX float64
	AmplitudeY float64
	FrequencyX float64
	FrequencyY float64
	PhaseX     float64
	PhaseY     float64
	// Detail is the number of samples, one per degree.
	Detail int
}

// DefaultParams returns the figure shown at startup.
func DefaultParams() Params {
	return Params{
		AmplitudeX: 610,
		AmplitudeY: 580,
		FrequencyX: 52,
		FrequencyY: 51,
		Detail:     500,
	}
}

// ParamID identifies one of the fields of [Params].
type ParamID int

const (
	AmplitudeX ParamID = iota + 1
	AmplitudeY
	FrequencyX
	FrequencyY
	PhaseX
	PhaseY
	Detail
)

// ParamIDs lists all parameters in the order the controls present them.
var ParamIDs = []ParamID{
	AmplitudeX,
	AmplitudeY,
	FrequencyX,
	FrequencyY,
	Detail,
	PhaseX,
	PhaseY,
}

func (id ParamID) String() string {
	switch id {
	case AmplitudeX:
		return "AmplitudeX"
	case AmplitudeY:
		return "AmplitudeY"
	case FrequencyX:
		return "FrequencyX"
	case FrequencyY:
		return "FrequencyY"
	case PhaseX:
		return "PhaseX"
	case PhaseY:
		return "PhaseY"
	case Detail:
		return "Detail"
	default:
		return fmt.Sprintf("ParamID(%d)", int(id))
	}
}

// Range is a closed interval of parameter values.
type Range struct {
	Min float64
	Max float64
}

// Clamp returns v limited to r. NaN clamps to r.Min.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Min
	}
	return min(max(v, r.Min), r.Max)
}

// Contains reports whether v lies within r.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Range returns the values the controls offer for the parameter.
func (id ParamID) Range() Range {
	switch id {
	case AmplitudeX, AmplitudeY:
		return Range{0, 1000}
	case FrequencyX, FrequencyY:
		return Range{0, 100}
	case PhaseX, PhaseY:
		return Range{0, 100}
	case Detail:
		return Range{0, MaxDetail}
	default:
		return Range{}
	}
}

// IsInteger reports whether the parameter only takes integer values.
func (id ParamID) IsInteger() bool {
	return id == Detail
}

// Get returns the value of the parameter identified by id.
func (p Params) Get(id ParamID) float64 {
	switch id {
	case AmplitudeX:
		return p.AmplitudeX
	case AmplitudeY:
		return p.AmplitudeY
	case FrequencyX:
		return p.FrequencyX
	case FrequencyY:
		return p.FrequencyY
	case PhaseX:
		return p.PhaseX
	case PhaseY:
		return p.PhaseY
	case Detail:
		return float64(p.Detail)
	default:
		return 0
	}
}

// Set changes the parameter identified by id. Detail is rounded to the
// nearest integer; a NaN detail becomes 0. Values are not clamped.
func (p *Params) Set(id ParamID, v float64) {
	switch id {
	case AmplitudeX:
		p.AmplitudeX = v
	case AmplitudeY:
		p.AmplitudeY = v
	case FrequencyX:
		p.FrequencyX = v
	case FrequencyY:
		p.FrequencyY = v
	case PhaseX:
		p.PhaseX = v
	case PhaseY:
		p.PhaseY = v
	case Detail:
		switch {
		case math.IsNaN(v):
			p.Detail = 0
		case v >= math.MaxInt32:
			p.Detail = math.MaxInt32
		case v <= math.MinInt32:
			p.Detail = math.MinInt32
		default:
			p.Detail = int(math.Round(v))
		}
	}
}

// Update is a new value for one parameter, as produced by the controls.
type Update struct {
	ID    ParamID
	Value float64
}

func (u Update) String() string {
	return fmt.Sprintf("%s=%g", u.ID, u.Value)
}

// Clamp returns a copy of p with every parameter limited to the range the
// controls offer, as a control surface does before handing values on. NaN
// values clamp to the lower bound.
func (p Params) Clamp() Params {
	for _, id := range ParamIDs {
		p.Set(id, id.Range().Clamp(p.Get(id)))
	}
	return p
}

// Sanitize returns a copy of p that is safe to sample. Amplitudes,
// frequencies and phases that are NaN become the lower bound of their range,
// infinities become the nearest bound. A negative detail becomes 0 and a
// detail above [MaxDetail] becomes MaxDetail. Finite values are otherwise
// kept even when they lie outside of the range the controls offer; use
// [Params.Clamp] to limit them.
//
// The upper limit on detail bounds the cost of a frame. The sampler itself
// accepts any detail.
//
// If anything had to be changed, the returned error wraps
// [ErrInvalidParameter] once per changed field. The returned Params are valid
// either way.
func (p Params) Sanitize() (Params, error) {
	var errs []error
	for _, id := range ParamIDs {
		v := p.Get(id)
		r := id.Range()
		var fixed float64
		switch {
		case id == Detail:
			if r.Contains(v) {
				continue
			}
			fixed = r.Clamp(v)
		case math.IsNaN(v):
			fixed = r.Min
		case math.IsInf(v, 1):
			fixed = r.Max
		case math.IsInf(v, -1):
			fixed = r.Min
		default:
			continue
		}
		p.Set(id, fixed)
		errs = append(errs, fmt.Errorf("%w: %s is %g, using %g", ErrInvalidParameter, id, v, fixed))
	}
	return p, errors.Join(errs...)
}
