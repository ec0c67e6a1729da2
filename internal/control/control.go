// Package control implements the keyboard-driven panel that edits a figure's
// parameters.
package control

import (
	"math"

	"honnef.co/go/lissajous"
)

// Keys is the keyboard input of one tick. Apart from Shift, which is held,
// every field reports a key press, including repeats generated while the key
// is held down.
type Keys struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Home  bool
	End   bool
	// Shift multiplies steps by ten.
	Shift bool
	// Reset restores the default parameters.
	Reset bool
	// Toggle hides or shows the panel.
	Toggle bool
}

// Any reports whether any key was pressed.
func (k Keys) Any() bool {
	return k.Up || k.Down || k.Left || k.Right || k.Home || k.End || k.Reset || k.Toggle
}

// Slider edits one parameter.
type Slider struct {
	ID    lissajous.ParamID
	Label string
	// Step is the amount a single key press changes the value by.
	Step float64
}

// Section is a group of sliders under a common heading.
type Section struct {
	Heading string
	Note    string
	Sliders []Slider
}

// DefaultSections returns the panel's layout.
func DefaultSections() []Section {
	return []Section{
		{
			Heading: "Define the width and height of the curve, respectively.",
			Sliders: []Slider{
				{lissajous.AmplitudeX, "X-axis amplitude", 10},
				{lissajous.AmplitudeY, "Y-axis amplitude", 10},
			},
		},
		{
			Heading: "Define the shape of the curve",
			Sliders: []Slider{
				{lissajous.FrequencyX, "X-axis frequency", 0.1},
				{lissajous.FrequencyY, "Y-axis frequency", 0.1},
			},
		},
		{
			Heading: "Defines how many points to use for drawing the curve, or the amount of detail",
			Note:    "I don't recommend going all the way up, it doesn't add particularly much, just makes it lag.",
			Sliders: []Slider{
				{lissajous.Detail, "Detail level", 10},
			},
		},
		{
			Note: "Mostly inconsequential, just here for the sake of completeness",
			Sliders: []Slider{
				{lissajous.PhaseX, "X-axis phase shift", 0.1},
				{lissajous.PhaseY, "Y-axis phase shift", 0.1},
			},
		},
	}
}

// Panel is the control panel. Its zero value is not usable; use [NewPanel].
type Panel struct {
	Sections []Section
	// Selected is the index of the selected slider, counting across
	// sections.
	Selected int
	Hidden   bool

	sliders []Slider
	face    *faceCache
}

// Sliders returns all sliders in order.
func (p *Panel) Sliders() []Slider {
	if p.sliders == nil {
		for _, sec := range p.Sections {
			p.sliders = append(p.sliders, sec.Sliders...)
		}
	}
	return p.sliders
}

// Current returns the selected slider. A Selected index outside of the
// sliders wraps around, as it does when moving the selection.
func (p *Panel) Current() (Slider, bool) {
	sl := p.Sliders()
	if len(sl) == 0 {
		return Slider{}, false
	}
	return sl[p.selected(len(sl))], true
}

// selected returns Selected wrapped into [0, n).
func (p *Panel) selected(n int) int {
	return ((p.Selected % n) + n) % n
}

// Handle processes one tick of keyboard input and returns the parameter
// changes it asks for, without applying them. New values lie within the
// parameter's range, and integer parameters get integer values. Keys that
// don't change anything produce no updates.
func (p *Panel) Handle(keys Keys, params lissajous.Params) []lissajous.Update {
	if keys.Toggle {
		p.Hidden = !p.Hidden
	}
	if keys.Reset {
		return diffParams(params, lissajous.DefaultParams())
	}
	sliders := p.Sliders()
	if p.Hidden || len(sliders) == 0 {
		return nil
	}

	n := len(sliders)
	p.Selected = p.selected(n)
	if keys.Up {
		p.Selected = (p.Selected + n - 1) % n
	}
	if keys.Down {
		p.Selected = (p.Selected + 1) % n
	}

	sl := sliders[p.Selected]
	r := sl.ID.Range()
	cur := params.Get(sl.ID)
	v := cur
	step := sl.Step
	if keys.Shift {
		step *= 10
	}
	switch {
	case keys.Home:
		v = r.Min
	case keys.End:
		v = r.Max
	case keys.Left && !keys.Right:
		v = snap(cur-step, sl.Step)
	case keys.Right && !keys.Left:
		v = snap(cur+step, sl.Step)
	}
	v = r.Clamp(v)
	if sl.ID.IsInteger() {
		v = math.Round(v)
	}
	if v == cur {
		return nil
	}
	return []lissajous.Update{{ID: sl.ID, Value: v}}
}

// snap rounds v to a multiple of step, hiding the error accumulated by
// repeated floating point additions.
func snap(v, step float64) float64 {
	if !(step > 0) {
		return v
	}
	return math.Round(v/step) * step
}

// diffParams returns the updates that turn from into to.
func diffParams(from, to lissajous.Params) []lissajous.Update {
	var out []lissajous.Update
	for _, id := range lissajous.ParamIDs {
		if v := to.Get(id); from.Get(id) != v {
			out = append(out, lissajous.Update{ID: id, Value: v})
		}
	}
	return out
}
