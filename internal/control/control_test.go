package control_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"honnef.co/go/lissajous"
	"honnef.co/go/lissajous/internal/control"
)

type PanelSuite struct {
	suite.Suite
	panel  *control.Panel
	params lissajous.Params
}

func (s *PanelSuite) SetupTest() {
	p, err := control.NewPanel()
	require.NoError(s.T(), err)
	s.panel = p
	s.params = lissajous.DefaultParams()
}

// handle runs one tick of input and applies the resulting updates.
func (s *PanelSuite) handle(keys control.Keys) []lissajous.Update {
	ups := s.panel.Handle(keys, s.params)
	for _, u := range ups {
		s.params.Set(u.ID, u.Value)
	}
	return ups
}

func (s *PanelSuite) selected() lissajous.ParamID {
	sl, ok := s.panel.Current()
	require.True(s.T(), ok)
	return sl.ID
}

// TestOrder: sliders follow the order of lissajous.ParamIDs.
func (s *PanelSuite) TestOrder() {
	var ids []lissajous.ParamID
	for _, sl := range s.panel.Sliders() {
		ids = append(ids, sl.ID)
	}
	require.Equal(s.T(), lissajous.ParamIDs, ids)
}

// TestSelection: Up and Down move the selection and wrap around.
func (s *PanelSuite) TestSelection() {
	require.Equal(s.T(), lissajous.AmplitudeX, s.selected())
	require.Empty(s.T(), s.handle(control.Keys{Down: true}))
	require.Equal(s.T(), lissajous.AmplitudeY, s.selected())
	s.handle(control.Keys{Up: true})
	s.handle(control.Keys{Up: true})
	require.Equal(s.T(), lissajous.PhaseY, s.selected(), "selection wraps to the last slider")
	s.handle(control.Keys{Down: true})
	require.Equal(s.T(), lissajous.AmplitudeX, s.selected(), "selection wraps to the first slider")
}

// TestSelectionOutOfRange: a Selected index set from outside wraps around
// instead of failing.
func (s *PanelSuite) TestSelectionOutOfRange() {
	n := len(s.panel.Sliders())
	s.panel.Selected = n + 1
	require.Equal(s.T(), lissajous.AmplitudeY, s.selected())
	s.panel.Selected = -1
	require.Equal(s.T(), lissajous.PhaseY, s.selected())
	s.panel.Selected = 99 * n
	require.Equal(s.T(), lissajous.AmplitudeX, s.selected())

	var empty control.Panel
	empty.Selected = 3
	_, ok := empty.Current()
	require.False(s.T(), ok)
}

// TestStep: Left and Right step by the slider's step, Shift by ten steps.
func (s *PanelSuite) TestStep() {
	ups := s.handle(control.Keys{Right: true})
	require.Equal(s.T(), []lissajous.Update{{ID: lissajous.AmplitudeX, Value: 620}}, ups)
	ups = s.handle(control.Keys{Right: true, Shift: true})
	require.Equal(s.T(), []lissajous.Update{{ID: lissajous.AmplitudeX, Value: 720}}, ups)
	s.handle(control.Keys{Left: true})
	require.Equal(s.T(), 710.0, s.params.AmplitudeX)

	// Both directions at once cancel out.
	require.Empty(s.T(), s.handle(control.Keys{Left: true, Right: true}))
}

// TestFractionalStep: repeated fractional steps don't accumulate error.
func (s *PanelSuite) TestFractionalStep() {
	s.handle(control.Keys{Down: true})
	s.handle(control.Keys{Down: true})
	require.Equal(s.T(), lissajous.FrequencyX, s.selected())
	for range 10 {
		s.handle(control.Keys{Right: true})
	}
	require.InDelta(s.T(), 53.0, s.params.FrequencyX, 1e-9)
	for range 3 {
		s.handle(control.Keys{Left: true})
	}
	require.InDelta(s.T(), 52.7, s.params.FrequencyX, 1e-9)
}

// TestLimits: values never leave the parameter's range.
func (s *PanelSuite) TestLimits() {
	s.params.AmplitudeX = 995
	ups := s.handle(control.Keys{Right: true, Shift: true})
	require.Equal(s.T(), []lissajous.Update{{ID: lissajous.AmplitudeX, Value: 1000}}, ups)
	require.Empty(s.T(), s.handle(control.Keys{Right: true}), "no update at the upper limit")

	s.handle(control.Keys{Home: true})
	require.Equal(s.T(), 0.0, s.params.AmplitudeX)
	require.Empty(s.T(), s.handle(control.Keys{Left: true}), "no update at the lower limit")

	s.handle(control.Keys{End: true})
	require.Equal(s.T(), 1000.0, s.params.AmplitudeX)

	// Out of range values are pulled back in by the next step.
	s.params.AmplitudeX = 1200
	ups = s.handle(control.Keys{Right: true})
	require.Equal(s.T(), []lissajous.Update{{ID: lissajous.AmplitudeX, Value: 1000}}, ups)
}

// TestDetail: detail updates are integers.
func (s *PanelSuite) TestDetail() {
	for range 4 {
		s.handle(control.Keys{Down: true})
	}
	require.Equal(s.T(), lissajous.Detail, s.selected())
	ups := s.handle(control.Keys{Right: true})
	require.Equal(s.T(), []lissajous.Update{{ID: lissajous.Detail, Value: 510}}, ups)
	require.Equal(s.T(), 510, s.params.Detail)

	s.params.Detail = 4995
	s.handle(control.Keys{Right: true})
	require.Equal(s.T(), lissajous.MaxDetail, s.params.Detail)
}

// TestReset: R restores the defaults, touching only changed parameters.
func (s *PanelSuite) TestReset() {
	require.Empty(s.T(), s.handle(control.Keys{Reset: true}))
	s.params.AmplitudeX = 1
	s.params.Detail = 7
	ups := s.handle(control.Keys{Reset: true})
	require.Equal(s.T(), []lissajous.Update{
		{ID: lissajous.AmplitudeX, Value: 610},
		{ID: lissajous.Detail, Value: 500},
	}, ups)
	require.Equal(s.T(), lissajous.DefaultParams(), s.params)
}

// TestHidden: a hidden panel ignores everything but Toggle and Reset.
func (s *PanelSuite) TestHidden() {
	s.handle(control.Keys{Toggle: true})
	require.True(s.T(), s.panel.Hidden)
	require.Empty(s.T(), s.handle(control.Keys{Right: true}))
	require.Empty(s.T(), s.handle(control.Keys{Down: true}))
	require.Equal(s.T(), lissajous.AmplitudeX, s.selected())

	s.params.PhaseX = 3
	require.NotEmpty(s.T(), s.handle(control.Keys{Reset: true}))

	s.handle(control.Keys{Toggle: true})
	require.False(s.T(), s.panel.Hidden)
	require.NotEmpty(s.T(), s.handle(control.Keys{Right: true}))
}

func TestPanelSuite(t *testing.T) {
	suite.Run(t, new(PanelSuite))
}

func TestKeysAny(t *testing.T) {
	require.False(t, control.Keys{}.Any())
	require.False(t, control.Keys{Shift: true}.Any(), "Shift alone is a modifier")
	require.True(t, control.Keys{Home: true}.Any())
}
