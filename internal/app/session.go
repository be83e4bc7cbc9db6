package app

import (
	"errors"
	"strconv"

	"github.com/sirupsen/logrus"

	"pathgrid/internal/core"
	"pathgrid/internal/search"
	"pathgrid/internal/ui"
)

// Action identifiers shared by keyboard shortcuts and panel buttons.
const (
	ActionVisualize = "visualize"
	ActionMaze      = "maze"
	ActionClear     = "clear"
	ActionCancel    = "cancel"
)

const rateKey = "rate"

// maxBurst caps the cell updates applied in one frame after a stall.
const maxBurst = 64

// Session paces a Controller for an interactive front end and backs its
// control panel.
type Session struct {
	ctrl  *Controller
	timer *core.FixedStep
	seed  int64
	log   logrus.FieldLogger
	// resets counts actions that wiped cells: clears, mazes and searches.
	resets int
}

// NewSession builds a controller sized by cfg.
func NewSession(cfg *Config, log logrus.FieldLogger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	alg, err := cfg.Algorithm()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Session{
		ctrl:  NewController(core.Size{Rows: cfg.Rows, Cols: cfg.Cols}, alg, log),
		timer: core.NewFixedStep(cfg.Rate),
		seed:  cfg.Seed,
		log:   log,
	}, nil
}

// Controller returns the paced controller.
func (s *Session) Controller() *Controller { return s.ctrl }

// Tick applies the cell updates that fell due since the previous tick.
// Time spent idle is discarded.
func (s *Session) Tick() []Change {
	n := s.timer.Due(maxBurst)
	if !s.ctrl.Busy() || n == 0 {
		return nil
	}
	return s.ctrl.Step(n)
}

// Resets returns how many actions so far have reset cells on the grid.
// Front ends compare it between frames to drop animations of stale cells.
func (s *Session) Resets() int { return s.resets }

// Press runs the action named id. Algorithm names select a strategy.
func (s *Session) Press(id string) {
	var err error
	switch id {
	case ActionVisualize:
		if err = s.ctrl.Visualize(); err == nil {
			s.resets++
		}
	case ActionMaze:
		if err = s.ctrl.GenerateMaze(s.seed); err == nil {
			s.seed++
			s.resets++
		}
	case ActionClear:
		s.ctrl.Clear()
		s.resets++
	case ActionCancel:
		s.ctrl.Cancel()
	default:
		alg, perr := search.ParseAlgorithm(id)
		if perr != nil {
			s.log.WithField("action", id).Warn("unknown action")
			return
		}
		if s.ctrl.Busy() {
			err = ErrBusy
			break
		}
		s.ctrl.SetAlgorithm(alg)
	}
	if err == nil {
		return
	}
	entry := s.log.WithField("action", id).WithError(err)
	if errors.Is(err, ErrBusy) || errors.Is(err, core.ErrPrecondition) {
		entry.Info("action rejected")
		return
	}
	entry.Error("action failed")
}

// Buttons implements ui.Provider.
func (s *Session) Buttons() []ui.Button {
	busy := s.ctrl.Busy()
	var out []ui.Button
	for _, alg := range search.Algorithms() {
		out = append(out, ui.Button{ID: alg.String(), Label: alg.String(), Enabled: !busy, Selected: alg == s.ctrl.Algorithm()})
	}
	return append(out,
		ui.Button{ID: ActionVisualize, Label: "Visualize", Enabled: s.ctrl.CanVisualize()},
		ui.Button{ID: ActionMaze, Label: "Maze", Enabled: !busy},
		ui.Button{ID: ActionCancel, Label: "Cancel", Enabled: busy},
		ui.Button{ID: ActionClear, Label: "Clear", Enabled: true},
	)
}

// ParameterControls implements ui.Provider.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: rateKey, Label: "Steps/s", Step: 10, Min: 5, Max: 600, HasMin: true, HasMax: true},
	}
}

// SetIntParameter implements core.IntParameterSetter.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != rateKey || value <= 0 {
		return false
	}
	s.timer.SetRate(value)
	return true
}

// Parameters implements ui.Provider.
func (s *Session) Parameters() core.ParameterSnapshot {
	snap := s.ctrl.Parameters()
	snap.Groups = append(snap.Groups, core.ParameterGroup{Name: "Animation", Params: []core.Parameter{
		{Key: rateKey, Label: "Steps/s", Type: core.ParamTypeInt, Value: strconv.Itoa(s.timer.Rate())},
	}})
	return snap
}

var _ ui.Provider = (*Session)(nil)
