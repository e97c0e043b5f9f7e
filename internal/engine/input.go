package engine

// DefaultPauseKey is the key identifier that toggles pause (space).
const DefaultPauseKey = " "

// InputController toggles the run state when the pause key is pressed.
// It never touches the simulation and never redraws.
type InputController struct {
	state    *RunState
	pauseKey string
}

// NewInputController creates a controller writing to state.
// An empty pauseKey selects DefaultPauseKey.
func NewInputController(state *RunState, pauseKey string) *InputController {
	if pauseKey == "" {
		pauseKey = DefaultPauseKey
	}
	return &InputController{state: state, pauseKey: pauseKey}
}

// PauseKey returns the designated key identifier.
func (c *InputController) PauseKey() string {
	return c.pauseKey
}

// HandleKey toggles the run state if key is the pause key.
// Returns true when the key was consumed; the host should not pass a
// consumed key on to any other handler.
func (c *InputController) HandleKey(key string) bool {
	if key != c.pauseKey {
		return false
	}
	c.state.Toggle()
	return true
}
