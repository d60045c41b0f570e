package puzzlebox

import (
	"encoding/json"
	"fmt"
)

// testStep is one line of a script. Which fields matter depends on Action.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	// Pad and Keys drive a code pad: digits are pressed, '<' deletes and
	// '=' submits.
	Pad  string `json:"pad,omitempty"`
	Keys string `json:"keys,omitempty"`
}

type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "release": true, "click": true, "drag": true,
	"wait": true, "resize": true, "scroll": true, "key": true, "screenshot": true,
}

// TestRunner replays a scripted puzzle session, one step per frame once the
// previous step's pointer samples have drained.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript decodes a JSON script of the form {"steps": [...]}. Unknown
// actions and key steps without a pad are rejected up front.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func (st testStep) validate() error {
	if !knownActions[st.Action] {
		return fmt.Errorf("unknown action %q", st.Action)
	}
	if st.Action == "key" && st.Pad == "" {
		return fmt.Errorf("key needs a pad")
	}
	return nil
}

// SetTestRunner makes Update play runner's steps ahead of input polling.
// Nil detaches it.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether the script has finished.
func (r *TestRunner) Done() bool {
	return r.done
}

// step runs at most one script step per frame.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "resize":
		s.Resize(st.Width, st.Height)
	case "scroll":
		s.Scroll(st.X, st.Y)
	case "key":
		r.typeKeys(s, st.Pad, st.Keys)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}

func (r *TestRunner) typeKeys(s *Scene, name, keys string) {
	pad, err := s.Pad(name)
	if err != nil {
		return
	}
	for _, k := range keys {
		switch k {
		case '<':
			pad.Delete()
		case '=':
			pad.Submit()
		default:
			pad.Press(k)
		}
	}
}
