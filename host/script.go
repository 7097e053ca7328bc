package host

import (
	"encoding/json"
	"fmt"
	"os"
)

// Script actions.
const (
	ActionSelect     = "select"
	ActionDatetime   = "datetime"
	ActionWait       = "wait"
	ActionScreenshot = "screenshot"
	ActionQuit       = "quit"
)

// scriptStep is one action of a script.
type scriptStep struct {
	Action string `json:"action"`
	City   string `json:"city,omitempty"`
	Value  string `json:"value,omitempty"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// scriptTarget is what a script drives. Runtime implements it.
type scriptTarget interface {
	SelectCity(city string) error
	SetDatetime(value string) error
	Screenshot(label string)
	PendingScreenshots() int
	Quit()
}

// Script plays a list of UI actions, one per frame, for unattended runs.
//
//	{"steps": [
//	  {"action": "select", "city": "Tokyo"},
//	  {"action": "wait", "frames": 60},
//	  {"action": "screenshot", "label": "tokyo"},
//	  {"action": "quit"}
//	]}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case ActionSelect:
			if st.City == "" {
				return nil, fmt.Errorf("parse script: step %d: select needs a city", i)
			}
		case ActionDatetime, ActionWait, ActionScreenshot, ActionQuit:
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// LoadScriptFile reads and parses the script at path.
func LoadScriptFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return LoadScript(data)
}

// Done reports whether every step has run.
func (s *Script) Done() bool {
	return s.done
}

// step runs at most one action. It holds while screenshots are pending so a
// capture always shows the state the script asked for.
func (s *Script) step(t scriptTarget) error {
	if s.done {
		return nil
	}
	if t.PendingScreenshots() > 0 {
		return nil
	}
	if s.waitCount > 0 {
		s.waitCount--
		return nil
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return nil
	}

	st := s.steps[s.cursor]
	s.cursor++

	var err error
	switch st.Action {
	case ActionSelect:
		err = t.SelectCity(st.City)
	case ActionDatetime:
		err = t.SetDatetime(st.Value)
	case ActionWait:
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case ActionScreenshot:
		t.Screenshot(st.Label)
	case ActionQuit:
		t.Quit()
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
	if err != nil {
		return fmt.Errorf("script step %d (%s): %w", s.cursor-1, st.Action, err)
	}
	return nil
}
