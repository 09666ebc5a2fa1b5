// Package scenario replays scripted action sequences against a fresh store
// and checks the resulting state.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/tidy/internal/core/todo"
)

// ErrExpectation is returned by Run when the final state does not meet the
// scenario's expectations.
var ErrExpectation = errors.New("scenario expectation failed")

// Scenario is a named list of actions and the state they should produce.
type Scenario struct {
	// Name identifies the scenario in logs and output.
	Name string `yaml:"name"`

	// Description explains what the scenario checks.
	Description string `yaml:"description,omitempty"`

	// Seed replaces the base collection when present. An empty list starts
	// from no items.
	Seed []todo.Item `yaml:"seed,omitempty"`

	// Filter replaces the base filter when set.
	Filter todo.FilterMode `yaml:"filter,omitempty"`

	// Actions are dispatched in order.
	Actions []todo.Envelope `yaml:"actions"`

	// Expect is checked against the final state. Nil checks nothing.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect describes assertions on the final state. Unset fields are not
// checked.
type Expect struct {
	// Count is the expected collection length.
	Count *int `yaml:"count,omitempty"`

	// Filter is the expected final filter.
	Filter todo.FilterMode `yaml:"filter,omitempty"`

	// Visible lists the ids VisibleItems should return, in order.
	Visible []int `yaml:"visible,omitempty"`

	// Completed lists the ids that should be completed, in collection order.
	Completed []int `yaml:"completed,omitempty"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scenario from YAML (or JSON, which YAML accepts). Unknown
// fields are rejected so typos in expectations do not pass silently, and a
// seed must pass todo.ValidateSeed.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	if s.Filter != "" && !s.Filter.IsValid() {
		return nil, fmt.Errorf("parse scenario: unknown filter %q", s.Filter)
	}

	if s.Seed != nil {
		if err := todo.ValidateSeed(todo.Collection(s.Seed)); err != nil {
			return nil, fmt.Errorf("parse scenario: %w", err)
		}
	}

	return &s, nil
}

// Decode converts the scenario's envelopes into actions.
func (s *Scenario) Decode() ([]todo.Action, error) {
	actions := make([]todo.Action, 0, len(s.Actions))
	for i, env := range s.Actions {
		a, err := env.Decode()
		if err != nil {
			return nil, fmt.Errorf("actions[%d]: %w", i, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// InitialState returns the state the scenario starts from, given the base
// state the caller would otherwise use.
func (s *Scenario) InitialState(base todo.State) todo.State {
	seed := base.Collection
	if s.Seed != nil {
		seed = todo.Collection(s.Seed)
	}

	filter := base.Filter
	if s.Filter != "" {
		filter = s.Filter
	}

	return todo.InitialState(seed, filter)
}
