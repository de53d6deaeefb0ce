// Package treesearch holds the scripted search-tree walkthrough and the
// state machine that steps through it.
package treesearch

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Status of a search node.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Node is one attempted search in a step.
type Node struct {
	ID          string `yaml:"id"`
	ParentID    string `yaml:"parent,omitempty"`
	Text        string `yaml:"text"`
	Query       string `yaml:"query"`
	Result      string `yaml:"result"`
	Status      Status `yaml:"status"`
	Judgment    string `yaml:"judgment,omitempty"`
	FinalAnswer string `yaml:"final_answer,omitempty"`
}

// Step is one column of the walkthrough.
type Step struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Nodes        []Node   `yaml:"nodes"`
	PruneNodeIDs []string `yaml:"prune"`
	PruneReason  string   `yaml:"prune_reason,omitempty"`
}

// Prunes reports whether the step prunes node id.
func (s *Step) Prunes(id string) bool {
	for _, p := range s.PruneNodeIDs {
		if p == id {
			return true
		}
	}
	return false
}

// Dataset is the complete scripted walkthrough.
type Dataset struct {
	Question string `yaml:"question"`
	Steps    []Step `yaml:"steps"`
}

// ErrInvalidDataset is wrapped by every dataset validation failure.
var ErrInvalidDataset = errors.New("invalid walkthrough dataset")

//go:embed walkthrough.yaml
var walkthroughYAML []byte

// Embedded decodes and validates the walkthrough compiled into the binary.
func Embedded() (*Dataset, error) {
	return Parse(walkthroughYAML)
}

// Default returns the embedded walkthrough. It panics if the embedded
// document is malformed, which the package tests rule out.
func Default() *Dataset {
	ds, err := Embedded()
	if err != nil {
		panic(fmt.Sprintf("embedded walkthrough: %v", err))
	}
	return ds
}

// Parse decodes and validates a walkthrough document.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to decode walkthrough: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate checks the structural invariants: at least one step, unique
// node ids, known statuses, prune ids naming nodes of their own step, and
// every parent naming a surviving node of the immediately preceding step.
func (d *Dataset) Validate() error {
	if len(d.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalidDataset)
	}

	seen := make(map[string]bool)
	for i := range d.Steps {
		step := &d.Steps[i]
		if len(step.Nodes) == 0 {
			return fmt.Errorf("%w: step %d has no nodes", ErrInvalidDataset, i)
		}

		own := make(map[string]bool)
		for _, n := range step.Nodes {
			if n.ID == "" {
				return fmt.Errorf("%w: step %d has a node without id", ErrInvalidDataset, i)
			}
			if seen[n.ID] {
				return fmt.Errorf("%w: duplicate node id %q", ErrInvalidDataset, n.ID)
			}
			if n.Status != StatusSuccess && n.Status != StatusError {
				return fmt.Errorf("%w: node %q has unknown status %q", ErrInvalidDataset, n.ID, n.Status)
			}
			seen[n.ID] = true
			own[n.ID] = true
		}

		for _, p := range step.PruneNodeIDs {
			if !own[p] {
				return fmt.Errorf("%w: step %d prunes unknown node %q", ErrInvalidDataset, i, p)
			}
		}

		for _, n := range step.Nodes {
			if err := d.validateParent(i, n); err != nil {
				return err
			}
		}
	}

	return nil
}

func (d *Dataset) validateParent(stepIndex int, n Node) error {
	if n.ParentID == "" {
		return nil
	}
	if stepIndex == 0 {
		return fmt.Errorf("%w: node %q in the first step cannot have a parent", ErrInvalidDataset, n.ID)
	}

	prev := &d.Steps[stepIndex-1]
	for _, candidate := range prev.Nodes {
		if candidate.ID != n.ParentID {
			continue
		}
		if prev.Prunes(candidate.ID) {
			return fmt.Errorf("%w: node %q has pruned parent %q", ErrInvalidDataset, n.ID, n.ParentID)
		}
		return nil
	}
	return fmt.Errorf("%w: node %q references parent %q outside the previous step", ErrInvalidDataset, n.ID, n.ParentID)
}

// StepCount returns the number of steps.
func (d *Dataset) StepCount() int {
	return len(d.Steps)
}
