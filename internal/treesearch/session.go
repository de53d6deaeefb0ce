package treesearch

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidNavigation is matched by every rejected navigation request.
var ErrInvalidNavigation = errors.New("invalid navigation")

// Navigation rejections. Each matches ErrInvalidNavigation via errors.Is.
var (
	ErrJudgmentRequired = &navError{msg: "Please show judgment before proceeding to the next step."}
	ErrAtLastStep       = &navError{msg: "already at the last step"}
	ErrAtFirstStep      = &navError{msg: "already at the first step"}
	ErrStepNotCurrent   = &navError{msg: "only the current step can be revealed"}
)

type navError struct {
	msg string
}

func (e *navError) Error() string { return e.msg }

func (e *navError) Is(target error) bool {
	return target == ErrInvalidNavigation
}

// Reveal button labels.
const (
	LabelShowJudgment    = "Show Judgment"
	LabelShowFinalAnswer = "Show Final Answer"
)

// Session is the animation state over a dataset. The zero value is not
// usable; create one with NewSession. Methods are safe for concurrent use.
type Session struct {
	mu        sync.Mutex
	data      *Dataset
	current   int
	revealed  map[int]bool
	surviving map[string]bool
}

// NewSession starts a walkthrough at the first step with nothing revealed.
func NewSession(data *Dataset) *Session {
	return &Session{
		data:      data,
		revealed:  make(map[int]bool),
		surviving: make(map[string]bool),
	}
}

// Dataset returns the walkthrough the session plays.
func (s *Session) Dataset() *Dataset {
	return s.data
}

// Current returns the zero-based current step.
func (s *Session) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Revealed reports whether step has been revealed.
func (s *Session) Revealed(step int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revealed[step]
}

// Survived reports whether node id survived a revealed judgment.
func (s *Session) Survived(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surviving[id]
}

// Progress returns the "Step k of N" indicator.
func (s *Session) Progress() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("Step %d of %d", s.current+1, len(s.data.Steps))
}

// CanAdvance reports whether Advance would succeed.
func (s *Session) CanAdvance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkAdvance() == nil
}

// CanRetreat reports whether Retreat would succeed.
func (s *Session) CanRetreat() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current > 0
}

// Reveal shows the judgment of step and adds its unpruned nodes to the
// surviving set. Revealing an already revealed step is a no-op.
func (s *Session) Reveal(step int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if step != s.current {
		return fmt.Errorf("reveal step %d: %w", step+1, ErrStepNotCurrent)
	}
	if s.revealed[step] {
		return nil
	}

	s.revealed[step] = true
	st := &s.data.Steps[step]
	for _, n := range st.Nodes {
		if !st.Prunes(n.ID) {
			s.surviving[n.ID] = true
		}
	}
	return nil
}

// Advance moves to the next step. The current step must be revealed first.
func (s *Session) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAdvance(); err != nil {
		return err
	}
	s.current++
	return nil
}

func (s *Session) checkAdvance() error {
	if s.current >= len(s.data.Steps)-1 {
		return ErrAtLastStep
	}
	if !s.revealed[s.current] {
		return ErrJudgmentRequired
	}
	return nil
}

// Retreat moves to the previous step and clears every revealed judgment
// and survivor.
func (s *Session) Retreat() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == 0 {
		return ErrAtFirstStep
	}
	s.current--
	s.revealed = make(map[int]bool)
	s.surviving = make(map[string]bool)
	return nil
}

// Placement describes where a node is drawn.
type Placement int

const (
	// PlacementHidden nodes are not drawn.
	PlacementHidden Placement = iota
	// PlacementVisible nodes are drawn in their own column.
	PlacementVisible
	// PlacementTransitioning nodes survived the previous judgment and are
	// moving into the next column.
	PlacementTransitioning
)

func (p Placement) String() string {
	switch p {
	case PlacementVisible:
		return "visible"
	case PlacementTransitioning:
		return "transitioning"
	default:
		return "hidden"
	}
}

// NodeView is a node as drawn in a column.
type NodeView struct {
	Node
	Placement Placement
	Pruned    bool
}

// ColumnView is everything needed to draw one step column.
type ColumnView struct {
	Index       int
	Title       string
	Description string
	Shown       bool
	Revealed    bool
	Terminal    bool
	// ButtonLabel is empty when no reveal button is offered.
	ButtonLabel string
	// PruneReason is empty unless the step is revealed.
	PruneReason string
	// FinalAnswer replaces Nodes once the terminal step is revealed.
	FinalAnswer string
	Nodes       []NodeView
}

// Column returns the view of step i.
func (s *Session) Column(i int) (ColumnView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.data.Steps) {
		return ColumnView{}, fmt.Errorf("column %d: %w", i, ErrInvalidNavigation)
	}
	return s.column(i), nil
}

// Columns returns the views of every step in order.
func (s *Session) Columns() []ColumnView {
	s.mu.Lock()
	defer s.mu.Unlock()

	cols := make([]ColumnView, len(s.data.Steps))
	for i := range s.data.Steps {
		cols[i] = s.column(i)
	}
	return cols
}

func (s *Session) column(i int) ColumnView {
	st := &s.data.Steps[i]
	revealed := s.revealed[i]
	terminal := i == len(s.data.Steps)-1

	col := ColumnView{
		Index:       i,
		Title:       st.Title,
		Description: st.Description,
		Shown:       i <= s.current,
		Revealed:    revealed,
		Terminal:    terminal,
	}

	if i == s.current && !revealed {
		col.ButtonLabel = LabelShowJudgment
		if terminal {
			col.ButtonLabel = LabelShowFinalAnswer
		}
	}
	if revealed {
		col.PruneReason = st.PruneReason
	}

	if revealed && terminal && len(st.Nodes) > 0 {
		col.FinalAnswer = st.Nodes[0].FinalAnswer
		return col
	}

	col.Nodes = make([]NodeView, 0, len(st.Nodes))
	for _, n := range st.Nodes {
		col.Nodes = append(col.Nodes, NodeView{
			Node:      n,
			Placement: s.placement(i, n.ID),
			Pruned:    revealed && st.Prunes(n.ID),
		})
	}
	return col
}

func (s *Session) placement(step int, id string) Placement {
	survived := s.surviving[id]
	switch {
	case step == s.current-1 && survived && s.revealed[step]:
		return PlacementTransitioning
	case step == s.current, step < s.current && !survived:
		return PlacementVisible
	default:
		return PlacementHidden
	}
}
