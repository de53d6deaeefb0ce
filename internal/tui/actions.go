// Package tui plays the tree-search walkthrough, either interactively as a
// bubbletea program or by replaying a fixed script of actions.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dbsmedya/edgarviz/internal/render"
	"github.com/dbsmedya/edgarviz/internal/treesearch"
)

// Action is one walkthrough control.
type Action string

const (
	ActionReveal Action = "reveal"
	ActionNext   Action = "next"
	ActionPrev   Action = "prev"
)

// ParseScript parses a comma separated list of actions.
func ParseScript(script string) ([]Action, error) {
	var actions []Action
	for _, tok := range strings.Split(script, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		switch Action(tok) {
		case "":
			continue
		case ActionReveal, ActionNext, ActionPrev:
			actions = append(actions, Action(tok))
		default:
			return nil, fmt.Errorf("unknown action %q (want reveal, next or prev)", tok)
		}
	}
	return actions, nil
}

// Apply performs a on s. Rejected navigation is returned as an error
// matching treesearch.ErrInvalidNavigation and leaves s unchanged.
func Apply(s *treesearch.Session, a Action) error {
	switch a {
	case ActionReveal:
		return s.Reveal(s.Current())
	case ActionNext:
		return s.Advance()
	case ActionPrev:
		return s.Retreat()
	default:
		return fmt.Errorf("unknown action %q", a)
	}
}

// Notice returns the message shown for a rejected action.
func Notice(err error) string {
	switch {
	case errors.Is(err, treesearch.ErrJudgmentRequired):
		return err.Error()
	case errors.Is(err, treesearch.ErrAtLastStep):
		return "This is the last step."
	case errors.Is(err, treesearch.ErrAtFirstStep):
		return "This is the first step."
	default:
		return err.Error()
	}
}

// Replay applies actions in order, writing the walkthrough after each one.
// Rejected navigation is reported inline and does not stop the replay.
func Replay(w io.Writer, s *treesearch.Session, actions []Action, styles render.TreeStyles) error {
	if _, err := fmt.Fprintln(w, render.Tree(s, styles)); err != nil {
		return err
	}

	for i, a := range actions {
		if _, err := fmt.Fprintf(w, "\n> %s\n", a); err != nil {
			return err
		}
		if err := Apply(s, a); err != nil {
			if !errors.Is(err, treesearch.ErrInvalidNavigation) {
				return fmt.Errorf("action %d: %w", i+1, err)
			}
			if _, err := fmt.Fprintf(w, "! %s\n", Notice(err)); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintln(w, render.Tree(s, styles)); err != nil {
			return err
		}
	}
	return nil
}
