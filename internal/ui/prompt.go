package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/coder/quartz"

	"github.com/Tehes/poker/internal/game"
)

// Human prompts a person for actions on the terminal. If no valid command
// arrives before the timeout the seat checks when free and folds otherwise.
//
// Commands: fold, check, call, raise <chips>, allin
type Human struct {
	out     io.Writer
	lines   chan string
	clock   quartz.Clock
	timeout time.Duration
}

// HumanOption configures a human prompter
type HumanOption func(*Human)

// WithTimeout sets the per-action timeout. Zero disables it.
func WithTimeout(d time.Duration) HumanOption {
	return func(h *Human) { h.timeout = d }
}

// WithClock injects the clock used for the action timeout
func WithClock(c quartz.Clock) HumanOption {
	return func(h *Human) { h.clock = c }
}

// NewHuman creates a prompter reading commands from r and writing prompts
// to w. It starts a reader goroutine that lives for the whole game.
func NewHuman(r io.Reader, w io.Writer, opts ...HumanOption) *Human {
	h := &Human{
		out:     w,
		lines:   make(chan string),
		clock:   quartz.NewReal(),
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(h)
	}
	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			h.lines <- scanner.Text()
		}
		close(h.lines)
	}()
	return h
}

// Act implements game.Agent
func (h *Human) Act(view game.TableView, env game.ActionEnvelope) game.Decision {
	h.prompt(view, env)

	var timeout <-chan time.Time
	if h.timeout > 0 {
		timer := h.clock.NewTimer(h.timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	for {
		select {
		case line, ok := <-h.lines:
			if !ok {
				return h.auto(env, "input closed")
			}
			decision, err := parseCommand(line, env)
			if err != nil {
				fmt.Fprintf(h.out, "%s\n", err)
				continue
			}
			return decision
		case <-timeout:
			return h.auto(env, "time is up")
		}
	}
}

func (h *Human) prompt(view game.TableView, env game.ActionEnvelope) {
	hero := view.Hero()
	fmt.Fprintf(h.out, "Your cards: %s | chips %d | pot %d\n",
		styledCards(view.HoleCards), hero.Chips, view.Pot)
	if env.NeedToCall > 0 {
		fmt.Fprintf(h.out, "%d to call. fold / call / raise <chips> / allin\n", env.NeedToCall)
	} else {
		fmt.Fprintf(h.out, "check / raise <chips> / allin\n")
	}
	if env.MinRaise <= env.Max {
		fmt.Fprintf(h.out, "raise between %d and %d\n", env.MinRaise, env.Max)
	}
}

func (h *Human) auto(env game.ActionEnvelope, reason string) game.Decision {
	if env.NeedToCall > 0 {
		fmt.Fprintf(h.out, "%s, folding\n", reason)
		return game.Decision{Action: game.Fold}
	}
	fmt.Fprintf(h.out, "%s, checking\n", reason)
	return game.Decision{Action: game.Check}
}

func parseCommand(line string, env game.ActionEnvelope) (game.Decision, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return game.Decision{}, fmt.Errorf("say fold, check, call, raise <chips> or allin")
	}

	switch fields[0] {
	case "fold", "f":
		return game.Decision{Action: game.Fold}, nil
	case "check", "k":
		if env.NeedToCall > 0 {
			return game.Decision{}, fmt.Errorf("there is %d to call", env.NeedToCall)
		}
		return game.Decision{Action: game.Check}, nil
	case "call", "c":
		return game.Decision{Action: game.Call}, nil
	case "raise", "bet", "r", "b":
		if len(fields) < 2 {
			return game.Decision{}, fmt.Errorf("raise how much?")
		}
		amount, err := strconv.Atoi(fields[1])
		if err != nil {
			return game.Decision{}, fmt.Errorf("%q is not a number", fields[1])
		}
		if amount > env.Max {
			return game.Decision{}, fmt.Errorf("you only have %d", env.Max)
		}
		if amount < env.MinRaise && amount < env.Max {
			return game.Decision{}, fmt.Errorf("minimum raise is %d", env.MinRaise)
		}
		return game.Decision{Action: game.Raise, Amount: amount}, nil
	case "allin", "a":
		return game.Decision{Action: game.Raise, Amount: env.Max}, nil
	default:
		return game.Decision{}, fmt.Errorf("say fold, check, call, raise <chips> or allin")
	}
}
