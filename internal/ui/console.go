// Package ui renders table state to a terminal and prompts human players
// for actions.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tehes/poker/internal/deck"
	"github.com/Tehes/poker/internal/game"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	actingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	potStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("120"))
	boardStyle  = lipgloss.NewStyle().Bold(true)
	winStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("120"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	redCard     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	blackCard   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// Console renders hand progress as styled terminal lines
type Console struct {
	out io.Writer
}

// NewConsole creates a console renderer writing to w
func NewConsole(w io.Writer) *Console {
	return &Console{out: w}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func styledCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		if card.IsRed() {
			parts[i] = redCard.Render(card.String())
		} else {
			parts[i] = blackCard.Render(card.String())
		}
	}
	return strings.Join(parts, " ")
}

func (c *Console) HandStarted(start game.HandStart, smallBlind, bigBlind int) {
	c.printf("")
	c.printf("%s", headerStyle.Render(fmt.Sprintf("── Hand #%d ──", start.HandNumber)))
	if start.BlindsUp {
		c.printf("%s", headerStyle.Render(fmt.Sprintf("Blinds up: %d/%d", smallBlind, bigBlind)))
	}
	c.printf("Dealer: %s", start.Dealer.Name)
	c.printf("%s posts small blind %d, %s posts big blind %d",
		start.SmallBlind.Name, start.SBPosted, start.BigBlind.Name, start.BBPosted)
}

func (c *Console) SeatActing(_ int, name string) {
	c.printf("%s", actingStyle.Render(fmt.Sprintf("→ %s to act", name)))
}

func (c *Console) ActionTaken(name string, applied game.Applied, pot int) {
	var line string
	switch applied.Action {
	case game.Fold:
		line = fmt.Sprintf("%s folds", name)
	case game.Check:
		line = fmt.Sprintf("%s checks", name)
	case game.Call:
		line = fmt.Sprintf("%s calls %d", name, applied.Amount)
	case game.Raise:
		line = fmt.Sprintf("%s raises to %d", name, applied.To)
	case game.AllIn:
		line = fmt.Sprintf("%s is all in for %d", name, applied.To)
	}
	c.printf("%s %s", line, potStyle.Render(fmt.Sprintf("(pot %d)", pot)))
}

func (c *Console) PhaseDealt(phase game.Phase, community []deck.Card) {
	label := strings.ToUpper(phase.String()[:1]) + phase.String()[1:]
	c.printf("%s: %s", boardStyle.Render(label), styledCards(community))
}

func (c *Console) Showdown(reveals []game.Reveal, community []deck.Card) {
	c.printf("%s", headerStyle.Render("Showdown"))
	c.printf("Board: %s", styledCards(community))
	for _, r := range reveals {
		c.printf("%s shows %s", r.Name, styledCards(r.Cards))
	}
}

func (c *Console) PotAwarded(pot game.SettledPot) {
	if pot.Refund {
		c.printf("%s", faintStyle.Render(
			fmt.Sprintf("%d returned to %s", pot.Amount, pot.Winners[0].Name)))
		return
	}
	names := make([]string, len(pot.Winners))
	for i, w := range pot.Winners {
		names[i] = w.Name
	}
	line := fmt.Sprintf("%s wins %d", strings.Join(names, ", "), pot.Amount)
	if len(pot.Winners) > 1 {
		line = fmt.Sprintf("%s split %d", strings.Join(names, ", "), pot.Amount)
	}
	if pot.HandName != "" {
		line += fmt.Sprintf(" with %s", pot.HandName)
	}
	c.printf("%s", winStyle.Render(line))
}

func (c *Console) Eliminated(name string) {
	c.printf("%s", faintStyle.Render(fmt.Sprintf("%s is eliminated", name)))
}

func (c *Console) Champion(name string, chips int) {
	c.printf("%s", headerStyle.Render(fmt.Sprintf("🏆 %s wins the tournament with %d chips", name, chips)))
}
