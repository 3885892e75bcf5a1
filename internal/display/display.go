// Package display renders cards, hand results and simulation reports as
// styled terminal text.
package display

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/pokercore/internal/game"
	"github.com/lox/pokercore/internal/simulator"
	"github.com/lox/pokercore/internal/table"
	"github.com/lox/pokercore/poker"
)

// Styles holds the lipgloss styles used for each kind of output.
type Styles struct {
	Header    lipgloss.Style
	Street    lipgloss.Style
	Label     lipgloss.Style
	Actions   lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
}

// Renderer formats output for a particular writer. Colours are dropped when
// the writer is not a terminal unless a profile is forced with WithProfile.
type Renderer struct {
	styles Styles
}

// Option adjusts the underlying lipgloss renderer.
type Option func(*lipgloss.Renderer)

// WithProfile forces a colour profile regardless of the writer.
func WithProfile(p termenv.Profile) Option {
	return func(lr *lipgloss.Renderer) {
		lr.SetColorProfile(p)
	}
}

// ColorMode returns the options for "auto", "always" or "never".
func ColorMode(mode string) ([]Option, error) {
	switch mode {
	case "", "auto":
		return nil, nil
	case "always":
		return []Option{WithProfile(termenv.TrueColor)}, nil
	case "never":
		return []Option{WithProfile(termenv.Ascii)}, nil
	default:
		return nil, fmt.Errorf("unknown color mode %q", mode)
	}
}

// New creates a renderer whose colour profile matches w.
func New(w io.Writer, opts ...Option) *Renderer {
	lr := lipgloss.NewRenderer(w)
	for _, opt := range opts {
		opt(lr)
	}
	return &Renderer{styles: Styles{
		Header: lr.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Street: lr.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Label: lr.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Actions: lr.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),
		RedCard: lr.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: lr.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Success: lr.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Warning: lr.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Info: lr.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
	}}
}

// Title renders a banner line.
func (r *Renderer) Title(s string) string {
	return r.styles.Header.Render(s)
}

// Card renders a single card, red or black by suit.
func (r *Renderer) Card(c poker.Card) string {
	if c.Suit == poker.Hearts || c.Suit == poker.Diamonds {
		return r.styles.RedCard.Render(c.String())
	}
	return r.styles.BlackCard.Render(c.String())
}

// Cards renders cards in brackets, e.g. "[A♠ K♠]".
func (r *Renderer) Cards(cards []poker.Card) string {
	formatted := make([]string, len(cards))
	for i, c := range cards {
		formatted[i] = r.Card(c)
	}
	return "[" + strings.Join(formatted, " ") + "]"
}

// Rank renders an evaluated hand with the five cards that make it.
func (r *Renderer) Rank(rank poker.HandRank, best [5]poker.Card) string {
	return fmt.Sprintf("%s %s", r.styles.Success.Render(rank.String()), r.Cards(best[:]))
}

// Street renders a street heading with the board so far.
func (r *Renderer) Street(street game.Street, board []poker.Card) string {
	name := r.styles.Street.Render(strings.ToUpper(street.String()))
	if len(board) == 0 {
		return name
	}
	return name + " " + r.Cards(board)
}

// Seat renders a seated player with stack and hole cards.
func (r *Renderer) Seat(tbl *table.Table, seat int) string {
	p := tbl.Player(seat)
	if p == nil {
		return r.styles.Label.Render(fmt.Sprintf("seat %d: empty", seat))
	}
	line := fmt.Sprintf("%s %-10s %5d", r.styles.Label.Render(fmt.Sprintf("seat %d", seat)), p.Name, p.Chips)
	if seat == tbl.Button() {
		line += " " + r.styles.Warning.Render("(D)")
	}
	if len(p.Hole) > 0 {
		line += " " + r.Cards(p.Hole)
	}
	return line
}

// Action renders one player's action and what they have in front of them.
func (r *Renderer) Action(name string, seat int, a game.Action, contributed int) string {
	return fmt.Sprintf("  %s %s %s",
		r.styles.Label.Render(fmt.Sprintf("seat %d", seat)),
		name,
		r.styles.Actions.Render(fmt.Sprintf("%s (%d in)", a, contributed)))
}

// Result renders pots and awards of a finished hand.
func (r *Renderer) Result(res *game.Result) string {
	var b strings.Builder
	for i, p := range res.Pots {
		label := "Main pot"
		if i > 0 {
			label = fmt.Sprintf("Side pot %d", i)
		}
		fmt.Fprintf(&b, "%s %d %s\n", r.styles.Street.Render(label), p.Total(),
			r.styles.Label.Render(fmt.Sprintf("seats %v", p.Eligible)))
	}
	for _, a := range res.Awards {
		line := fmt.Sprintf("  %s wins %d", a.Name, a.Amount)
		if res.Showdown {
			line += " with " + r.Rank(a.Rank, a.Best)
		}
		b.WriteString(r.styles.Success.Render(line) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// PositionName names a seat position counted clockwise from the button.
func PositionName(pos, seats int) string {
	if seats == 2 {
		return [...]string{"BTN", "BB"}[pos]
	}
	switch pos {
	case 0:
		return "BTN"
	case 1:
		return "SB"
	case 2:
		return "BB"
	case 3:
		return "UTG"
	}
	return fmt.Sprintf("UTG+%d", pos-3)
}

// Report renders a simulation summary.
func (r *Renderer) Report(rep *simulator.Report) string {
	var b strings.Builder
	row := func(label string, format string, args ...any) {
		fmt.Fprintf(&b, "%s %s\n", r.styles.Label.Render(fmt.Sprintf("%-16s", label)), fmt.Sprintf(format, args...))
	}

	b.WriteString(r.Title("Simulation") + "\n")
	row("Hands", "%d", rep.Hands)
	row("Showdowns", "%d (%.1f%%)", rep.Showdowns, percent(rep.Showdowns, rep.Hands))
	row("Pots awarded", "%d", rep.Pots)
	row("Side pot hands", "%d", rep.SidePotHands)
	row("Split pots", "%d", rep.SplitPots)
	row("Elapsed", "%s (%.0f hands/s)", rep.Elapsed.Round(1e6), rep.HandsPerSecond())

	b.WriteString("\n" + r.styles.Street.Render("Winning hands") + "\n")
	total := 0
	for _, n := range rep.Categories {
		total += n
	}
	categories := make([]poker.Category, 0, len(rep.Categories))
	for c := range rep.Categories {
		categories = append(categories, c)
	}
	slices.Sort(categories)
	slices.Reverse(categories)
	for _, c := range categories {
		row(c.String(), "%6d %5.1f%%", rep.Categories[c], percent(rep.Categories[c], total))
	}

	b.WriteString("\n" + r.styles.Street.Render("Net by position (bb/hand)") + "\n")
	for pos := range rep.Positions {
		s := &rep.Positions[pos]
		low, high := s.ConfidenceInterval95()
		row(PositionName(pos, len(rep.Positions)), "%+7.3f  95%% CI [%+.3f, %+.3f]", s.Mean(), low, high)
	}

	if len(rep.Bots) > 1 {
		b.WriteString("\n" + r.styles.Street.Render("Net by bot (bb/hand)") + "\n")
		names := make([]string, 0, len(rep.Bots))
		for name := range rep.Bots {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			s := rep.Bots[name]
			row(name, "%+7.3f  won %d at showdown, %d without", s.Mean(), s.ShowdownWins, s.NonShowdownWins)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func percent(n, of int) float64 {
	if of == 0 {
		return 0
	}
	return float64(n) / float64(of) * 100
}
