package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownAction = errors.New("unknown action")

// ActionKind identifies which betting action a player took.
type ActionKind int

const (
	Fold ActionKind = iota
	Check
	Call
	Bet
	Raise
	AllIn
)

func (k ActionKind) String() string {
	switch k {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Bet:
		return "bet"
	case Raise:
		return "raise"
	case AllIn:
		return "allin"
	default:
		return "unknown"
	}
}

// Action is a player action. Amount is only meaningful for Bet, where it is
// the total the seat wants in front of it this street, and Raise, where it is
// the increment over the current bet.
type Action struct {
	Kind   ActionKind
	Amount int
}

func FoldAction() Action       { return Action{Kind: Fold} }
func CheckAction() Action      { return Action{Kind: Check} }
func CallAction() Action       { return Action{Kind: Call} }
func BetAction(n int) Action   { return Action{Kind: Bet, Amount: max(n, 0)} }
func RaiseAction(n int) Action { return Action{Kind: Raise, Amount: max(n, 0)} }
func AllInAction() Action      { return Action{Kind: AllIn} }

func (a Action) String() string {
	switch a.Kind {
	case Bet, Raise:
		return fmt.Sprintf("%s %d", a.Kind, a.Amount)
	default:
		return a.Kind.String()
	}
}

// ParseAction parses the textual form used in scenario files and the CLI:
// "fold", "check", "call", "bet 20", "raise 6", "allin".
func ParseAction(s string) (Action, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return Action{}, fmt.Errorf("%w: empty", ErrUnknownAction)
	}

	amount := func() (int, error) {
		if len(fields) != 2 {
			return 0, fmt.Errorf("%w: %q needs an amount", ErrUnknownAction, s)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: bad amount in %q", ErrUnknownAction, s)
		}
		return n, nil
	}

	switch fields[0] {
	case "fold":
		return FoldAction(), nil
	case "check":
		return CheckAction(), nil
	case "call":
		return CallAction(), nil
	case "allin", "all-in", "shove":
		return AllInAction(), nil
	case "bet":
		n, err := amount()
		if err != nil {
			return Action{}, err
		}
		return BetAction(n), nil
	case "raise":
		n, err := amount()
		if err != nil {
			return Action{}, err
		}
		return RaiseAction(n), nil
	}
	return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}
