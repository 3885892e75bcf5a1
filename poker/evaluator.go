package poker

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrCardCount     = errors.New("hand evaluation needs 5 to 7 cards")
	ErrDuplicateCard = errors.New("duplicate card")
)

// Category enumerates the nine hand types ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandRank is a fully ordered hand score. Ranks compare by Category first and
// then lexicographically by Kickers, most significant first. Unused kicker
// slots hold NoRank.
type HandRank struct {
	Category Category
	Kickers  [5]Rank
}

// Compare returns -1 if a is weaker than b, 1 if stronger and 0 for a tie.
func Compare(a, b HandRank) int {
	if a.Category != b.Category {
		if a.Category < b.Category {
			return -1
		}
		return 1
	}
	for i := range a.Kickers {
		if a.Kickers[i] != b.Kickers[i] {
			if a.Kickers[i] < b.Kickers[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less reports whether hr is strictly weaker than other.
func (hr HandRank) Less(other HandRank) bool {
	return Compare(hr, other) < 0
}

// Equal reports whether both ranks tie exactly.
func (hr HandRank) Equal(other HandRank) bool {
	return hr == other
}

// String returns a human-readable description such as "Straight, Five high".
func (hr HandRank) String() string {
	k := hr.Kickers
	switch hr.Category {
	case StraightFlush:
		if k[0] == Ace {
			return "Royal Flush"
		}
		return fmt.Sprintf("%s, %s high", hr.Category, k[0].Name())
	case Straight, Flush, HighCard:
		return fmt.Sprintf("%s, %s high", hr.Category, k[0].Name())
	case FourOfAKind:
		return fmt.Sprintf("%s, %s", hr.Category, k[0].plural())
	case FullHouse:
		return fmt.Sprintf("%s, %s full of %s", hr.Category, k[0].plural(), k[1].plural())
	case ThreeOfAKind, OnePair:
		return fmt.Sprintf("%s, %s", hr.Category, k[0].plural())
	case TwoPair:
		return fmt.Sprintf("%s, %s and %s", hr.Category, k[0].plural(), k[1].plural())
	default:
		return hr.Category.String()
	}
}

// group is a run of same-rank cards inside a five card hand.
type group struct {
	count int
	rank  Rank
}

// Evaluate5 scores exactly five cards.
func Evaluate5(cards [5]Card) HandRank {
	var rankCounts [Ace + 1]int
	var suitCounts [NumSuits]int
	for _, c := range cards {
		rankCounts[c.Rank]++
		suitCounts[c.Suit]++
	}

	flush := false
	for _, n := range suitCounts {
		if n == 5 {
			flush = true
		}
	}

	straightHigh := NoRank
	for hi := Ace; hi >= Six; hi-- {
		if rankCounts[hi] > 0 && rankCounts[hi-1] > 0 && rankCounts[hi-2] > 0 &&
			rankCounts[hi-3] > 0 && rankCounts[hi-4] > 0 {
			straightHigh = hi
			break
		}
	}
	if straightHigh == NoRank && rankCounts[Ace] > 0 && rankCounts[Two] > 0 &&
		rankCounts[Three] > 0 && rankCounts[Four] > 0 && rankCounts[Five] > 0 {
		straightHigh = Five
	}

	groups := make([]group, 0, 5)
	for r := Ace; r >= Two; r-- {
		if rankCounts[r] > 0 {
			groups = append(groups, group{count: rankCounts[r], rank: r})
		}
	}
	// ranks are already descending, so a stable sort on count keeps that order
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})

	switch {
	case flush && straightHigh != NoRank:
		return HandRank{Category: StraightFlush, Kickers: [5]Rank{straightHigh}}
	case groups[0].count == 4:
		return HandRank{Category: FourOfAKind, Kickers: [5]Rank{groups[0].rank, groups[1].rank}}
	case groups[0].count == 3 && groups[1].count == 2:
		return HandRank{Category: FullHouse, Kickers: [5]Rank{groups[0].rank, groups[1].rank}}
	case flush:
		return HandRank{Category: Flush, Kickers: groupKickers(groups)}
	case straightHigh != NoRank:
		return HandRank{Category: Straight, Kickers: [5]Rank{straightHigh}}
	case groups[0].count == 3:
		return HandRank{Category: ThreeOfAKind, Kickers: groupKickers(groups)}
	case groups[0].count == 2 && groups[1].count == 2:
		return HandRank{Category: TwoPair, Kickers: groupKickers(groups)}
	case groups[0].count == 2:
		return HandRank{Category: OnePair, Kickers: groupKickers(groups)}
	default:
		return HandRank{Category: HighCard, Kickers: groupKickers(groups)}
	}
}

// groupKickers lists each distinct rank once, biggest group first. Slots past
// the last group stay NoRank.
func groupKickers(groups []group) [5]Rank {
	var k [5]Rank
	for i, g := range groups {
		k[i] = g.rank
	}
	return k
}

// fiveOfSeven holds the index sets of every 5-card subset of 7 cards.
var fiveOfSeven = buildCombinations(7, 5)

func buildCombinations(n, k int) [][]int {
	var out [][]int
	combo := make([]int, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			out = append(out, append([]int(nil), combo...))
			return
		}
		for i := start; i <= n-(k-depth); i++ {
			combo[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
	return out
}

// Evaluate7 returns the best rank among the 21 five card subsets of cards.
func Evaluate7(cards [7]Card) HandRank {
	best, _ := bestOf(cards[:], fiveOfSeven)
	return best
}

// EvaluateBest scores 5 to 7 cards and also returns the five cards that make
// the winning hand.
func EvaluateBest(cards []Card) (HandRank, [5]Card, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return HandRank{}, [5]Card{}, fmt.Errorf("%w: got %d", ErrCardCount, len(cards))
	}
	var seen [52]bool
	for _, c := range cards {
		if !c.Valid() {
			return HandRank{}, [5]Card{}, fmt.Errorf("%w: %v", ErrInvalidCard, c)
		}
		if seen[c.Index()] {
			return HandRank{}, [5]Card{}, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c.Index()] = true
	}

	rank, best := bestOf(cards, buildCombinations(len(cards), 5))
	return rank, best, nil
}

func bestOf(cards []Card, combos [][]int) (HandRank, [5]Card) {
	var best HandRank
	var bestCards [5]Card
	for i, idx := range combos {
		var five [5]Card
		for j, ci := range idx {
			five[j] = cards[ci]
		}
		r := Evaluate5(five)
		if i == 0 || Compare(r, best) > 0 {
			best = r
			bestCards = five
		}
	}
	return best, bestCards
}

// FormatCards renders cards separated by spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
