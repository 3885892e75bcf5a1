package poker

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidRank = errors.New("invalid rank")
	ErrInvalidSuit = errors.New("invalid suit")
	ErrInvalidCard = errors.New("invalid card")
)

// Suit is one of the four card suits.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of distinct suits in a deck.
const NumSuits = 4

var suitSymbols = [NumSuits]string{"♣", "♦", "♥", "♠"}

var suitLetters = [NumSuits]byte{'c', 'd', 'h', 's'}

func (s Suit) String() string {
	if s >= NumSuits {
		return "?"
	}
	return suitSymbols[s]
}

// Rank is a card rank valued 2 through 14, ace high.
type Rank uint8

// NoRank pads unused kicker slots. It sorts below every real rank.
const NoRank Rank = 0

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// rankByValue maps the numeric values 2..14 to named ranks. Anything else is
// rejected rather than reinterpreted.
var rankByValue = map[int]Rank{
	2: Two, 3: Three, 4: Four, 5: Five, 6: Six, 7: Seven, 8: Eight,
	9: Nine, 10: Ten, 11: Jack, 12: Queen, 13: King, 14: Ace,
}

const rankLetters = "23456789TJQKA"

// RankFromValue converts a numeric value 2..14 to a Rank.
func RankFromValue(v int) (Rank, error) {
	r, ok := rankByValue[v]
	if !ok {
		return NoRank, fmt.Errorf("%w: %d", ErrInvalidRank, v)
	}
	return r, nil
}

// Valid reports whether r is one of the thirteen real ranks.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

func (r Rank) String() string {
	if !r.Valid() {
		return "-"
	}
	return string(rankLetters[r-Two])
}

// Name returns the long form used in hand descriptions ("Five", "Ace").
func (r Rank) Name() string {
	switch r {
	case Two:
		return "Two"
	case Three:
		return "Three"
	case Four:
		return "Four"
	case Five:
		return "Five"
	case Six:
		return "Six"
	case Seven:
		return "Seven"
	case Eight:
		return "Eight"
	case Nine:
		return "Nine"
	case Ten:
		return "Ten"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		return "None"
	}
}

func (r Rank) plural() string {
	if r == Six {
		return "Sixes"
	}
	return r.Name() + "s"
}

// Card is a single playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard returns the card with the given rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Valid reports whether the card has a real rank and suit.
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit < NumSuits
}

// String renders the card as rank plus suit symbol, e.g. "A♠".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Code returns the ASCII form accepted by ParseCard, e.g. "As".
func (c Card) Code() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{rankLetters[c.Rank-Two], suitLetters[c.Suit]})
}

// Index returns a dense 0..51 index, used for duplicate detection.
func (c Card) Index() int {
	return int(c.Suit)*13 + int(c.Rank-Two)
}

// ParseCard parses a two character card such as "As", "Td" or "2c".
// Parsing is case-insensitive.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	idx := strings.IndexByte(rankLetters, upper(s[0]))
	if idx < 0 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidRank, s)
	}
	suitChar := lower(s[1])
	for i, l := range suitLetters {
		if l == suitChar {
			return NewCard(Two+Rank(idx), Suit(i)), nil
		}
	}
	return Card{}, fmt.Errorf("%w: %q", ErrInvalidSuit, s)
}

// MustParseCard is like ParseCard but panics on error. Intended for tests and
// fixed tables.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards parses a run of cards, with or without separating whitespace:
// "AsKsQsJsTs" and "As Ks Qs Js Ts" are equivalent.
func ParseCards(s string) ([]Card, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length input %q", ErrInvalidCard, s)
	}
	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
