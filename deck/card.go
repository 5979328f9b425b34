package deck

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// NumRanks is the number of ranks in a suit
	NumRanks = 13
	// NumSuits is the number of suits in a deck
	NumSuits = 4
	// NumCards is the number of distinct cards in a deck
	NumCards = NumRanks * NumSuits
)

var ErrInvalidCard = errors.New("invalid card")

// Rank represents a rank in a deck of cards.
// Ace is the lowest index; whether it plays low or high is decided by the run it sits in.
type Rank int

var rankNames = []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

var rankCodes = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

const (
	Ace Rank = iota
	Two
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
)

// Ranks returns every rank, Ace to King
func Ranks() []Rank {
	ranks := make([]Rank, 0, NumRanks)
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Valid reports whether r is one of the 13 ranks
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Next returns the rank above r. King wraps round to Ace.
func (r Rank) Next() Rank {
	return (r + 1) % NumRanks
}

// Prev returns the rank below r. Ace wraps round to King.
func (r Rank) Prev() Rank {
	return (r + NumRanks - 1) % NumRanks
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Code returns the short form of a rank, e.g. "A", "10", "K"
func (r Rank) Code() string {
	if !r.Valid() {
		return "?"
	}
	return rankCodes[r]
}

// Suit represents a suit in a deck of cards.
// The order only fixes enumeration order; no rule depends on it.
type Suit int

var suitNames = []string{"Spades", "Hearts", "Clubs", "Diamonds"}

var suitCodes = []string{"S", "H", "C", "D"}

var suitSymbols = []string{"♠", "♥", "♣", "♦"}

const (
	Spades Suit = iota
	Hearts
	Clubs
	Diamonds
)

// Suits returns every suit in canonical order
func Suits() []Suit {
	return []Suit{Spades, Hearts, Clubs, Diamonds}
}

// Valid reports whether s is one of the 4 suits
func (s Suit) Valid() bool {
	return s >= Spades && s <= Diamonds
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Code returns the single-letter form of a suit
func (s Suit) Code() string {
	if !s.Valid() {
		return "?"
	}
	return suitCodes[s]
}

// Symbol returns the suit's playing card symbol
func (s Suit) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

// Card represents a playing card.
// Cards are values: two cards are the same card iff rank and suit match.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard constructs a card. It panics if rank or suit is out of range.
func NewCard(rank Rank, suit Suit) Card {
	if !rank.Valid() || !suit.Valid() {
		panic(fmt.Sprintf("%s: rank %d, suit %d out of range", ErrInvalidCard, rank, suit))
	}
	return Card{Rank: rank, Suit: suit}
}

// Valid reports whether the card's rank and suit are both in range
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// Next returns the card of the same suit one rank up
func (c Card) Next() Card {
	return Card{Rank: c.Rank.Next(), Suit: c.Suit}
}

// Prev returns the card of the same suit one rank down
func (c Card) Prev() Card {
	return Card{Rank: c.Rank.Prev(), Suit: c.Suit}
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Code returns the short form of a card, e.g. "AS" or "10H"
func (c Card) Code() string {
	return c.Rank.Code() + c.Suit.Code()
}

// Symbol returns the card with its suit symbol, e.g. "A♠"
func (c Card) Symbol() string {
	return c.Rank.Code() + c.Suit.Symbol()
}

// index is the card's slot in a CardSet: suit-major, rank-minor
func (c Card) index() int {
	return int(c.Suit)*NumRanks + int(c.Rank)
}

func cardAt(i int) Card {
	return Card{Rank: Rank(i % NumRanks), Suit: Suit(i / NumRanks)}
}

// MarshalText encodes a card as its short code
func (c Card) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: rank %d, suit %d", ErrInvalidCard, c.Rank, c.Suit)
	}
	return []byte(c.Code()), nil
}

// UnmarshalText decodes any form accepted by ParseCard
func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCard parses a card written as rank then suit.
// Accepted forms include "AS", "a:s", "A♠", "10H" and "TH".
func ParseCard(s string) (Card, error) {
	raw := strings.ToUpper(strings.TrimSpace(s))
	raw = strings.Replace(raw, ":", "", 1)

	var suit Suit
	found := false
	for _, candidate := range Suits() {
		for _, suffix := range []string{candidate.Code(), candidate.Symbol()} {
			if strings.HasSuffix(raw, suffix) {
				suit = candidate
				raw = strings.TrimSuffix(raw, suffix)
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return Card{}, fmt.Errorf("%w: %q has no suit", ErrInvalidCard, s)
	}

	if raw == "T" {
		raw = "10"
	}
	for i, code := range rankCodes {
		if raw == code {
			return Card{Rank: Rank(i), Suit: suit}, nil
		}
	}

	return Card{}, fmt.Errorf("%w: %q has no rank", ErrInvalidCard, s)
}

// ParseCards parses a comma or whitespace separated list of cards, keeping their order
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
