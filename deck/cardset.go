package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

var (
	ErrDuplicateCard = errors.New("card already in set")
	ErrMissingCard   = errors.New("card not in set")
)

// MembershipError is the panic value raised when a CardSet is misused:
// adding a card it already holds or removing one it doesn't.
type MembershipError struct {
	Err  error
	Card Card
	Set  CardSet
}

func (e *MembershipError) Error() string {
	return fmt.Sprintf("%s: %s, set %s", e.Err, e.Card.Code(), e.Set)
}

func (e *MembershipError) Unwrap() error {
	return e.Err
}

// CardSet is a set of distinct cards, one slot per rank and suit.
// The zero value is an empty set. A CardSet is a value: copying it copies the set.
type CardSet struct {
	bits uint64
}

// NewCardSet builds a set from cards the caller guarantees are distinct.
// A duplicate panics just like a second Add would.
func NewCardSet(cards ...Card) CardSet {
	var s CardSet
	for _, c := range cards {
		s.Add(c)
	}
	return s
}

func mask(c Card) uint64 {
	if !c.Valid() {
		panic(fmt.Sprintf("%s: rank %d, suit %d", ErrInvalidCard, c.Rank, c.Suit))
	}
	return 1 << uint(c.index())
}

// Add adds a card. It panics with a *MembershipError if the card is already present.
func (s *CardSet) Add(c Card) {
	m := mask(c)
	if s.bits&m != 0 {
		panic(&MembershipError{Err: ErrDuplicateCard, Card: c, Set: *s})
	}
	s.bits |= m
}

// Remove removes a card. It panics with a *MembershipError if the card is absent.
func (s *CardSet) Remove(c Card) {
	m := mask(c)
	if s.bits&m == 0 {
		panic(&MembershipError{Err: ErrMissingCard, Card: c, Set: *s})
	}
	s.bits &^= m
}

// Contains reports whether c is in the set
func (s CardSet) Contains(c Card) bool {
	if !c.Valid() {
		return false
	}
	return s.bits&(1<<uint(c.index())) != 0
}

// Len returns the number of cards in the set
func (s CardSet) Len() int {
	return bits.OnesCount64(s.bits)
}

// Empty reports whether the set has no cards
func (s CardSet) Empty() bool {
	return s.bits == 0
}

// All yields the cards in canonical order: by suit, then by rank from Ace to King.
// The sequence can be ranged over any number of times.
func (s CardSet) All() iter.Seq[Card] {
	return func(yield func(Card) bool) {
		remaining := s.bits
		for remaining != 0 {
			i := bits.TrailingZeros64(remaining)
			if !yield(cardAt(i)) {
				return
			}
			remaining &= remaining - 1
		}
	}
}

// Cards returns the cards in canonical order
func (s CardSet) Cards() []Card {
	cards := make([]Card, 0, s.Len())
	for c := range s.All() {
		cards = append(cards, c)
	}
	return cards
}

// CountRank returns how many suits of the given rank are in the set
func (s CardSet) CountRank(rank Rank) int {
	n := 0
	for _, suit := range Suits() {
		if s.Contains(Card{Rank: rank, Suit: suit}) {
			n++
		}
	}
	return n
}

func (s CardSet) String() string {
	codes := make([]string, 0, s.Len())
	for c := range s.All() {
		codes = append(codes, c.Code())
	}
	return "[" + strings.Join(codes, " ") + "]"
}

// MarshalJSON encodes the set as an ordered list of card codes
func (s CardSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Cards())
}

// UnmarshalJSON decodes a list of card codes. Unlike NewCardSet it reports
// a duplicate as an error, since the input comes from outside the program.
func (s *CardSet) UnmarshalJSON(data []byte) error {
	var cards []Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return err
	}

	var set CardSet
	for _, c := range cards {
		if set.Contains(c) {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c.Code())
		}
		set.Add(c)
	}
	*s = set
	return nil
}
