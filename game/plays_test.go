package game

import (
	"testing"
	"time"

	"github.com/minaorangina/rummy/deck"
	utils "github.com/minaorangina/rummy/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cards(t *testing.T, codes string) []deck.Card {
	t.Helper()
	c, err := deck.ParseCards(codes)
	require.NoError(t, err)
	return c
}

func set(t *testing.T, codes string) deck.CardSet {
	t.Helper()
	return deck.NewCardSet(cards(t, codes)...)
}

func played(t *testing.T, multiples, runs string) PlayedCards {
	t.Helper()
	return NewPlayedCards(cards(t, multiples), cards(t, runs))
}

func multiple(used, acquired deck.CardSet) Play {
	return Play{Kind: Multiple{}, CardsUsed: used, CardsAcquired: acquired}
}

func run(ace AceStatus, used, acquired deck.CardSet) Play {
	return Play{Kind: StraightFlush{Ace: ace}, CardsUsed: used, CardsAcquired: acquired}
}

func TestMultiplePlays(t *testing.T) {
	t.Run("three of a kind is one play", func(t *testing.T) {
		plays := AllPossiblePlays(set(t, "5S 5H 5C"), nil, PlayedCards{})

		assert.Equal(t, []Play{
			multiple(set(t, "5S 5H 5C"), deck.CardSet{}),
		}, plays)
	})

	t.Run("four of a kind is each three, then all four", func(t *testing.T) {
		plays := AllPossiblePlays(set(t, "9D 9C 9H 9S"), nil, PlayedCards{})

		assert.Equal(t, []Play{
			multiple(set(t, "9S 9H 9C"), deck.CardSet{}),
			multiple(set(t, "9S 9H 9D"), deck.CardSet{}),
			multiple(set(t, "9S 9C 9D"), deck.CardSet{}),
			multiple(set(t, "9H 9C 9D"), deck.CardSet{}),
			multiple(set(t, "9S 9H 9C 9D"), deck.CardSet{}),
		}, plays)
	})

	t.Run("a pair is nothing", func(t *testing.T) {
		plays := AllPossiblePlays(set(t, "QS QD"), nil, PlayedCards{})
		assert.Empty(t, plays)
	})

	t.Run("a single needs its rank melded as a multiple", func(t *testing.T) {
		hand := set(t, "8H")

		assert.Empty(t, AllPossiblePlays(hand, nil, PlayedCards{}))

		plays := AllPossiblePlays(hand, nil, played(t, "8S 8C 8D", ""))
		assert.Equal(t, []Play{multiple(set(t, "8H"), deck.CardSet{})}, plays)
	})

	t.Run("a single doesn't join a run", func(t *testing.T) {
		plays := AllPossiblePlays(set(t, "8H"), nil, played(t, "", "8S 9S 10S"))
		assert.Empty(t, plays)
	})

	t.Run("cards from the discard pile count towards a multiple", func(t *testing.T) {
		pile := cards(t, "5S 9D KC")
		plays := AllPossiblePlays(set(t, "5H 5C"), pile, PlayedCards{})

		assert.Equal(t, []Play{
			multiple(set(t, "5S 5H 5C"), set(t, "5S 9D KC")),
		}, plays)
	})
}

func TestInvalidGameState(t *testing.T) {
	t.Run("one or two suits melded as a multiple panics", func(t *testing.T) {
		for _, melded := range []string{"4S", "4S 4D"} {
			utils.AssertPanicsWith(t, ErrInvalidGameState, func() {
				AllPossiblePlays(set(t, "4H"), nil, played(t, melded, ""))
			})
		}
	})

	t.Run("every rank is checked, not just the ones in hand", func(t *testing.T) {
		utils.AssertPanicsWith(t, ErrInvalidGameState, func() {
			AllPossiblePlays(set(t, "4H 4C 4D"), nil, played(t, "KS KD", ""))
		})
	})

	t.Run("a card in both hand and discard pile panics", func(t *testing.T) {
		utils.AssertPanicsWith(t, deck.ErrDuplicateCard, func() {
			AllPossiblePlays(set(t, "4H 7C"), cards(t, "7C"), PlayedCards{})
		})
	})

	t.Run("the panic value says what was wrong", func(t *testing.T) {
		defer func() {
			r := recover()
			stateErr, ok := r.(*InvalidStateError)
			require.True(t, ok, "got %T", r)
			assert.Contains(t, stateErr.Error(), "Jack")
		}()
		AllPossiblePlays(deck.CardSet{}, nil, played(t, "JS JH", ""))
	})
}

func TestNewRunPlays(t *testing.T) {
	t.Run("every run of three or more, shortest first from each start", func(t *testing.T) {
		plays := AllPossiblePlays(set(t, "2D 3D 4D 5D"), nil, PlayedCards{})

		assert.Equal(t, []Play{
			run(NoAce, set(t, "2D 3D 4D"), deck.CardSet{}),
			run(NoAce, set(t, "2D 3D 4D 5D"), deck.CardSet{}),
			run(NoAce, set(t, "3D 4D 5D"), deck.CardSet{}),
		}, plays)
	})

	t.Run("Ace plays low below the Two", func(t *testing.T) {
		plays := AllPossiblePlays(set(t, "AS 2S 3S"), nil, PlayedCards{})
		assert.Equal(t, []Play{run(AceLow, set(t, "AS 2S 3S"), deck.CardSet{})}, plays)
	})

	t.Run("Ace plays high above the King", func(t *testing.T) {
		plays := AllPossiblePlays(set(t, "QH KH AH"), nil, PlayedCards{})
		assert.Equal(t, []Play{run(AceHigh, set(t, "QH KH AH"), deck.CardSet{})}, plays)
	})

	t.Run("a run may turn the corner at the Ace", func(t *testing.T) {
		plays := AllPossiblePlays(set(t, "KC AC 2C"), nil, PlayedCards{})
		assert.Equal(t, []Play{run(AceHigh, set(t, "KC AC 2C"), deck.CardSet{})}, plays)
	})

	t.Run("suits don't mix", func(t *testing.T) {
		plays := AllPossiblePlays(set(t, "6S 7H 8S"), nil, PlayedCards{})
		assert.Empty(t, plays)
	})

	t.Run("a whole suit gives every run up to thirteen cards", func(t *testing.T) {
		var hearts deck.CardSet
		for _, rank := range deck.Ranks() {
			hearts.Add(deck.NewCard(rank, deck.Hearts))
		}

		plays := AllPossiblePlays(hearts, nil, PlayedCards{})

		// 13 starts, each giving runs of length 3 to 13
		assert.Len(t, plays, deck.NumRanks*(deck.NumRanks-minRunLength+1))
		for _, p := range plays {
			assert.LessOrEqual(t, p.CardsUsed.Len(), deck.NumRanks)
			assert.GreaterOrEqual(t, p.CardsUsed.Len(), minRunLength)
		}
	})
}

func TestRunExtensionPlays(t *testing.T) {
	t.Run("one card at either end", func(t *testing.T) {
		plays := AllPossiblePlays(set(t, "3H 7H"), nil, played(t, "", "4H 5H 6H"))

		assert.Equal(t, []Play{
			run(NoAce, set(t, "3H"), deck.CardSet{}),
			run(NoAce, set(t, "7H"), deck.CardSet{}),
		}, plays)
	})

	t.Run("two cards below the run", func(t *testing.T) {
		plays := AllPossiblePlays(set(t, "2H 3H"), nil, played(t, "", "4H 5H 6H"))

		assert.Equal(t, []Play{
			run(NoAce, set(t, "3H"), deck.CardSet{}),
			run(NoAce, set(t, "2H 3H"), deck.CardSet{}),
		}, plays)
	})

	t.Run("an Ace extends low", func(t *testing.T) {
		plays := AllPossiblePlays(set(t, "AS"), nil, played(t, "", "2S 3S 4S"))
		assert.Equal(t, []Play{run(AceLow, set(t, "AS"), deck.CardSet{})}, plays)
	})

	t.Run("an Ace extends high", func(t *testing.T) {
		plays := AllPossiblePlays(set(t, "AS"), nil, played(t, "", "JS QS KS"))
		assert.Equal(t, []Play{run(AceHigh, set(t, "AS"), deck.CardSet{})}, plays)
	})

	t.Run("an Ace as the second card of a pair", func(t *testing.T) {
		low := AllPossiblePlays(set(t, "AS 2S"), nil, played(t, "", "3S 4S 5S"))
		assert.Equal(t, []Play{
			run(NoAce, set(t, "2S"), deck.CardSet{}),
			run(AceLow, set(t, "AS 2S"), deck.CardSet{}),
		}, low)

		high := AllPossiblePlays(set(t, "KD AD"), nil, played(t, "", "10D JD QD"))
		assert.Equal(t, []Play{
			run(NoAce, set(t, "KD"), deck.CardSet{}),
			run(AceHigh, set(t, "KD AD"), deck.CardSet{}),
		}, high)
	})

	t.Run("no pair continues past an Ace", func(t *testing.T) {
		plays := AllPossiblePlays(set(t, "AS KS"), nil, played(t, "", "2S 3S 4S"))
		assert.Equal(t, []Play{run(AceLow, set(t, "AS"), deck.CardSet{})}, plays)
	})
}

func TestPickup(t *testing.T) {
	pile := cards(t, "7C JH AS")

	t.Run("using the bottom card takes the whole pile", func(t *testing.T) {
		p := newPlay(Multiple{}, set(t, "7C"), pile)
		assert.Equal(t, set(t, "7C JH AS"), p.CardsAcquired)
	})

	t.Run("using the top card takes only that card", func(t *testing.T) {
		p := newPlay(Multiple{}, set(t, "AS"), pile)
		assert.Equal(t, set(t, "AS"), p.CardsAcquired)
	})

	t.Run("the lowest card used decides", func(t *testing.T) {
		p := newPlay(Multiple{}, set(t, "AS JH"), pile)
		assert.Equal(t, set(t, "JH AS"), p.CardsAcquired)
	})

	t.Run("nothing from the pile takes nothing", func(t *testing.T) {
		p := newPlay(Multiple{}, set(t, "2D 3D"), pile)
		assert.True(t, p.CardsAcquired.Empty())
	})

	t.Run("acquired covers every pile card used", func(t *testing.T) {
		pile := cards(t, "4D 9S 5D KH 6D")
		plays := AllPossiblePlays(set(t, "7D"), pile, PlayedCards{})
		require.NotEmpty(t, plays)

		onPile := deck.NewCardSet(pile...)
		for _, p := range plays {
			for c := range p.CardsUsed.All() {
				if onPile.Contains(c) {
					assert.True(t, p.CardsAcquired.Contains(c), "%s used but not acquired in %s", c.Code(), p)
				}
			}
		}
	})
}

func TestAllPossiblePlays(t *testing.T) {
	hand := set(t, "2C 3C 2S 2D AD AC 6H")
	pile := cards(t, "7C JH AS 5S")
	table := played(t, "6C 6S 6D JC JS JD", "")

	t.Run("full turn", func(t *testing.T) {
		plays := AllPossiblePlays(hand, pile, table)

		assert.Equal(t, []Play{
			multiple(set(t, "AS AC AD"), set(t, "AS 5S")),
			multiple(set(t, "2S 2C 2D"), deck.CardSet{}),
			multiple(set(t, "6H"), deck.CardSet{}),
			multiple(set(t, "JH"), set(t, "JH AS 5S")),
			run(AceLow, set(t, "AC 2C 3C"), deck.CardSet{}),
		}, plays)
	})

	t.Run("inputs are left alone and the answer doesn't change", func(t *testing.T) {
		handBefore, tableBefore := hand, table
		pileBefore := append([]deck.Card(nil), pile...)

		first := AllPossiblePlays(hand, pile, table)
		second := AllPossiblePlays(hand, pile, table)

		assert.Equal(t, first, second)
		assert.Equal(t, handBefore, hand)
		assert.Equal(t, tableBefore, table)
		assert.Equal(t, pileBefore, pile)
	})

	t.Run("mutating a returned play doesn't leak", func(t *testing.T) {
		first := AllPossiblePlays(hand, pile, table)
		first[0].CardsUsed.Remove(deck.NewCard(deck.Ace, deck.Spades))

		second := AllPossiblePlays(hand, pile, table)
		assert.True(t, second[0].CardsUsed.Contains(deck.NewCard(deck.Ace, deck.Spades)))
	})

	t.Run("a whole deck in hand is still quick", func(t *testing.T) {
		utils.Within(t, time.Second, func() {
			plays := AllPossiblePlays(deck.NewCardSet(deck.New()...), nil, PlayedCards{})
			assert.Len(t, plays, 13*5+4*13*11)
		})
	})

	t.Run("empty table gives no plays", func(t *testing.T) {
		plays := AllPossiblePlays(deck.CardSet{}, nil, PlayedCards{})
		assert.NotNil(t, plays)
		assert.Empty(t, plays)
	})
}
