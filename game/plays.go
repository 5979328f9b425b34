package game

import "github.com/minaorangina/rummy/deck"

const (
	minRunLength = 3
	// aceHighIndex is where the Ace sits when it is played above the King
	aceHighIndex = deck.NumRanks
)

// AllPossiblePlays returns every legal play for a player holding hand,
// given the discard pile (bottom first, top last) and the melds on the table.
//
// Multiples come first in rank order, then single and double extensions of
// runs already on the table, then new runs. The same cards may be offered
// more than once by different rules; nothing is deduplicated.
//
// None of the arguments are modified. A card in both hand and discardPile,
// or a rank melded as a multiple with one or two suits, panics.
func AllPossiblePlays(hand deck.CardSet, discardPile []deck.Card, played PlayedCards) []Play {
	played.checkMultiples()

	playable := playableCards(hand, discardPile)

	plays := []Play{}
	plays = append(plays, multiplePlays(playable, discardPile, played)...)
	plays = append(plays, runExtensionPlays(playable, discardPile, played)...)
	plays = append(plays, newRunPlays(playable, discardPile)...)

	return plays
}

// playableCards is every card the player could lay down this turn
func playableCards(hand deck.CardSet, discardPile []deck.Card) deck.CardSet {
	playable := hand
	for _, c := range discardPile {
		playable.Add(c)
	}
	return playable
}

// suitsWithRank returns the suits, in canonical order, for which rank is in s
func suitsWithRank(s deck.CardSet, rank deck.Rank) []deck.Suit {
	found := []deck.Suit{}
	for _, suit := range deck.Suits() {
		if s.Contains(deck.NewCard(rank, suit)) {
			found = append(found, suit)
		}
	}
	return found
}

func cardsOfRank(rank deck.Rank, suits ...deck.Suit) deck.CardSet {
	var s deck.CardSet
	for _, suit := range suits {
		s.Add(deck.NewCard(rank, suit))
	}
	return s
}

func multiplePlays(playable deck.CardSet, discardPile []deck.Card, played PlayedCards) []Play {
	plays := []Play{}

	for _, rank := range deck.Ranks() {
		suits := suitsWithRank(playable, rank)

		switch len(suits) {
		case 0, 2:
			// two of a kind can't be melded

		case 1:
			// a lone card can only join a multiple already on the table
			if played.meldedAsMultiple(rank) {
				plays = append(plays, newPlay(Multiple{}, cardsOfRank(rank, suits...), discardPile))
			}

		case 3:
			plays = append(plays, newPlay(Multiple{}, cardsOfRank(rank, suits...), discardPile))

		case 4:
			// any three, holding one back, or all four
			for _, held := range []int{3, 2, 1, 0} {
				three := make([]deck.Suit, 0, 3)
				for i, suit := range suits {
					if i != held {
						three = append(three, suit)
					}
				}
				plays = append(plays, newPlay(Multiple{}, cardsOfRank(rank, three...), discardPile))
			}
			plays = append(plays, newPlay(Multiple{}, cardsOfRank(rank, suits...), discardPile))

		default:
			invalidState("%d suits of rank %s are playable", len(suits), rank)
		}
	}

	return plays
}

// runExtensionPlays finds cards that lengthen a run already on the table,
// one card at a time or two. Two-card extensions never start from an Ace:
// the second card would have to wrap round past the Ace's end of the run.
func runExtensionPlays(playable deck.CardSet, discardPile []deck.Card, played PlayedCards) []Play {
	plays := []Play{}

	for card := range playable.All() {
		next, prev := card.Next(), card.Prev()

		switch {
		case played.Runs.Contains(next):
			// card goes below the run
			plays = append(plays, newPlay(StraightFlush{Ace: aceIf(card, AceLow)}, deck.NewCardSet(card), discardPile))

			if card.Rank != deck.Ace && playable.Contains(prev) {
				plays = append(plays, newPlay(StraightFlush{Ace: aceIf(prev, AceLow)}, deck.NewCardSet(card, prev), discardPile))
			}

		case played.Runs.Contains(prev):
			// card goes above the run
			plays = append(plays, newPlay(StraightFlush{Ace: aceIf(card, AceHigh)}, deck.NewCardSet(card), discardPile))

			if card.Rank != deck.Ace && playable.Contains(next) {
				plays = append(plays, newPlay(StraightFlush{Ace: aceIf(next, AceHigh)}, deck.NewCardSet(card, next), discardPile))
			}
		}
	}

	return plays
}

func aceIf(c deck.Card, status AceStatus) AceStatus {
	if c.Rank == deck.Ace {
		return status
	}
	return NoAce
}

// newRunPlays finds runs made only from playable cards.
//
// Ranks are laid out on a line of 14 slots: 0 is the Ace played low,
// 1 to 12 are Two to King, and 13 is the Ace played high. Every slot
// resolves back onto a real rank modulo 13. Every run of three or more
// is offered, including the shorter runs inside a longer one, since the
// player may keep cards back.
func newRunPlays(playable deck.CardSet, discardPile []deck.Card) []Play {
	plays := []Play{}

	for _, suit := range deck.Suits() {
		at := func(index int) deck.Card {
			return deck.NewCard(deck.Rank(index%deck.NumRanks), suit)
		}

		for start := 0; start < deck.NumRanks; start++ {
			var run deck.CardSet
			var aceLow, aceHigh bool

			for index := start; index < start+deck.NumRanks; index++ {
				c := at(index)
				if !playable.Contains(c) {
					break
				}

				run.Add(c)
				aceLow = aceLow || index == 0
				aceHigh = aceHigh || index == aceHighIndex

				if index-start+1 >= minRunLength {
					plays = append(plays, newPlay(StraightFlush{Ace: runAceStatus(aceLow, aceHigh)}, run, discardPile))
				}
			}
		}
	}

	return plays
}

// runAceStatus needs no tie-break: a run is at most 13 cards long,
// so it can't reach from slot 0 to slot 13
func runAceStatus(aceLow, aceHigh bool) AceStatus {
	switch {
	case aceLow:
		return AceLow
	case aceHigh:
		return AceHigh
	default:
		return NoAce
	}
}
