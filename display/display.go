package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/minaorangina/rummy/deck"
	"github.com/minaorangina/rummy/game"
)

const (
	noPlaysText    = "There are no plays you can make."
	onePlayText    = "There is 1 play you can make:\n"
	manyPlaysText  = "There are %d plays you can make:\n"
	pickupText     = " (picks up %s)"
	emptyCardsText = "none"
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// CardsText lists cards by their symbols, e.g. "A♠ 10♦"
func CardsText(cards []deck.Card) string {
	if len(cards) == 0 {
		return emptyCardsText
	}

	symbols := make([]string, 0, len(cards))
	for _, c := range cards {
		symbols = append(symbols, c.Symbol())
	}
	return strings.Join(symbols, " ")
}

func kindText(kind game.PlayKind) string {
	sf, ok := kind.(game.StraightFlush)
	if !ok {
		return "Multiple"
	}

	switch sf.Ace {
	case game.AceHigh:
		return "Straight flush, Ace high"
	case game.AceLow:
		return "Straight flush, Ace low"
	default:
		return "Straight flush"
	}
}

// runOrder lays a run out low to high, so a run through the Ace
// reads Q K A rather than A Q K
func runOrder(run deck.CardSet) []deck.Card {
	cards := run.Cards()
	for i, c := range cards {
		if !run.Contains(c.Prev()) {
			return append(append([]deck.Card{}, cards[i:]...), cards[:i]...)
		}
	}
	return cards
}

// pileOrder lists the acquired cards as they sit in the discard pile, bottom to top
func pileOrder(acquired deck.CardSet, discardPile []deck.Card) []deck.Card {
	cards := make([]deck.Card, 0, acquired.Len())
	for _, c := range discardPile {
		if acquired.Contains(c) {
			cards = append(cards, c)
		}
	}
	return cards
}

// PlayText describes one play on a single line.
// Picked up cards are shown in discardPile order.
func PlayText(p game.Play, discardPile []deck.Card) string {
	used := p.CardsUsed.Cards()
	if _, ok := p.Kind.(game.StraightFlush); ok {
		used = runOrder(p.CardsUsed)
	}

	text := kindText(p.Kind) + ": " + CardsText(used)
	if !p.CardsAcquired.Empty() {
		text += fmt.Sprintf(pickupText, CardsText(pileOrder(p.CardsAcquired, discardPile)))
	}
	return text
}

// PlaysText is a numbered list of plays made against discardPile
func PlaysText(plays []game.Play, discardPile []deck.Card) string {
	switch len(plays) {
	case 0:
		return noPlaysText + "\n"
	case 1:
		return onePlayText + "1. " + PlayText(plays[0], discardPile) + "\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, manyPlaysText, len(plays))
	for i, p := range plays {
		fmt.Fprintf(&b, "%d. %s\n", i+1, PlayText(p, discardPile))
	}
	return b.String()
}

// TableText shows what the player can see before choosing a play
func TableText(t game.Table) string {
	return fmt.Sprintf(
		"Your hand: %s\nDiscard pile, bottom to top: %s\nMelded multiples: %s\nMelded runs: %s\n",
		CardsText(t.Hand.Cards()),
		CardsText(t.DiscardPile),
		CardsText(t.Played.Multiples.Cards()),
		CardsText(t.Played.Runs.Cards()),
	)
}
