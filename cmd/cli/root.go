package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/minaorangina/rummy/deck"
	"github.com/minaorangina/rummy/display"
	"github.com/minaorangina/rummy/game"
	"github.com/minaorangina/rummy/protocol"
	"github.com/spf13/cobra"
)

var errTooManyCards = errors.New("not enough cards in the deck")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rummy",
		Short:         "Lists every play a Rummy player can make this turn",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(newPlaysCmd(), newDealCmd(), newDemoCmd())
	return rootCmd
}

func newPlaysCmd() *cobra.Command {
	var hand, discard, multiples, runs string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "plays",
		Short: "List the plays for a table given as card codes",
		Example: `  rummy plays --hand "2C 3C 2S 2D AD AC 6H" --discard "7C JH AS 5S" \
    --multiples "6C 6S 6D JC JS JD"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wire := protocol.Table{}
			for _, field := range []struct {
				name  string
				value string
				into  *[]deck.Card
			}{
				{"hand", hand, &wire.Hand},
				{"discard", discard, &wire.DiscardPile},
				{"multiples", multiples, &wire.Played.Multiples},
				{"runs", runs, &wire.Played.Runs},
			} {
				cards, err := deck.ParseCards(field.value)
				if err != nil {
					return fmt.Errorf("--%s: %w", field.name, err)
				}
				*field.into = cards
			}

			table, err := wire.Decode()
			if err != nil {
				return err
			}
			return writePlays(cmd.OutOrStdout(), table, asJSON)
		},
	}

	cmd.Flags().StringVar(&hand, "hand", "", "cards in hand")
	cmd.Flags().StringVar(&discard, "discard", "", "discard pile, bottom card first")
	cmd.Flags().StringVar(&multiples, "multiples", "", "cards melded as multiples")
	cmd.Flags().StringVar(&runs, "runs", "", "cards melded as runs")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the plays as JSON")

	return cmd
}

func newDealCmd() *cobra.Command {
	var handSize, pileSize int
	var seed uint64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Deal a random hand and discard pile, then list the plays",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if handSize < 0 || pileSize < 0 || handSize+pileSize > deck.NumCards {
				return fmt.Errorf("%w: hand %d, pile %d", errTooManyCards, handSize, pileSize)
			}

			d := deck.New()
			if seed != 0 {
				d.ShuffleWith(rand.New(rand.NewPCG(seed, seed)))
			} else {
				d.Shuffle()
			}

			table := game.Table{
				Hand:        deck.NewCardSet(d.Deal(handSize)...),
				DiscardPile: d.Deal(pileSize),
			}
			return writePlays(cmd.OutOrStdout(), table, asJSON)
		},
	}

	cmd.Flags().IntVar(&handSize, "hand-size", 7, "cards dealt to the hand")
	cmd.Flags().IntVar(&pileSize, "pile-size", 4, "cards dealt to the discard pile")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "shuffle seed; 0 picks one at random")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the plays as JSON")

	return cmd
}

func newDemoCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "List the plays for a sample table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writePlays(cmd.OutOrStdout(), demoTable(), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the plays as JSON")
	return cmd
}

func demoTable() game.Table {
	return game.Table{
		Hand: deck.NewCardSet(
			deck.NewCard(deck.Two, deck.Clubs),
			deck.NewCard(deck.Three, deck.Clubs),
			deck.NewCard(deck.Two, deck.Spades),
			deck.NewCard(deck.Two, deck.Diamonds),
			deck.NewCard(deck.Ace, deck.Diamonds),
			deck.NewCard(deck.Ace, deck.Clubs),
			deck.NewCard(deck.Six, deck.Hearts),
		),
		DiscardPile: []deck.Card{
			deck.NewCard(deck.Seven, deck.Clubs),
			deck.NewCard(deck.Jack, deck.Hearts),
			deck.NewCard(deck.Ace, deck.Spades),
			deck.NewCard(deck.Five, deck.Spades),
		},
		Played: game.NewPlayedCards(
			[]deck.Card{
				deck.NewCard(deck.Six, deck.Clubs),
				deck.NewCard(deck.Six, deck.Spades),
				deck.NewCard(deck.Six, deck.Diamonds),
				deck.NewCard(deck.Jack, deck.Clubs),
				deck.NewCard(deck.Jack, deck.Spades),
				deck.NewCard(deck.Jack, deck.Diamonds),
			},
			nil,
		),
	}
}

func writePlays(w io.Writer, table game.Table, asJSON bool) error {
	plays, err := table.Plays()
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(protocol.NewPlaysResponse("", plays))
	}

	display.SendText(w, "%s\n", display.TableText(table))
	display.SendText(w, "%s", display.PlaysText(plays, table.DiscardPile))
	return nil
}
