package cmd

import (
	"fmt"
	"strings"

	"github.com/arcanaland/scoundrel/internal/card"
	"github.com/arcanaland/scoundrel/internal/deck"
	"github.com/arcanaland/scoundrel/internal/game"
	"github.com/arcanaland/scoundrel/internal/render"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the cards the dungeon is built from",
	Long:  `Commands for inspecting the deck a game is dealt from.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the cards in play, by suit",
	Run: func(cmd *cobra.Command, args []string) {
		all, _ := cmd.Flags().GetBool("all")

		cards := deck.New()
		inPlay := 0
		for _, suit := range card.Suits {
			var labels []string
			for _, c := range cards {
				if c.Suit != suit {
					continue
				}
				excluded := deck.HighDiamond(c)
				if excluded && !all {
					continue
				}
				label := render.Card(c)
				if excluded {
					label = "(" + c.String() + ")"
				} else {
					inPlay++
				}
				labels = append(labels, label)
			}
			fmt.Printf("%-9s %s\n", suit, strings.Join(labels, " "))
		}

		fmt.Printf("\n%d cards in play", inPlay)
		if all {
			fmt.Printf(", %d set aside", deck.Size-inPlay)
		}
		fmt.Println()
	},
}

// deckDealCmd represents the deck deal command
var deckDealCmd = &cobra.Command{
	Use:   "deal [seed]",
	Short: "Show the draw order a seed deals, first room first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var seed uint64
		if _, err := fmt.Sscanf(args[0], "%d", &seed); err != nil {
			return fmt.Errorf("invalid seed %q: %v", args[0], err)
		}

		sess := game.NewSession(seed)
		room := sess.Board.Table()
		draw := sess.Board.DrawPile()

		labels := make([]string, 0, len(room))
		for _, c := range room {
			labels = append(labels, render.Card(c))
		}
		fmt.Printf("room  %s\n", strings.Join(labels, " "))

		// the top of the draw pile is its last card
		labels = labels[:0]
		for i := len(draw) - 1; i >= 0; i-- {
			labels = append(labels, render.Card(draw[i]))
		}
		fmt.Printf("draw  %s\n", strings.Join(labels, " "))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckDealCmd)

	deckListCmd.Flags().BoolP("all", "a", false, "Also show the cards set aside before play")
}
