package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "scoundrel",
	Short: "A dungeon-crawl solitaire played with a standard deck",
	Long: `Scoundrel is a single-player card game for the terminal.

The deck, minus the jack, queen, king and ace of diamonds, is the dungeon. Each
room holds four cards: fight monsters bare-handed or with an equipped weapon,
heal with the rest, or run and face the room again later. Clear the dungeon
before your hit points run out.

Running scoundrel without a subcommand starts a game.`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	addPlayFlags(RootCmd)
	RootCmd.AddCommand(playCmd)
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
