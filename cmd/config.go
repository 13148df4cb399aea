package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/scoundrel/internal/config"
	"github.com/spf13/cobra"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the scoundrel configuration file",
	Long: `Commands for managing the configuration file.

Settings are read from the config file, then from SCOUNDREL_SHELL,
SCOUNDREL_SEED, SCOUNDREL_NO_COLOR and SCOUNDREL_LOG_FILE, then from flags.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default settings",
	Run: func(cmd *cobra.Command, args []string) {
		configPath := config.GetConfigFilePath()
		if _, err := os.Stat(configPath); err == nil {
			fmt.Println("Config file already exists at:", configPath)
			return
		}

		if _, err := config.LoadConfig(); err != nil {
			fmt.Printf("Error initializing config: %v\n", err)
			return
		}

		fmt.Println("Config file initialized at:", configPath)
		fmt.Println("A session log can be kept at:", config.GetDefaultLogPath())
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of the config file",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.GetConfigFilePath())
	},
}

// configSetShellCmd represents the config set-shell command
var configSetShellCmd = &cobra.Command{
	Use:       "set-shell [line|nav]",
	Short:     "Set the default shell",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Shells,
	Run: func(cmd *cobra.Command, args []string) {
		shell := args[0]

		if err := config.SetShell(shell); err != nil {
			fmt.Printf("Error setting default shell: %v\n", err)
			return
		}

		fmt.Printf("Default shell set to: %s\n", shell)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetShellCmd)
}
