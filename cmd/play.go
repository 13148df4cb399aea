package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/arcanaland/scoundrel/internal/config"
	"github.com/arcanaland/scoundrel/internal/game"
	"github.com/arcanaland/scoundrel/internal/shell/line"
	"github.com/arcanaland/scoundrel/internal/shell/nav"
	"github.com/arcanaland/scoundrel/internal/terminal"

	colorize "github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Play deals a new dungeon and starts a game in the chosen shell.

The line shell reads typed commands such as "w 2". The nav shell puts the
terminal in raw mode and is driven with the arrow keys.

Examples:
  scoundrel play
  scoundrel play --shell nav
  scoundrel play --seed 1234 --log ~/.local/state/scoundrel/scoundrel.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("shell", "s", "", "Input shell: line or nav (default from config)")
	cmd.Flags().Uint64("seed", 0, "Shuffle seed for a reproducible game (0 picks one)")
	cmd.Flags().Bool("no-color", false, "Disable colour output")
	cmd.Flags().String("log", "", "Append a session log to this file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := applyPlayFlags(cmd, cfg); err != nil {
		return err
	}

	if cfg.NoColor {
		colorize.NoColor = true
	}

	logger, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	sess := game.NewSession(seed, game.WithLogger(logger))
	out := colorable.NewColorableStdout()

	var status game.Status
	switch cfg.Shell {
	case config.ShellNav:
		if !terminal.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("the nav shell needs an interactive terminal, try --shell line")
		}
		status, err = nav.Play(sess, os.Stdin, out)
	default:
		sh := line.New(os.Stdin, out)
		sh.Clear = terminal.IsTerminal(os.Stdout.Fd())
		sh.Width = terminal.Width(os.Stdout.Fd())
		status, err = sess.Run(sh)
	}

	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	if status.Over() {
		fmt.Fprintf(out, "seed %d\n", seed)
	}
	return nil
}

// applyPlayFlags lets explicit flags override the config file and environment
func applyPlayFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("shell") {
		cfg.Shell, _ = flags.GetString("shell")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("no-color") {
		cfg.NoColor, _ = flags.GetBool("no-color")
	}
	if flags.Changed("log") {
		cfg.LogFile, _ = flags.GetString("log")
	}

	switch cfg.Shell {
	case config.ShellLine, config.ShellNav:
		return nil
	case "":
		cfg.Shell = config.ShellLine
		return nil
	default:
		return fmt.Errorf("unknown shell %q (expected one of %v)", cfg.Shell, config.Shells)
	}
}

// openLog returns a logger appending to path, or a discarding logger when
// path is empty.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("error creating log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening log file: %w", err)
	}
	return log.New(file, "scoundrel ", log.LstdFlags), func() { file.Close() }, nil
}
