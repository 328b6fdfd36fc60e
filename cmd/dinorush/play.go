package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-rush/internal/account"
	"github.com/vovakirdan/dino-rush/internal/bridge"
	"github.com/vovakirdan/dino-rush/internal/config"
	"github.com/vovakirdan/dino-rush/internal/game"
	"github.com/vovakirdan/dino-rush/internal/platform/tui"
)

// minPlayWidth is the narrowest terminal the renderer stays readable at.
const minPlayWidth = 40

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the runner",
	Long: `Start the runner in the current terminal.

Controls:
  Space/Up   - Jump (restarts after game over)
  Down/S     - Duck (hold)
  L          - Cycle location
  A          - Account form (sign in / register)
  Esc        - Sign out
  Q/Ctrl+C   - Quit

Examples:
  dinorush play
  dinorush play --seed 42 --fps 30
  dinorush play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && w < minPlayWidth {
		fmt.Fprintf(os.Stderr, "Terminal too narrow (%d cols); need at least %d.\n", w, minPlayWidth)
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ledger := account.NewLedger(store)
	br := bridge.New(ledger, store, nil)
	engine := game.New(cfg, seed, br)
	model := tui.NewModel(engine, ledger, br, cfg, flagFPS)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
