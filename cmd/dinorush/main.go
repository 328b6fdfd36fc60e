// dinorush is an endless-runner game for the terminal: jump and duck past
// obstacles, earn coins, and unlock skins on a local account.
//
// Usage:
//
//	dinorush play               - Play the runner
//	dinorush serve              - Start SSH server for remote play
//	dinorush account <cmd>      - Manage accounts (register, stats)
//	dinorush skins <cmd>        - List, buy, and select skins
//	dinorush best               - Show the device best score
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible runs
//	--db <path>      - Set database path (default: ~/.dinorush/dinorush.db)
//	--config <path>  - Path to custom tuning YAML
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-rush/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dinorush",
	Short: "Dino Rush - an endless runner in your terminal",
	Long: `Dino Rush is a terminal endless-runner: jump over cacti and rocks,
duck under birds, and survive as the world scrolls ever faster.

Score accrues over time and for every obstacle cleared. Sign in to earn
coins, unlock skins, and keep a personal best and game history.

Examples:
  dinorush play
  dinorush play --seed 42
  dinorush serve --ssh :23235
  dinorush account register alice
  dinorush skins list`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dinorush/dinorush.db", "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(skinsCmd)
	rootCmd.AddCommand(bestCmd)
}

// openStore opens the configured database, degrading to an in-memory store
// with a warning when it cannot be opened.
func openStore() storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open database, progress will not persist", "error", err)
		return storage.NewMemStore()
	}
	return store
}
