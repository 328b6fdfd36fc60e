package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-rush/internal/account"
	"github.com/vovakirdan/dino-rush/internal/bridge"
)

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the device best score",
	Long: `Show the best score recorded on this device, regardless of account.

Examples:
  dinorush best`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func runBest(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	br := bridge.New(account.NewLedger(store), store, nil)
	if br.GlobalBest() == 0 {
		fmt.Println("No scores recorded yet. Play 'dinorush play' to set one!")
		return
	}
	fmt.Printf("Device best: %d\n", br.GlobalBest())
}
