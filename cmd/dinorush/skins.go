package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-rush/internal/account"
	"github.com/vovakirdan/dino-rush/internal/skins"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List, buy, and select skins",
	Long: `Browse the skin catalog and manage an account's unlocks.

Examples:
  dinorush skins list
  dinorush skins buy alice gold
  dinorush skins select alice red`,
}

var skinsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the skin catalog",
	Args:  cobra.NoArgs,
	Run:   runSkinsList,
}

var skinsBuyCmd = &cobra.Command{
	Use:   "buy <username> <skin>",
	Short: "Buy and equip a skin",
	Args:  cobra.ExactArgs(2),
	Run:   runSkinsBuy,
}

var skinsSelectCmd = &cobra.Command{
	Use:   "select <username> <skin>",
	Short: "Equip a skin",
	Args:  cobra.ExactArgs(2),
	Run:   runSkinsSelect,
}

func init() {
	skinsCmd.AddCommand(skinsListCmd)
	skinsCmd.AddCommand(skinsBuyCmd)
	skinsCmd.AddCommand(skinsSelectCmd)
}

func runSkinsList(cmd *cobra.Command, args []string) {
	fmt.Println("Skin catalog")
	fmt.Println()
	for _, s := range skins.All() {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render("███")
		price := "free"
		if s.Price > 0 {
			price = fmt.Sprintf("%d coins", s.Price)
		}
		fmt.Printf("%s  %-10s %-10s %s\n", swatch, s.ID, s.Name, price)
	}
}

// withSession prompts for credentials, logs in, and runs fn under the session.
func withSession(username string, fn func(ledger *account.Ledger) error) {
	password, err := promptPassword("Password: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	ledger := account.NewLedger(store)
	if _, err := ledger.Login(username, password); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := fn(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSkinsBuy(cmd *cobra.Command, args []string) {
	username, skinID := args[0], args[1]
	withSession(username, func(ledger *account.Ledger) error {
		if err := ledger.PurchaseSkin(skinID); err != nil {
			return err
		}
		skin := skins.Resolve(skinID)
		fmt.Printf("Unlocked and equipped %s for %d coins.\n", skin.Name, skin.Price)
		return nil
	})
}

func runSkinsSelect(cmd *cobra.Command, args []string) {
	username, skinID := args[0], args[1]
	withSession(username, func(ledger *account.Ledger) error {
		if err := ledger.SelectSkin(skinID); err != nil {
			return err
		}
		fmt.Printf("Equipped %s.\n", skins.Resolve(skinID).Name)
		return nil
	})
}
