package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-rush/internal/account"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage accounts",
	Long: `Register accounts and inspect account progress.

Examples:
  dinorush account register alice
  dinorush account stats alice`,
}

var accountRegisterCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Create a new account",
	Args:  cobra.ExactArgs(1),
	Run:   runAccountRegister,
}

var accountStatsCmd = &cobra.Command{
	Use:   "stats <username>",
	Short: "Show coins, best score, and recent games",
	Args:  cobra.ExactArgs(1),
	Run:   runAccountStats,
}

func init() {
	accountCmd.AddCommand(accountRegisterCmd)
	accountCmd.AddCommand(accountStatsCmd)
}

// promptPassword reads a password without echo.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("cannot read password: %w", err)
	}
	return string(raw), nil
}

func runAccountRegister(cmd *cobra.Command, args []string) {
	username := args[0]

	password, err := promptPassword("Password: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	ledger := account.NewLedger(store)
	if _, err := ledger.Register(username, password); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Account %q created. Sign in from the game with 'a'.\n", username)
}

var (
	statsHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	statsFaintStyle  = lipgloss.NewStyle().Faint(true)
)

func runAccountStats(cmd *cobra.Command, args []string) {
	username := args[0]

	password, err := promptPassword("Password: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	ledger := account.NewLedger(store)
	acc, err := ledger.Login(username, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(statsHeaderStyle.Render(fmt.Sprintf("Account %s", acc.Username)))
	fmt.Printf("Coins:       %d\n", acc.Coins)
	fmt.Printf("Best score:  %d\n", acc.Best)
	fmt.Printf("Time played: %ds\n", acc.TotalTimePlayed)
	fmt.Printf("Registered:  %s\n", acc.RegistrationDate)
	fmt.Printf("Skins:       %v (selected: %s)\n", acc.Purchased, acc.Selected)

	if len(acc.RecentGames) == 0 {
		fmt.Println(statsFaintStyle.Render("No games recorded yet."))
		return
	}

	fmt.Println()
	fmt.Println(statsHeaderStyle.Render("Recent games"))
	for _, g := range acc.RecentGames {
		fmt.Printf("%-22s score %-6d %ds\n", g.Date, g.Score, g.Duration)
	}
}
