package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show round history",
	Long: `Display the most recent rounds and your overall win/loss tally.

On a terminal the history opens in a scrollable table; use --plain
(or pipe the output) for a text listing.

Examples:
  pong scores
  pong scores --limit 50
  pong scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text listing instead of the interactive table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rounds database: %v\n", err)
		os.Exit(1)
	}

	rounds, err := store.RecentRounds(flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}
	tally, err := store.Tally()
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving tally: %v\n", err)
		os.Exit(1)
	}

	showRounds(rounds, tally)
}

// showRounds opens the interactive table on a terminal, or prints a listing.
func showRounds(rounds []storage.RoundEntry, tally storage.Tally) {
	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		w, h, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			w, h = 80, 24
		}
		if err := tui.RunScoreboard(rounds, tally, w, h); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	fmt.Println("Pong - Round History")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pong' and be the first to 10!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-7s  %-8s  %s\n", "#", "Result", "Score", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-8s  %s\n", "-", "------", "-----", "----", "----")

	for i, r := range rounds {
		result := "LOSS"
		if r.HumanWon {
			result = "WIN"
		}
		fmt.Printf("  %-4d  %-6s  %-7s  %-8s  %s\n",
			i+1,
			result,
			fmt.Sprintf("%d-%d", r.LeftScore, r.RightScore),
			r.Duration.Round(time.Second),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	fmt.Printf("Won %d, lost %d\n", tally.Wins, tally.Losses)
}
