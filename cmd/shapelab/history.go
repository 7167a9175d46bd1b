package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"shapelab/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [scene]",
	Short: "Show recent collision-check runs",
	Long: `Display the most recent collision-check runs, optionally filtered
by scene name.

Examples:
  shapelab history
  shapelab history sandbox
  shapelab history --limit 50`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	var runs []storage.RunEntry
	if len(args) == 1 {
		runs, err = store.RunsForScene(args[0], flagHistoryLimit)
	} else {
		runs, err = store.RecentRuns(flagHistoryLimit)
	}
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'shapelab check' to record one.")
		return nil
	}

	columns := []table.Column{
		{Title: "When", Width: 16},
		{Title: "Scene", Width: 18},
		{Title: "Pairs", Width: 6},
		{Title: "Hits", Width: 5},
		{Title: "Elapsed", Width: 10},
	}

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Scene,
			fmt.Sprintf("%d", r.Pairs),
			fmt.Sprintf("%d", r.Hits),
			(time.Duration(r.DurationUS) * time.Microsecond).String(),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("6"))
	styles.Selected = lipgloss.NewStyle() // static view, no selection highlight
	t.SetStyles(styles)

	fmt.Println(t.View())
	return nil
}
