package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"caniq/cmd/caniq/ui"
	"caniq/internal/store"
)

var historyLimit int

// historyCmd lists recent searches from the local store.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	Long: `Lists the most recent searches recorded by caniq, newest first.

Recording can be disabled with history.enabled: false in the config file
or CANIQ_HISTORY=false.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of entries to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if cfg.History.Path == "" {
		fmt.Println("History storage is not configured.")
		return nil
	}

	hs, err := store.NewHistoryStore(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("opening history store: %w", err)
	}
	defer hs.Close()

	entries, err := hs.Recent(historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No searches recorded yet.")
		return nil
	}

	styles := ui.NewStyles(ui.ResolveTheme(cfg.UI.Theme))
	for _, e := range entries {
		fmt.Printf("%s  %s",
			styles.Muted.Render(e.CreatedAt.Local().Format("2006-01-02 15:04")),
			styles.Bold.Render(e.Term))
		if len(e.FeatureIDs) > 0 {
			fmt.Printf("  %s", styles.Muted.Render("→ "+strings.Join(e.FeatureIDs, ", ")))
		}
		fmt.Println()
	}
	return nil
}
