package commands

import (
	"time"

	"carhunt/cmd/carhunt/utils"
	"carhunt/lib/listingstore"
	"carhunt/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var historyLimit *int

func init() {
	historyLimit = historyCmd.Flags().Int("limit", 20, "The maximum number of searches to show.")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history [--limit <n>]",
	Short: "Show recent searches from the listing archive.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()

		db, err := listingstore.OpenDB(cfg.archivePath())
		if err != nil {
			serviceutil.Fatal("failed to open the listing archive", err)
		}
		defer db.Close()

		searches, err := listingstore.NewStore(db).Recent(cmd.Context(), *historyLimit)
		if err != nil {
			serviceutil.Fatal("failed to query the listing archive", err)
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"time", "maker", "model", "zip", "radius", "condition", "cars"})
		for _, s := range searches {
			t.AppendRow(table.Row{
				s.Time.Format(time.DateTime),
				s.Maker, s.Model, s.Zip, s.Radius, s.Condition, s.Listings,
			})
		}
		t.Render()
	},
}
