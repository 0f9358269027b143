package commands

import (
	"carhunt/cmd/carhunt/utils"
	"carhunt/lib/catalog"
	"carhunt/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(codesCmd)
}

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "Build the maker/model code store if it is missing and display it.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()

		records, err := catalog.BuildOrLoad(cfg.storePath(), cfg.datasetPath())
		if err != nil {
			serviceutil.Fatal("failed to build or load the code store", err)
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"maker", "model", "maker code", "model code"})
		for _, r := range records {
			t.AppendRow(table.Row{r.Maker, r.Model, r.MakerCode, r.ModelCode})
		}
		t.Render()
	},
}
