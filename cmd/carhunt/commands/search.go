package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"carhunt/lib/catalog"
	"carhunt/lib/listing"
	"carhunt/lib/listingstore"
	"carhunt/lib/restyutil"
	"carhunt/lib/scrapers/carscom"
	"carhunt/lib/serviceutil"

	"github.com/spf13/cobra"
)

var searchDebugHttp *bool

func init() {
	searchDebugHttp = searchCmd.Flags().Bool("debug-http", false, "Dump every request/response pair to .dev/resty/carscom.")
	rootCmd.AddCommand(searchCmd)
}

func printSearchUsage() {
	fmt.Println("Usage: >> carhunt search <maker> <model> <zip> <radius> <used or new> <json or keyfile> <output_dir>")
	fmt.Println("e.g. carhunt search Honda Accord 53715 25 used ./data/cars_com_make_model.json ./data/")
}

var searchCmd = &cobra.Command{
	Use:                   "search <maker> <model> <zip> <radius> <used or new> <json or keyfile> <output_dir>",
	Short:                 "Search cars.com listings and write them to a CSV.",
	Args:                  cobra.ArbitraryArgs,
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		q, err := listing.ParseQuery(args)
		if err != nil {
			printSearchUsage()
			os.Exit(1)
		}

		err = os.MkdirAll(q.OutputDir, 0777)
		if err != nil {
			serviceutil.Fatal("failed to create output directory", err)
		}

		cfg := readConfig()
		records, err := catalog.BuildOrLoad(cfg.storePath(), q.DatasetPath)
		if err != nil {
			serviceutil.Fatal("failed to build or load the code store", err)
		}

		rec, err := catalog.Resolve(records, q.Maker, q.Model)
		if err != nil {
			serviceutil.Fatal("failed to resolve maker/model", err)
		}
		slog.Info(
			"resolved search codes",
			"maker", rec.Maker,
			"model", rec.Model,
			"maker_code", rec.MakerCode,
			"model_code", rec.ModelCode,
		)

		client := carscom.NewClient()
		if *searchDebugHttp {
			client.SetInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/carscom"))
		}

		listings, err := client.Search(cmd.Context(), rec, q)
		if err != nil {
			serviceutil.Fatal("failed to search cars.com", err)
		}
		slog.Info("scraped listings", "cars", len(listings))

		out := filepath.Join(q.OutputDir, listing.Filename(q))
		err = listing.WriteCSV(out, listings)
		if err != nil {
			serviceutil.Fatal("failed to write listings", err)
		}

		db, err := listingstore.OpenDB(cfg.archivePath())
		if err != nil {
			serviceutil.Fatal("failed to open the listing archive", err)
		}
		defer db.Close()
		err = listingstore.NewStore(db).Push(cmd.Context(), q, time.Now(), listings)
		if err != nil {
			serviceutil.Fatal("failed to archive listings", err)
		}
	},
}
