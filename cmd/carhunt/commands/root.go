package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"carhunt/lib/configutil"
	"carhunt/lib/quiz"

	"github.com/spf13/cobra"
)

const (
	storeFilename   = "model_codes_carscom.csv"
	datasetFilename = "cars_com_make_model.json"
	archiveFilename = "listings.db"
)

var rootCmd = &cobra.Command{
	Use:   "carhunt",
	Short: "carhunt is a CLI for searching car listings and playing the brand guessing game.",
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type Config struct {
	DataDir string `json:"data_dir"`
	Quiz    struct {
		Rounds int `json:"rounds"`
	} `json:"quiz"`
}

// readConfig loads carhunt.json5 from the working directory. A missing
// config file is fine, everything has a default.
func readConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("carhunt.json5")
	if err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
	}
	if cfg.Quiz.Rounds == 0 {
		cfg.Quiz.Rounds = quiz.DefaultRounds
	}
	err = os.MkdirAll(cfg.DataDir, 0777)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return cfg
}

func (c Config) storePath() string {
	return filepath.Join(c.DataDir, storeFilename)
}

func (c Config) datasetPath() string {
	return filepath.Join(c.DataDir, datasetFilename)
}

func (c Config) archivePath() string {
	return filepath.Join(c.DataDir, archiveFilename)
}
