package commands

import (
	"fmt"

	"carhunt/lib/catalog"
	"carhunt/lib/quiz"
	"carhunt/lib/serviceutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(quizCmd)
}

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Play the automotive brand guessing game.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()

		records, err := catalog.BuildOrLoad(cfg.storePath(), cfg.datasetPath())
		if err != nil {
			serviceutil.Fatal("failed to build or load the code store", err)
		}

		fmt.Println("Welcome to automotive brand guessing game!")

		game := quiz.NewGame(catalog.BuildIndex(records))
		game.Rounds = cfg.Quiz.Rounds
		_, err = game.Run()
		if err != nil {
			serviceutil.Fatal("game aborted", err)
		}
	},
}
