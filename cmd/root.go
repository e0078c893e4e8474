package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "paper-notes-be",
	Short: "Ingest academic papers and answer questions about them",
	Long: `paper-notes-be downloads an academic paper, extracts its text through
the Unstructured API, takes structured notes with a language model and
stores the paper, notes and fragment embeddings. Stored papers can then
be queried with retrieval-augmented question answering.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config/config.yaml", "config file")
}
