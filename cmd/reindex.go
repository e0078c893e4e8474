package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/paper-notes-be/config"
	"github.com/tieubaoca/paper-notes-be/database"
)

// reindexCmd drops and recreates the fragment class. All stored
// embeddings are lost; papers must be ingested again afterwards.
var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Drop and recreate the vector index",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		vectorStore, err := database.NewWeaviateStore(cfg.WeaviateStoreConfig)
		if err != nil {
			log.Fatalf("Failed to connect to Weaviate: %v", err)
		}

		if err := vectorStore.Reset(context.Background()); err != nil {
			log.Fatalf("Failed to reset vector index: %v", err)
		}
		log.Println("Vector index recreated")
	},
}

func init() {
	rootCmd.AddCommand(reindexCmd)
}
