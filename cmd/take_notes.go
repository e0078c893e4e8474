package cmd

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/paper-notes-be/config"
	"github.com/tieubaoca/paper-notes-be/utils"
)

// takeNotesCmd ingests a single paper from the command line, running the
// same pipeline as the /take_notes endpoint.
var takeNotesCmd = &cobra.Command{
	Use:   "take-notes",
	Short: "Ingest a paper and print the generated notes",
	Run: func(cmd *cobra.Command, args []string) {
		paperURL, _ := cmd.Flags().GetString("url")
		name, _ := cmd.Flags().GetString("name")
		pages, _ := cmd.Flags().GetString("pages-to-delete")

		if paperURL == "" || name == "" {
			log.Fatal("--url and --name are required")
		}

		pagesToDelete, err := utils.ParsePageNumbers(pages)
		if err != nil {
			log.Fatalf("Invalid --pages-to-delete: %v", err)
		}

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx := context.Background()
		app, err := buildApp(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize services: %v", err)
		}

		notes, err := app.notesService.TakeNotes(ctx, paperURL, name, pagesToDelete)
		if err != nil {
			log.Fatalf("Failed to take notes: %v", err)
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(notes); err != nil {
			log.Fatalf("Failed to print notes: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(takeNotesCmd)
	takeNotesCmd.Flags().StringP("url", "u", "", "URL of the paper PDF")
	takeNotesCmd.Flags().StringP("name", "n", "", "Name of the paper")
	takeNotesCmd.Flags().StringP("pages-to-delete", "p", "", "Comma-separated 1-based page numbers to remove before extraction")
}
