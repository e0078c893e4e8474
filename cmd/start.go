package cmd

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/tieubaoca/paper-notes-be/config"
	"github.com/tieubaoca/paper-notes-be/handler"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the paper notes server",
	Long:  `Starts the HTTP server exposing the take_notes and qa endpoints.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		app, err := buildApp(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Failed to initialize services: %v", err)
		}

		corsHandler := handler.NewCorsHandler()
		healthHandler := handler.NewHealthHandler()
		notesHandler := handler.NewNotesHandler(app.notesService)
		qaHandler := handler.NewQAHandler(app.qaService)

		router := chi.NewRouter()
		router.Use(middleware.Logger)
		router.Use(middleware.Recoverer)
		router.Use(corsHandler.Middleware)

		router.Get("/", healthHandler.HandleHealth())
		router.Post("/take_notes", notesHandler.HandleTakeNotes())
		router.Post("/qa", qaHandler.HandleQA())

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
}
