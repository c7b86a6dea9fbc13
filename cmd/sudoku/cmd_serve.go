package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/sudoku-engines/internal/adapters/http"
	"svw.info/sudoku-engines/internal/config"
	"svw.info/sudoku-engines/internal/infrastructure/storage"
	"svw.info/sudoku-engines/internal/solver"
	"svw.info/sudoku-engines/internal/usecase"
	"svw.info/sudoku-engines/internal/validator"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(serveConfigPath)
		if err != nil {
			return err
		}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
		if err := os.MkdirAll(cfg.PersistPath, 0o755); err != nil {
			return err
		}

		uc := usecase.NewService(
			solver.NewBacktrackingSolver(),
			solver.NewPropagationSolver(),
			validator.New(),
			storage.NewFS(cfg.PersistPath),
		)
		mux := http.NewServeMux()
		httpadapter.New(uc, httpadapter.NewMetrics()).Register(mux)

		srv := &http.Server{
			Addr:              cfg.Addr,
			Handler:           httpadapter.RequestLogger(logger, mux),
			ReadHeaderTimeout: 5 * time.Second,
		}
		logger.Info("listening", "addr", cfg.Addr, "persist", cfg.PersistPath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "path to a YAML config file")
	rootCmd.AddCommand(serveCmd)
}
