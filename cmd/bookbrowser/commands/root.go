package commands

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/khoad/asynclist/internal/config"
	"github.com/khoad/asynclist/internal/database"
	"github.com/khoad/asynclist/internal/database/repository"
	"github.com/khoad/asynclist/internal/tui"
)

var (
	cfg   config.Config
	db    *sql.DB
	books *repository.BookRepo

	debug bool
)

func Execute() error {
	root := &cobra.Command{
		Use:   "bookbrowser",
		Short: "Browse a book catalog in the terminal",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
				return err
			}
			if err := database.RunMigrations(cfg.Database.Path); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			db, err = database.Open(cfg.Database.Path)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			books = repository.NewBookRepo(db)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if db != nil {
				_ = db.Close()
			}
		},
		RunE: runBrowse,
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "write ui debug output to bookbrowser.log")

	root.AddCommand(seedCmd())
	return root.Execute()
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if debug {
		f, err := tea.LogToFile("bookbrowser.log", "debug")
		if err != nil {
			return err
		}
		defer f.Close()
	}

	p := tea.NewProgram(tui.New(cfg, books), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
