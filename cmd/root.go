package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Vkdel001/underwriter/internal/config"
	"github.com/Vkdel001/underwriter/internal/store"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "underwriter",
	Short: "Life-insurance underwriting assessment tool",
	Long:  "Transcribes proposal forms and ECM portfolio reports, scores customer risk (CRA) across five weighted dimensions, and drafts underwriter summaries.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// initStore opens the assessment database configured in store.path.
func initStore() (*store.SQLiteStore, error) {
	return store.NewSQLite(cfg.Store.Path)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
