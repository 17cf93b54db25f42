// Package main provides the zoomchart CLI: the interactive terminal demo and
// a static chart export.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"zoomchart/internal/config"
	"zoomchart/internal/dataset"
	"zoomchart/internal/obs"
	"zoomchart/internal/tui"
)

func main() {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "zoomchart",
		Short: "Interactive zoomable line chart in the terminal",
		Long: `zoomchart shows one of the bundled datasets as a line chart with
mouse zoom, pan and a crosshair readout.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cfg)
		},
	}
	rootCmd.Flags().IntVar(&cfg.Dataset, "dataset", cfg.Dataset, "Dataset key to preselect (0 for none)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write JSON logs to this file")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newSVGCmd(&cfg))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "zoomchart:", err)
		os.Exit(1)
	}
}

func runTUI(cfg config.Config) error {
	closeLog, err := obs.InitLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()
	obs.Logger.Info("starting", "width", cfg.Width, "height", cfg.Height, "dataset", cfg.Dataset)

	m := tui.New(cfg, dataset.Default())
	defer m.Close()
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
