package cmd

import (
	"fmt"

	"shoestock/internal/backup"
	"shoestock/internal/logging"
	"shoestock/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the full-screen inventory interface",
	Long: `Start the Terminal User Interface over the inventory file.
It offers the same actions as the console and can also write backups.

Logs are discarded while the interface runs unless --log-file is set.`,
	Annotations: map[string]string{
		"output": "backup_dir",
		"format": "backup_format",
	},
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringP("output", "o", "./backups", "Directory for backups written from the interface")
	tuiCmd.Flags().StringP("format", "f", "json", "Default backup format: json or bson")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if cfg.LogFile == "" {
		logging.Discard()
	}

	model := tui.NewModel(newSession(), tui.Options{
		File:         cfg.File,
		BackupDir:    cfg.BackupDir,
		BackupFormat: cfg.BackupFormat,
		Backups:      backup.NewService(),
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
