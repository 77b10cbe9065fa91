package cmd

import (
	"fmt"

	"shoestock/internal/backup"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up the inventory file",
	Long:  "Back up every record of the inventory file, sale flags included, to a timestamped JSON or BSON file",
	Annotations: map[string]string{
		"output": "backup_dir",
		"format": "backup_format",
	},
	Args: cobra.NoArgs,
	RunE: runBackup,
}

func init() {
	backupCmd.Flags().StringP("output", "o", "./backups", "Output directory for backup files")
	backupCmd.Flags().StringP("format", "f", "json", "Backup format: bson or json")
}

func runBackup(cmd *cobra.Command, args []string) error {
	svc, err := loadSession()
	if err != nil {
		return err
	}

	log.Info().Str("file", cfg.File).Str("format", cfg.BackupFormat).Msg("starting backup")
	path, err := backup.NewService().Backup(svc.Store().Snapshot(), cfg.BackupDir, cfg.BackupFormat)
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Backed up %d records to %s\n", svc.Store().Len(), path)
	return nil
}
