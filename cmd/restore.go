package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"shoestock/internal/backup"
	"shoestock/internal/models"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	inputFile        string
	restoreFormat    string
	skipConfirmation bool
)

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the inventory file from a backup",
	Long:  "Replace the inventory file with the records of a BSON or JSON backup file",
	Args:  cobra.NoArgs,
	RunE:  runRestore,
}

func init() {
	restoreCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input backup file to restore (required)")
	restoreCmd.Flags().StringVarP(&restoreFormat, "format", "f", "", "Backup format: bson or json (auto-detected if not specified)")
	restoreCmd.Flags().BoolVar(&skipConfirmation, "yes", false, "Skip confirmation prompts")

	restoreCmd.MarkFlagRequired("input")
}

func runRestore(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", inputFile)
	}

	shoes, err := backup.NewService().Restore(inputFile, restoreFormat)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !skipConfirmation {
		fmt.Fprintln(out, "About to restore:")
		fmt.Fprintf(out, "  Source file: %s\n", inputFile)
		fmt.Fprintf(out, "  Records: %d\n", len(shoes))
		fmt.Fprintf(out, "  WARNING: '%s' will be overwritten!\n", cfg.File)

		if !confirmAction(cmd.InOrStdin(), out, "Do you want to continue?") {
			fmt.Fprintln(out, "Restore cancelled")
			return nil
		}
	}

	if err := replaceInventory(shoes); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	log.Info().Str("source", inputFile).Int("records", len(shoes)).Msg("inventory restored")
	fmt.Fprintf(out, "Restored %d records to %s\n", len(shoes), cfg.File)
	return nil
}

// replaceInventory overwrites the backing file with shoes.
func replaceInventory(shoes []models.Shoe) error {
	return newSession().ReplaceAll(shoes)
}

func confirmAction(in io.Reader, out io.Writer, message string) bool {
	fmt.Fprintf(out, "%s (y/N): ", message)
	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
