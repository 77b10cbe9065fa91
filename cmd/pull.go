package cmd

import (
	"fmt"

	"shoestock/internal/database"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var pullYes bool

var pullCmd = &cobra.Command{
	Use:         "pull",
	Short:       "Replace the inventory file with a MongoDB collection",
	Long:        "Fetch every shoe in a MongoDB collection and rewrite the inventory file with them",
	Annotations: mongoKeys,
	Args:        cobra.NoArgs,
	RunE:        runPull,
}

func init() {
	addMongoFlags(pullCmd)
	pullCmd.Flags().BoolVar(&pullYes, "yes", false, "Skip confirmation prompts")
}

func runPull(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, err := database.NewMongoDB(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	shoes, err := db.FetchShoes(ctx, cfg.MongoCollection)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !pullYes {
		fmt.Fprintf(out, "About to replace '%s' with %d records from %s.%s\n", cfg.File, len(shoes), cfg.MongoDB, cfg.MongoCollection)
		if !confirmAction(cmd.InOrStdin(), out, "Do you want to continue?") {
			fmt.Fprintln(out, "Pull cancelled")
			return nil
		}
	}

	if err := replaceInventory(shoes); err != nil {
		return fmt.Errorf("pull failed: %w", err)
	}

	log.Info().Str("collection", cfg.MongoCollection).Int("records", len(shoes)).Msg("inventory pulled")
	fmt.Fprintf(out, "Pulled %d records into %s\n", len(shoes), cfg.File)
	return nil
}
