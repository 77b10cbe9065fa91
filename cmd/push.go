package cmd

import (
	"fmt"

	"shoestock/internal/database"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// mongoKeys binds the connection flags shared by push and pull.
var mongoKeys = map[string]string{
	"db-uri":     "mongo_uri",
	"database":   "mongo_db",
	"collection": "mongo_collection",
}

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push the inventory file to MongoDB",
	Long: `Upsert every record of the inventory file into a MongoDB collection.
Documents are matched by shoe code: existing codes are replaced, new codes inserted.`,
	Annotations: mongoKeys,
	Args:        cobra.NoArgs,
	RunE:        runPush,
}

func init() {
	addMongoFlags(pushCmd)
}

func addMongoFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("db-uri", "u", "mongodb://localhost:27017", "MongoDB connection URI")
	cmd.Flags().StringP("database", "d", "shoestock", "Database name")
	cmd.Flags().StringP("collection", "c", "shoes", "Collection name")
}

func runPush(cmd *cobra.Command, args []string) error {
	svc, err := loadSession()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	db, err := database.NewMongoDB(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	log.Info().Str("collection", cfg.MongoCollection).Int("records", svc.Store().Len()).Msg("starting push")
	result := db.Push(ctx, cfg.MongoCollection, svc.Store().Snapshot())

	fmt.Fprintf(cmd.OutOrStdout(), "Pushed %d records to %s.%s: %d new, %d updated, %d failed\n",
		result.Total, cfg.MongoDB, cfg.MongoCollection, result.New, result.Updated, result.Failed)
	if result.Failed > 0 {
		return fmt.Errorf("%d of %d records failed to push", result.Failed, result.Total)
	}
	return nil
}
