package app

import (
	"log"

	"github.com/spf13/cobra"

	"shoestore_be/config"
	"shoestore_be/helper/atdb"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := config.ConnectPostgres(cfg)
		if err != nil {
			return err
		}
		defer atdb.Close(db)

		if err := config.Migrate(db); err != nil {
			return err
		}
		log.Println("[INFO] migration finished")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
