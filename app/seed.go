package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shoestore_be/config"
	"shoestore_be/helper/atdb"
	"shoestore_be/repository"
	"shoestore_be/service"
)

var (
	seedName     string
	seedEmail    string
	seedPassword string
)

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create an admin user, or promote an existing one",
	Long: `Create an admin user with a bcrypt password. When a user with the
email already exists it is promoted to admin and its password is replaced.

Examples:
  shoestore seed-admin
  shoestore seed-admin --email ops@example.com --password 's3cret-pass'`,
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

		auth := service.NewAuthService(repository.NewUserRepository(db), nil, cfg.PrivateKey, cfg.TokenHours)
		res := auth.SeedAdmin(cmd.Context(), seedName, seedEmail, seedPassword)
		if res.Error != nil {
			return errors.New(*res.Error)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Admin ready: %s <%s>\n", res.Data.Name, res.Data.Email)
		return nil
	},
}

func init() {
	seedAdminCmd.Flags().StringVar(&seedName, "name", "Admin", "Admin display name")
	seedAdminCmd.Flags().StringVar(&seedEmail, "email", "admin@bwa.com", "Admin email")
	seedAdminCmd.Flags().StringVar(&seedPassword, "password", "@admin1234", "Admin password")
	rootCmd.AddCommand(seedAdminCmd)
}
