package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/sling-library/internal/cache"
	"github.com/BruksfildServices01/sling-library/internal/domain/auth"
	infraRepo "github.com/BruksfildServices01/sling-library/internal/infra/repository"
	ucAuth "github.com/BruksfildServices01/sling-library/internal/usecase/auth"
)

// slinglib migrate: create the database if needed, migrate and seed.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations and seed default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := openDB(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		fmt.Println("✅  Migrations complete.")
		return nil
	},
}

var (
	grantEmail string
	grantRole  string
)

// slinglib grant-admin --email [--role]: give an existing account a role,
// admin unless told otherwise.
var grantAdminCmd = &cobra.Command{
	Use:   "grant-admin",
	Short: "Grant the admin role (or --role) to an existing user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if grantEmail == "" {
			return errors.New("--email is required")
		}
		if !auth.IsRole(grantRole) {
			return fmt.Errorf("unknown role %q, want admin or user", grantRole)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.StorageDriver != "postgres" {
			return fmt.Errorf("grant-admin needs STORAGE_DRIVER=postgres, got %q", cfg.StorageDriver)
		}

		db, err := openDB(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		svc := ucAuth.NewService(infraRepo.NewUserGormRepository(db), cache.NewMemoryCache(), cfg)
		user, err := svc.GrantRole(cmd.Context(), grantEmail, grantRole)
		if err != nil {
			return fmt.Errorf("grant %s to %s: %w", grantRole, grantEmail, err)
		}

		fmt.Printf("✅  %s now has the %s role. Sign in again to pick it up.\n", user.Email, grantRole)
		return nil
	},
}

func init() {
	grantAdminCmd.Flags().StringVar(&grantEmail, "email", "", "email of the account to promote")
	grantAdminCmd.Flags().StringVar(&grantRole, "role", string(auth.RoleAdmin), "role to grant")
}
