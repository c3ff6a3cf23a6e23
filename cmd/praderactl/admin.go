package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/application/usecase"
	"github.com/pradera/pradera/domain/entity"
	"github.com/pradera/pradera/infrastructure/adapter/postgres"
	"github.com/pradera/pradera/infrastructure/service/jwt"
	"github.com/pradera/pradera/infrastructure/service/logger"
	"github.com/pradera/pradera/infrastructure/service/password"
)

var (
	adminEmail    string
	adminPassword string
	adminName     string
)

func init() {
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Administrator email")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Administrator password")
	createAdminCmd.Flags().StringVar(&adminName, "name", "Administrador", "Display name")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(createAdminCmd)
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create a user with the ADMIN role",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		tokens, err := jwt.NewJWTService(cfg)
		if err != nil {
			return err
		}
		auth := usecase.NewAuthUseCase(
			postgres.NewUserRepositoryAdapter(db.DB),
			tokens,
			password.NewBcryptPasswordService(cfg.BcryptCost),
			logger.NewNopLogger(),
			cfg.JWTExpiration,
			usecase.Options{},
		)

		res, err := auth.CreateUser(cmd.Context(), inbound.RegisterRequest{
			Name:     adminName,
			Email:    adminEmail,
			Password: adminPassword,
		}, entity.RoleAdmin)
		if err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Admin user created: id=%s email=%s\n", res.ID, res.Email)
		return nil
	},
}
