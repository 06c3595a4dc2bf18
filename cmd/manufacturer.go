package main

import (
	"context"
	"fmt"

	"foodtrace/internal/account"
	"foodtrace/internal/config"
	"foodtrace/pkg/auth"
	"foodtrace/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// manufacturerCommand groups manufacturer account administration. Manufacturers
// cannot sign up through the API.
func manufacturerCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manufacturer",
		Short: "Manages manufacturer accounts",
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Creates a manufacturer account",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			name, _ := cmd.Flags().GetString("name")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			// no tokens are issued here
			m, err := account.New(strg, nil).CreateManufacturer(ctx, email, password, name)
			if err != nil {
				logger.Fatal(ctx, "could not create manufacturer", zap.Error(err))
			}

			fmt.Println(m.ID.String()) //nolint: forbidigo
		},
	}
	create.Flags().String("email", "", "Manufacturer login email")
	create.Flags().String("password", "", "Manufacturer password")
	create.Flags().String("name", "", "Manufacturer name")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("password")
	_ = create.MarkFlagRequired("name")

	cmd.AddCommand(create)

	return cmd
}

// hashPasswordCommand prints the bcrypt hash of a password, for seeding
// accounts by hand.
func hashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Prints the bcrypt hash of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err //nolint: wrapcheck
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)

			return err //nolint: wrapcheck
		},
	}
}
