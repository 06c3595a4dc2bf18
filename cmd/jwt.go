package main

import (
	"context"
	"fmt"
	"time"

	"foodtrace/internal/config"
	"foodtrace/pkg/auth"
	"foodtrace/pkg/domain"
	"foodtrace/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed RS256 JWT
// for a given account ID, email and scope using the configured private key.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given account ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			email, _ := cmd.Flags().GetString("email")
			scope, _ := cmd.Flags().GetString("scope")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			id, err := uuid.Parse(subject)
			if err != nil {
				logger.Fatal(ctx, "subject must be a UUID", zap.Error(err))
			}
			if !domain.Scope(scope).Valid() {
				logger.Fatal(ctx, "unknown scope", zap.String("scope", scope))
			}

			issuer, err := auth.NewIssuer(cfg.JWT.PrivateKey, cfg.JWT.TTL)
			if err != nil {
				logger.Fatal(ctx, "could not create token issuer", zap.Error(err))
			}
			signed, err := issuer.IssueWithTTL(domain.Principal{
				ID:    domain.UserID(id),
				Email: email,
				Scope: domain.Scope(scope),
			}, TTL)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (account UUID)")
	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("scope", string(domain.ScopeConsumer), "Token scope (consumer or manufacturer)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
