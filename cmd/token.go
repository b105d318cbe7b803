package main

import (
	"chat-presence/auth"
	"chat-presence/domain"
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type tokenConfig struct {
	JWTSecret         string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
}

func buildTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "token <userId>",
		Short:   "Issue a bearer token signed with JWT_SECRET",
		Example: `  wscat -c "ws://localhost:8080/ws?token=$(chat-presence token alice)"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			var config tokenConfig
			if _, err := env.UnmarshalFromEnviron(&config); err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			userID, err := domain.ParseUserID(args[0])
			if err != nil {
				return err
			}
			token, err := auth.NewTokens(config.JWTSecret, config.AuthTokenDuration).Generate(userID)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
}
