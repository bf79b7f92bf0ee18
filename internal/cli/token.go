package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"medguardian/internal/adapters/auth/jwtauth"
	"medguardian/internal/ports/auth"
)

var (
	tokenFlagUser  string
	tokenFlagEmail string
	tokenFlagTTL   time.Duration
)

// tokenCmd firma tokens con JWT_SECRET para probar la API sin un proveedor externo.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a signed access token for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.DevMode() {
			return fmt.Errorf("JWT_SECRET is not set")
		}

		v := jwtauth.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer)
		tok, err := v.Issue(auth.Claims{UserID: tokenFlagUser, Email: tokenFlagEmail}, tokenFlagTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenFlagUser, "user", "", "user id (sub)")
	tokenCmd.Flags().StringVar(&tokenFlagEmail, "email", "", "email claim")
	tokenCmd.Flags().DurationVar(&tokenFlagTTL, "ttl", 24*time.Hour, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("user")
}
