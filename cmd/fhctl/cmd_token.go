package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/freelancehub/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	tokenUserID   string
	tokenUsername string
	tokenEmail    string
	tokenJSON     bool
)

// tokenCmd mints an access token signed with the configured secret
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a development access token",
	Long: `Sign an HS256 access token with the configured JWT secret.

Without --user a random user id is generated. The token is printed on its own
line so it can be captured with $(fhctl token).`,
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().StringVarP(&tokenUserID, "user", "u", "", "User ID (UUID) the token is issued for")
	tokenCmd.Flags().StringVar(&tokenUsername, "username", "", "Username claim")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "Email claim")
	tokenCmd.Flags().BoolVar(&tokenJSON, "json", false, "Print token, user id and expiry as JSON")
}

type tokenOutput struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	ExpiresIn int64     `json:"expiresIn"`
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.JWT.Secret == "" {
		return errors.New("jwt.secret is not configured (set FH_JWT_SECRET)")
	}

	userID := uuid.New()
	if tokenUserID != "" {
		userID, err = uuid.Parse(tokenUserID)
		if err != nil {
			return fmt.Errorf("invalid --user %q: %w", tokenUserID, err)
		}
	}

	jwtService := auth.NewJWTService(cfg.JWT)
	token, expiresAt, err := jwtService.GenerateAccessToken(auth.GenerateTokenInput{
		UserID:   userID,
		Username: tokenUsername,
		Email:    tokenEmail,
	})
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}

	out := cmd.OutOrStdout()
	if tokenJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(tokenOutput{
			Token:     token,
			UserID:    userID.String(),
			ExpiresAt: expiresAt.UTC(),
			ExpiresIn: int64(jwtService.GetAccessTokenExpiration().Seconds()),
		})
	}
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "user %s, expires %s\n", userID, expiresAt.UTC().Format(time.RFC3339))
	}
	fmt.Fprintln(out, token)
	return nil
}
