package token

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/breeew/hairlog-api/cmd/service"
	v1 "github.com/breeew/hairlog-api/internal/logic/v1"
)

type Options struct {
	service.Options
	UserID string
	TTL    time.Duration
	Revoke string
}

// NewCommand mints or revokes session tokens, mostly for local testing of the widgets.
func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "token",
		Short: "issue or revoke a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := service.Setup(&opts.Options)

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			logic := v1.NewAuthLogic(ctx, app)

			if opts.Revoke != "" {
				if err := logic.RevokeSessionToken(opts.Revoke, opts.TTL); err != nil {
					return err
				}
				fmt.Println("revoked")
				return nil
			}

			if opts.UserID == "" {
				return fmt.Errorf("--user is required")
			}
			token, err := logic.IssueSessionToken(opts.UserID, opts.TTL)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
	opts.AddFlags(cmd.Flags())
	cmd.Flags().StringVarP(&opts.UserID, "user", "u", "", "user id the token belongs to")
	cmd.Flags().DurationVar(&opts.TTL, "ttl", 24*time.Hour, "token lifetime")
	cmd.Flags().StringVar(&opts.Revoke, "revoke", "", "revoke the given token instead of issuing one")
	return cmd
}
