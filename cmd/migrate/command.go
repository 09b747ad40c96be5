package migrate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/breeew/hairlog-api/cmd/service"
	"github.com/breeew/hairlog-api/internal/store"
)

func NewCommand() *cobra.Command {
	opts := &service.Options{}
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "install the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := service.Setup(opts)

			installer, ok := app.Store().(store.Installer)
			if !ok {
				return fmt.Errorf("store provider does not support schema install")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			if err := installer.Install(ctx); err != nil {
				return fmt.Errorf("Failed to install schema, %w", err)
			}
			slog.Info("schema installed")
			return nil
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}
