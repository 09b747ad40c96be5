package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/breeew/hairlog-api/cmd/migrate"
	"github.com/breeew/hairlog-api/cmd/service"
	"github.com/breeew/hairlog-api/cmd/token"
)

func main() {
	root := &cobra.Command{
		Use:   "hairlog",
		Short: "hairlog widget api",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("empty command")
		},
	}

	root.AddCommand(service.NewCommand(), migrate.NewCommand(), token.NewCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
