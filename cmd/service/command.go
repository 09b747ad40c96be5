package service

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/breeew/hairlog-api/internal/core"
	"github.com/breeew/hairlog-api/internal/plugins"
)

type Options struct {
	ConfigPath string
	Init       string
}

func (o *Options) AddFlags(flagSet *pflag.FlagSet) {
	// Add flags for generic options
	flagSet.StringVarP(&o.ConfigPath, "config", "c", "", "init api by given config")
	flagSet.StringVarP(&o.Init, "init", "i", "selfhost", "deployment mode, selfhost or saas")
}

func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "service",
		Short: "widget service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

// Setup loads the config, connects the stores and installs the plugins of the given mode.
func Setup(opts *Options) *core.Core {
	app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
	plugins.Setup(app.InstallPlugins, opts.Init)
	return app
}

func Run(opts *Options) error {
	app := Setup(opts)
	return serve(app)
}
