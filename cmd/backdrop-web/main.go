// Command backdrop-web is the page background alone, without the desktop
// and terminal hosts, so it also builds with GOOS=js GOARCH=wasm.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/config"
	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/web"
)

func main() {
	var (
		variant string
		seed    int64
	)
	rootCmd := &cobra.Command{
		Use:          "backdrop-web",
		Short:        "page background with cards and tags",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			cfg.Variant = variant
			v, err := cfg.Resolve()
			if err != nil {
				return err
			}
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			return web.Run(v, seed, cfg.Width, cfg.Height, cfg.Page, log)
		},
	}
	rootCmd.Flags().StringVar(&variant, "variant", config.DefaultVariant, "background variant")
	rootCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
