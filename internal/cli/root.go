package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/VakaruGIT/NSMS/internal/buildinfo"
)

// globalFlags override values from nsms.yaml.
type globalFlags struct {
	configDir string
	addr      string
	seed      string
	debug     bool
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "nsms",
		Short:        "NSMS: newspaper subscription management service",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&g.configDir, "config-dir", "", "Directory to search for nsms.yaml (default: working directory and its parents)")
	cmd.PersistentFlags().StringVar(&g.addr, "addr", "", "Listen address, overrides server.addr")
	cmd.PersistentFlags().StringVar(&g.seed, "seed", "", "Seed file, overrides seed.file")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(
		serveCmd(g),
		initCmd(),
		validateCmd(g),
		reportCmd(g),
		statsCmd(g),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
