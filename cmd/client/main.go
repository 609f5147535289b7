package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/go-ride-hail/internal/client"
	"github.com/MKhiriev/go-ride-hail/internal/config"
	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/models"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	apiURL    string
	tokenFile string
}

// clientFactory builds the client lazily so that "version" and "--help"
// work without a valid configuration.
type clientFactory func(flags globalFlags) (client.Client, error)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	rootCmd := newRootCmd(appFactory(os.Stdout), buildInfo, os.Stdout)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		stop()
		os.Exit(1)
	}
}

func appFactory(out io.Writer) clientFactory {
	return func(flags globalFlags) (client.Client, error) {
		cfg, err := config.GetClientConfig(config.Adapter{BaseURL: flags.apiURL, TokenFile: flags.tokenFile})
		if err != nil {
			return nil, err
		}

		log := logger.NewClientLogger(cfg.App.Name, cfg.App.LogLevel, filepath.Dir(cfg.Adapter.TokenFile))
		return client.NewApp(cfg, out, log)
	}
}

func newRootCmd(factory clientFactory, buildInfo models.AppBuildInfo, out io.Writer) *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "ride-hail",
		Short: "Compare ride fares and book rides from the terminal",
		Long: `ride-hail talks to the go-ride-hail API.

Log in once, then compare quotes from every provider, book the cheapest
(or a specific) one, look through past rides and rate them.
Coordinates are given as "lat,lng".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&flags.apiURL, "api-url", "", "API base URL (env ADAPTER_API_URL, default http://localhost:5000)")
	rootCmd.PersistentFlags().StringVar(&flags.tokenFile, "token-file", "", "where the bearer token is kept (env ADAPTER_TOKEN_FILE)")

	withClient := func(run func(cmd *cobra.Command, c client.Client, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			c, err := factory(flags)
			if err != nil {
				return err
			}
			return run(cmd, c, args)
		}
	}

	rootCmd.AddCommand(
		registerCmd(withClient),
		loginCmd(withClient),
		logoutCmd(withClient),
		whoamiCmd(withClient),
		estimateCmd(withClient),
		bookCmd(withClient),
		historyCmd(withClient),
		reviewCmd(withClient),
		versionCmd(buildInfo),
	)

	return rootCmd
}

type runWithClient func(run func(cmd *cobra.Command, c client.Client, args []string) error) func(*cobra.Command, []string) error

func versionCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), buildInfo.String())
		},
	}
}
