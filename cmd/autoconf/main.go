// Command autoconf resolves a candidate-configuration manifest and
// prints the activation order.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	autoconf "github.com/componentry/go-autoconf"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configFile string
		excludes   []string
		asJSON     bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "autoconf <manifest.yaml>",
		Short:         "Resolve the activation order of candidate configurations",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logLevel := slog.LevelInfo
			if verbose {
				logLevel = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel,
			}))

			v := viper.New()
			if configFile != "" {
				v.SetConfigFile(configFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("read config: %w", err)
				}
			}

			opts := []autoconf.Option{
				autoconf.WithViper(v),
				autoconf.WithLogger(logger),
			}
			if len(excludes) > 0 {
				opts = append(opts, autoconf.WithExcludes(excludes...))
			}

			result, err := autoconf.ResolveFile(args[0], opts...)
			if err != nil {
				return err
			}

			if asJSON {
				data, err := result.ToJSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), result.ToText())
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "configuration file with autoconf.* properties")
	cmd.Flags().StringSliceVarP(&excludes, "exclude", "x", nil, "candidate names to exclude")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of text")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
