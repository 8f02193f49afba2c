package main

import "github.com/spf13/cobra"

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "recordkit",
		Short:         "Save and load named records as JSON files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a recordkit.yaml config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "console", "log format: console or json")

	root.AddCommand(newGreetCmd(opts))
	root.AddCommand(newSaveCmd(opts))
	root.AddCommand(newLoadCmd(opts))
	root.AddCommand(newInvokeCmd(opts))
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newQuickstartCmd())

	return root
}
