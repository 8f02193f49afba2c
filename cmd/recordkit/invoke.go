package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newInvokeCmd(opts *rootOptions) *cobra.Command {
	var rawArgs string

	cmd := &cobra.Command{
		Use:   "invoke <command>",
		Short: "Call a host command with JSON arguments",
		Long: "Call a host command by name, the way an application host would.\n" +
			"Commands: greet, save_json_file, load_json_file.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trimmed := strings.TrimSpace(rawArgs)
			if !json.Valid([]byte(trimmed)) {
				return fmt.Errorf("parse --args: invalid JSON")
			}

			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			out, err := a.dispatcher.Invoke(cmd.Context(), args[0], json.RawMessage(trimmed))
			if err != nil {
				return err
			}

			return printJSON(cmd, out)
		},
	}

	cmd.Flags().StringVar(&rawArgs, "args", "{}", "command arguments as a JSON object")

	return cmd
}
