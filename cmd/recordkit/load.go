package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/metalagman/recordkit/host"
	"github.com/spf13/cobra"
)

func newLoadCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "load <path>",
		Short: "Load a record from a JSON file and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			out, err := a.invoke(cmd, host.CommandLoadJSONFile, map[string]any{"path": args[0]})
			if err != nil {
				return err
			}

			return printJSON(cmd, out)
		},
	}
}

func printJSON(cmd *cobra.Command, data json.RawMessage) error {
	var b bytes.Buffer
	if err := json.Indent(&b, data, "", "  "); err != nil {
		return fmt.Errorf("indent output: %w", err)
	}

	b.WriteByte('\n')

	_, err := cmd.OutOrStdout().Write(b.Bytes())

	return err
}
