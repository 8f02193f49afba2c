package main

import (
	"encoding/json"
	"fmt"

	"github.com/metalagman/recordkit/host"
	"github.com/spf13/cobra"
)

func newGreetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "greet <name>",
		Short: "Print a greeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			out, err := a.invoke(cmd, host.CommandGreet, map[string]any{"name": args[0]})
			if err != nil {
				return err
			}

			var greeting string
			if err := json.Unmarshal(out, &greeting); err != nil {
				return fmt.Errorf("decode greeting: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), greeting)

			return err
		},
	}
}
