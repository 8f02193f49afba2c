package main

import (
	"fmt"
	"os"

	"github.com/metalagman/recordkit"
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of a record file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := recordkit.RecordSchema()
			if err != nil {
				return err
			}

			if out == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))

				return err
			}

			if err := os.WriteFile(out, data, recordkit.DefaultFilePerm); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write the schema to this file, e.g. "+recordkit.RecordSchemaFileName)

	return cmd
}
