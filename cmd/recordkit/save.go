package main

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/metalagman/recordkit"
	"github.com/metalagman/recordkit/host"
	"github.com/spf13/cobra"
)

type saveOptions struct {
	name  string
	value int32
	data  string
}

func newSaveCmd(opts *rootOptions) *cobra.Command {
	sopts := &saveOptions{}
	cmd := &cobra.Command{
		Use:   "save <path>",
		Short: "Save a record to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := resolveRecordData(cmd, sopts)
			if err != nil {
				return err
			}

			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			if _, err := a.invoke(cmd, host.CommandSaveJSONFile, map[string]any{
				"path": args[0],
				"data": data,
			}); err != nil {
				return err
			}

			a.logger.Info().Str("path", args[0]).Msg("record saved")

			return nil
		},
	}

	cmd.Flags().StringVar(&sopts.name, "name", "", "record name")
	cmd.Flags().Int32Var(&sopts.value, "value", 0, "record value")
	cmd.Flags().StringVar(&sopts.data, "data", "", `record as JSON, e.g. '{"name":"widget","value":42}'`)

	return cmd
}

func resolveRecordData(cmd *cobra.Command, opts *saveOptions) (json.RawMessage, error) {
	dataSet := cmd.Flags().Changed("data")
	fieldsSet := cmd.Flags().Changed("name") || cmd.Flags().Changed("value")

	switch {
	case dataSet && fieldsSet:
		return nil, errors.New("use --data or --name/--value, not both")
	case dataSet:
		raw := strings.TrimSpace(opts.data)
		if !json.Valid([]byte(raw)) {
			return nil, errors.New("parse --data: invalid JSON")
		}

		return json.RawMessage(raw), nil
	case fieldsSet:
		return json.Marshal(recordkit.Record{Name: opts.name, Value: opts.value})
	default:
		return nil, errors.New("either --data or --name/--value is required")
	}
}
