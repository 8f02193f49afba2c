package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newQuickstartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quickstart",
		Short: "Show examples and usage instructions",
		Run: func(cmd *cobra.Command, _ []string) {
			printQuickstart(cmd.OutOrStdout())
		},
	}
}

func printQuickstart(w io.Writer) {
	fmt.Fprintln(w, `Quickstart Guide for recordkit

1. Greet
   recordkit greet World

2. Save and load a record
   recordkit save tmp/record.json --name widget --value 42
   recordkit save tmp/record.json --data '{"name":"widget","value":42}'
   recordkit load tmp/record.json

   The directory must already exist. Saving replaces the whole file.

3. Call host commands directly
   recordkit invoke greet --args '{"name":"World"}'
   recordkit invoke save_json_file --args '{"path":"tmp/record.json","data":{"name":"widget","value":42}}'
   recordkit invoke load_json_file --args '{"path":"tmp/record.json"}'

4. Serve the commands as MCP tools
   recordkit serve

5. Export the record schema
   recordkit schema --out record.schema.json

Configuration (recordkit.yaml, passed with --config):

   log:
     level: debug
     format: json
   store:
     file_perm: "0644"
     atomic_write: true`)
}
