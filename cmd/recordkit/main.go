// Package main is the entry point for the recordkit CLI.
package main

import "github.com/spf13/cobra"

var version = "dev"

func main() {
	cobra.CheckErr(newRootCmd().Execute())
}
