package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/marsnote"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of marsnote",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("marsnote version %s\n", marsnote.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
