package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/marsnote/pkg/core"
)

var (
	listJSON    bool
	listProfile string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles, folders and notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		s := openSession(ctx)
		defer closeSession(ctx, s)

		err := s.View(func(lib *core.Library) error {
			if listJSON {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(lib)
			}

			for _, p := range lib.Profiles() {
				if listProfile != "" && p.Name() != listProfile {
					continue
				}
				fmt.Println(p.Name())
				for _, f := range p.Folders() {
					fmt.Printf("  %s%s\n", pinMark(f.Pinned()), f.Name())
					for _, n := range f.Notes() {
						fmt.Printf("    %s%s  %s  %s\n", pinMark(n.Pinned()), n.Name(), n.Colour(), formatTime(n.LastModified()))
					}
				}
			}
			return nil
		})
		if err != nil {
			fatal("Error listing library", err)
		}
	},
}

func pinMark(pinned bool) string {
	if pinned {
		return "* "
	}
	return ""
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output the library in save file format")
	listCmd.Flags().StringVar(&listProfile, "profile", "", "Only list this profile")
}
