package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/marsnote/pkg/core"
)

var selectCmd = &cobra.Command{
	Use:   "select [profile] [folder]",
	Short: "Remember a profile and folder as the current selection",
	Long: `Select records which profile and folder are open. The selection is stored
in the state file and restored by the next run. With no arguments the
current selection is printed.`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		s := openSession(ctx)
		defer closeSession(ctx, s)

		if len(args) == 0 {
			_ = s.View(func(lib *core.Library) error {
				p, f := s.LastState().Resolve(lib)
				switch {
				case p == nil:
					fmt.Println("Nothing selected.")
				case f == nil:
					fmt.Println(p.Name())
				default:
					fmt.Printf("%s/%s\n", p.Name(), f.Name())
				}
				return nil
			})
			return
		}

		folder := ""
		if len(args) == 2 {
			folder = args[1]
		}
		err := s.View(func(lib *core.Library) error {
			if folder == "" {
				_, err := findProfile(lib, args[0])
				return err
			}
			_, _, err := findFolder(lib, args[0], folder)
			return err
		})
		if err != nil {
			closeSession(ctx, s)
			fatal("Error selecting", err)
		}
		s.Select(args[0], folder)
		fmt.Println("Selection saved.")
	},
}

func init() {
	rootCmd.AddCommand(selectCmd)
}
