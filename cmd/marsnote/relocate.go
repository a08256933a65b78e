package main

import (
	"bufio"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/marsnote/pkg/relocate"
)

var relocateMode string

var relocateCmd = &cobra.Command{
	Use:   "relocate [dir]",
	Short: "Move the save file to another directory",
	Long: `Relocate makes [dir] the save directory. When [dir] already holds a save
file you choose what happens:

  overwrite  replace it with the current library
  load       keep it and use it from the next run on
  cancel     change nothing

Without --mode the choice is asked for interactively.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir, err := filepath.Abs(args[0])
		if err != nil {
			fatal("Invalid directory", err)
		}

		ctx := cmd.Context()
		s := openSession(ctx)
		defer closeSession(ctx, s)

		flow := s.Relocate()
		if err := flow.Choose(ctx, dir); err != nil {
			closeSession(ctx, s)
			fatal("Error relocating", err)
		}

		switch flow.Phase() {
		case relocate.Idle:
			fmt.Printf("Nothing to do: %s is missing or already the save directory.\n", dir)
			return
		case relocate.RestartPending:
			fmt.Printf("Save file written to %s\n", dir)
			return
		}

		mode := relocateMode
		if mode == "" {
			fmt.Printf("%s already contains a save file. [o]verwrite, [l]oad or [c]ancel? ", dir)
			line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			mode = strings.ToLower(strings.TrimSpace(line))
		}
		choice, err := relocate.ParseChoice(mode)
		if err != nil {
			closeSession(ctx, s)
			fatal("Error relocating", err)
		}
		if err := flow.Resolve(ctx, choice); err != nil {
			closeSession(ctx, s)
			fatal("Error relocating", err)
		}

		if flow.Phase() == relocate.Idle {
			fmt.Println("Relocation cancelled.")
			return
		}
		fmt.Printf("Save directory is now %s (%s)\n", dir, choice)
	},
}

func init() {
	rootCmd.AddCommand(relocateCmd)
	relocateCmd.Flags().StringVar(&relocateMode, "mode", "", "Conflict answer: overwrite, load or cancel")
}
