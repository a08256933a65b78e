package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/marsnote/pkg/core"
)

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename a profile, folder or note",
}

var renameProfileCmd = &cobra.Command{
	Use:   "profile [name] [new-name]",
	Short: "Rename a profile",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runUpdate(cmd, "Error renaming profile", func(lib *core.Library) error {
			p, err := findProfile(lib, args[0])
			if err != nil {
				return err
			}
			return lib.RenameProfile(p, args[1])
		})
		fmt.Printf("Profile renamed: %s -> %s\n", args[0], args[1])
	},
}

var renameFolderCmd = &cobra.Command{
	Use:   "folder [profile] [name] [new-name]",
	Short: "Rename a folder",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		runUpdate(cmd, "Error renaming folder", func(lib *core.Library) error {
			p, f, err := findFolder(lib, args[0], args[1])
			if err != nil {
				return err
			}
			return p.RenameFolder(f, args[2])
		})
		fmt.Printf("Folder renamed: %s -> %s\n", args[1], args[2])
	},
}

var renameNoteCmd = &cobra.Command{
	Use:   "note [profile] [folder] [name] [new-name]",
	Short: "Rename a note",
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		runUpdate(cmd, "Error renaming note", func(lib *core.Library) error {
			_, n, err := findNote(lib, args[0], args[1], args[2])
			if err != nil {
				return err
			}
			n.SetName(args[3])
			return nil
		})
		fmt.Printf("Note renamed: %s -> %s\n", args[2], args[3])
	},
}

// runUpdate opens the library, applies fn, saves and closes. Errors end the process.
func runUpdate(cmd *cobra.Command, msg string, fn func(lib *core.Library) error) {
	ctx := cmd.Context()
	s := openSession(ctx)
	defer closeSession(ctx, s)
	runUpdateOn(ctx, s, msg, fn)
}

func runUpdateOn(ctx context.Context, s *session, msg string, fn func(lib *core.Library) error) {
	if err := s.Update(ctx, fn); err != nil {
		closeSession(ctx, s)
		fatal(msg, err)
	}
}

func init() {
	rootCmd.AddCommand(renameCmd)
	renameCmd.AddCommand(renameProfileCmd, renameFolderCmd, renameNoteCmd)
}
