package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/marsnote/pkg/core"
)

var moveToProfile string

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move a note to another folder or a folder to another profile",
}

var moveNoteCmd = &cobra.Command{
	Use:   "note [profile] [folder] [note] [target-folder]",
	Short: "Move a note to the top of another folder",
	Long: `Move a note to the top of another folder. The target folder is looked up
in the same profile unless --to-profile is given.`,
	Args: cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		dstProfile := args[0]
		if moveToProfile != "" {
			dstProfile = moveToProfile
		}
		runUpdate(cmd, "Error moving note", func(lib *core.Library) error {
			src, n, err := findNote(lib, args[0], args[1], args[2])
			if err != nil {
				return err
			}
			_, dst, err := findFolder(lib, dstProfile, args[3])
			if err != nil {
				return err
			}
			return lib.MoveNote(n, src, dst)
		})
		fmt.Printf("Note moved: %s -> %s/%s\n", args[2], dstProfile, args[3])
	},
}

var moveFolderCmd = &cobra.Command{
	Use:   "folder [profile] [folder] [target-profile]",
	Short: "Move a folder to another profile",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		runUpdate(cmd, "Error moving folder", func(lib *core.Library) error {
			src, f, err := findFolder(lib, args[0], args[1])
			if err != nil {
				return err
			}
			dst, err := findProfile(lib, args[2])
			if err != nil {
				return err
			}
			return lib.MoveFolder(f, src, dst)
		})
		fmt.Printf("Folder moved: %s -> %s\n", args[1], args[2])
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
	moveCmd.AddCommand(moveNoteCmd, moveFolderCmd)
	moveNoteCmd.Flags().StringVar(&moveToProfile, "to-profile", "", "Profile holding the target folder")
}
