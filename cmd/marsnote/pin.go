package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/marsnote/pkg/core"
)

var unpin bool

var pinCmd = &cobra.Command{
	Use:   "pin",
	Short: "Pin or unpin a folder or note",
	Long:  `Pinned folders and notes are saved ahead of the others.`,
}

var pinFolderCmd = &cobra.Command{
	Use:   "folder [profile] [folder]",
	Short: "Pin a folder",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runUpdate(cmd, "Error pinning folder", func(lib *core.Library) error {
			_, f, err := findFolder(lib, args[0], args[1])
			if err != nil {
				return err
			}
			f.SetPinned(!unpin)
			return nil
		})
		fmt.Printf("Folder %s: pinned=%t\n", args[1], !unpin)
	},
}

var pinNoteCmd = &cobra.Command{
	Use:   "note [profile] [folder] [note]",
	Short: "Pin a note",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		runUpdate(cmd, "Error pinning note", func(lib *core.Library) error {
			_, n, err := findNote(lib, args[0], args[1], args[2])
			if err != nil {
				return err
			}
			n.SetPinned(!unpin)
			return nil
		})
		fmt.Printf("Note %s: pinned=%t\n", args[2], !unpin)
	},
}

func init() {
	rootCmd.AddCommand(pinCmd)
	pinCmd.AddCommand(pinFolderCmd, pinNoteCmd)
	pinCmd.PersistentFlags().BoolVar(&unpin, "unset", false, "Unpin instead")
}
