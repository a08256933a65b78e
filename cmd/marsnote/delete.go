package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/marsnote/pkg/core"
)

var assumeYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a profile, folder or note",
	Long:  `Delete permanently removes an item and everything it contains from the save file.`,
}

var deleteProfileCmd = &cobra.Command{
	Use:   "profile [name]",
	Short: "Delete a profile and all its folders",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		confirmOrExit(cmd.InOrStdin(), fmt.Sprintf("profile %q", args[0]))
		runUpdate(cmd, "Error deleting profile", func(lib *core.Library) error {
			p, err := findProfile(lib, args[0])
			if err != nil {
				return err
			}
			lib.RemoveProfile(p)
			return nil
		})
		fmt.Printf("Profile deleted: %s\n", args[0])
	},
}

var deleteFolderCmd = &cobra.Command{
	Use:   "folder [profile] [folder]",
	Short: "Delete a folder and all its notes",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		confirmOrExit(cmd.InOrStdin(), fmt.Sprintf("folder %q", args[1]))
		runUpdate(cmd, "Error deleting folder", func(lib *core.Library) error {
			p, f, err := findFolder(lib, args[0], args[1])
			if err != nil {
				return err
			}
			p.RemoveFolder(f)
			return nil
		})
		fmt.Printf("Folder deleted: %s/%s\n", args[0], args[1])
	},
}

var deleteNoteCmd = &cobra.Command{
	Use:   "note [profile] [folder] [note]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		confirmOrExit(cmd.InOrStdin(), fmt.Sprintf("note %q", args[2]))
		runUpdate(cmd, "Error deleting note", func(lib *core.Library) error {
			f, n, err := findNote(lib, args[0], args[1], args[2])
			if err != nil {
				return err
			}
			f.RemoveNote(n)
			return nil
		})
		fmt.Printf("Note deleted: %s/%s/%s\n", args[0], args[1], args[2])
	},
}

// confirm asks a yes/no question on in. Anything but y or yes is a no.
func confirm(in io.Reader, what string) bool {
	fmt.Printf("Are you sure you want to delete %s? This cannot be undone. [y/N] ", what)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func confirmOrExit(in io.Reader, what string) {
	if assumeYes || confirm(in, what) {
		return
	}
	fmt.Println("Cancelled.")
	os.Exit(0)
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.AddCommand(deleteProfileCmd, deleteFolderCmd, deleteNoteCmd)
	deleteCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
}
