package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/marsnote/pkg/core"
)

var (
	noteDescription string
	noteContent     string
	noteColour      string
	notePinned      bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a profile, folder or note",
}

var addProfileCmd = &cobra.Command{
	Use:   "profile [name]",
	Short: "Create an empty profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		s := openSession(ctx)
		defer closeSession(ctx, s)

		err := s.Update(ctx, func(lib *core.Library) error {
			_, err := lib.CreateProfile(args[0])
			return err
		})
		if err != nil {
			fatal("Error creating profile", err)
		}
		fmt.Printf("Profile created: %s\n", args[0])
	},
}

var addFolderCmd = &cobra.Command{
	Use:   "folder [profile] [name]",
	Short: "Create an empty folder in a profile",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		s := openSession(ctx)
		defer closeSession(ctx, s)

		err := s.Update(ctx, func(lib *core.Library) error {
			p, err := findProfile(lib, args[0])
			if err != nil {
				return err
			}
			_, err = p.CreateFolder(args[1])
			return err
		})
		if err != nil {
			fatal("Error creating folder", err)
		}
		fmt.Printf("Folder created: %s/%s\n", args[0], args[1])
	},
}

var addNoteCmd = &cobra.Command{
	Use:   "note [profile] [folder] [name]",
	Short: "Create a note at the top of a folder",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		var colour *core.Colour
		if noteColour != "" {
			c, err := core.ParseColour(noteColour)
			if err != nil {
				fatal("Invalid colour", err)
			}
			colour = &c
		}

		ctx := cmd.Context()
		s := openSession(ctx)
		defer closeSession(ctx, s)

		err := s.Update(ctx, func(lib *core.Library) error {
			_, f, err := findFolder(lib, args[0], args[1])
			if err != nil {
				return err
			}
			n := core.NewNote(args[2], noteDescription, noteContent, colour, time.Now(), notePinned)
			f.InsertNote(0, n)
			return nil
		})
		if err != nil {
			fatal("Error creating note", err)
		}
		fmt.Printf("Note created: %s/%s/%s\n", args[0], args[1], args[2])
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.AddCommand(addProfileCmd, addFolderCmd, addNoteCmd)
	addNoteCmd.Flags().StringVarP(&noteDescription, "description", "d", "", "Note description")
	addNoteCmd.Flags().StringVarP(&noteContent, "content", "c", "", "Note content")
	addNoteCmd.Flags().StringVar(&noteColour, "colour", "", "Note colour as #RRGGBB")
	addNoteCmd.Flags().BoolVar(&notePinned, "pinned", false, "Pin the note")
}
