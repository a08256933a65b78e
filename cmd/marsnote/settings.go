package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/marsnote/pkg/core"
)

var (
	setAccent       string
	setAutoSave     int
	setOnTop        bool
	setSavePosition bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the settings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		s := openSession(ctx)
		defer closeSession(ctx, s)

		st := s.Settings()
		fmt.Printf("saveFileLocation:      %s\n", st.SaveFileLocation())
		fmt.Printf("accentColour:          %s\n", st.AccentColour())
		fmt.Printf("autoSave:              %d\n", st.AutoSave())
		fmt.Printf("saveWindowPosition:    %t\n", st.SaveWindowPosition())
		fmt.Printf("alwaysOnTop:           %t\n", st.AlwaysOnTop())
		fmt.Printf("startOnSystemStartup:  %t\n", st.StartOnSystemStartup())
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change settings",
	Long: `Change settings. Only the flags given are applied. An unknown accent
falls back to the default and auto-save is clamped to 0..60 minutes.
Use "relocate" to change the save directory.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		s := openSession(ctx)
		defer closeSession(ctx, s)

		flags := cmd.Flags()
		err := s.UpdateSettings(ctx, func(st *core.Settings) {
			if flags.Changed("accent") {
				st.SetAccentColour(setAccent)
			}
			if flags.Changed("autosave") {
				st.SetAutoSave(setAutoSave)
			}
			if flags.Changed("always-on-top") {
				st.SetAlwaysOnTop(setOnTop)
			}
			if flags.Changed("save-window-position") {
				st.SetSaveWindowPosition(setSavePosition)
			}
		})
		if err != nil {
			closeSession(ctx, s)
			fatal("Error saving settings", err)
		}
		fmt.Println("Settings saved.")
	},
}

var settingsAccentsCmd = &cobra.Command{
	Use:   "accents",
	Short: "List the available accent colours",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(strings.Join(core.AvailableAccents(), "\n"))
	},
}

var settingsAutostartCmd = &cobra.Command{
	Use:       "autostart [on|off]",
	Short:     "Start MarsNote when you log in",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		s := openSession(ctx)
		defer closeSession(ctx, s)

		enabled := args[0] == "on"
		if err := s.SetStartOnStartup(enabled); err != nil {
			closeSession(ctx, s)
			fatal("Error changing auto-start", err)
		}
		fmt.Printf("Auto-start: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsSetCmd, settingsAccentsCmd, settingsAutostartCmd)
	settingsSetCmd.Flags().StringVar(&setAccent, "accent", "", "Accent colour name")
	settingsSetCmd.Flags().IntVar(&setAutoSave, "autosave", 0, "Auto-save interval in minutes (0 disables)")
	settingsSetCmd.Flags().BoolVar(&setOnTop, "always-on-top", false, "Keep the window above others")
	settingsSetCmd.Flags().BoolVar(&setSavePosition, "save-window-position", true, "Remember the window position")
}
