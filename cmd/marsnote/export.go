package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/marsnote/pkg/core"
)

var (
	exportFormat string
	exportOut    string
	importFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the library in canonical order as JSON or YAML",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		s := openSession(ctx)
		defer closeSession(ctx, s)

		var data []byte
		err := s.View(func(lib *core.Library) error {
			var err error
			data, err = s.repo.Export(lib, exportFormat)
			return err
		})
		if err != nil {
			closeSession(ctx, s)
			fatal("Error exporting", err)
		}

		if exportOut == "" {
			os.Stdout.Write(data)
			return
		}
		if err := os.WriteFile(exportOut, data, 0o644); err != nil {
			closeSession(ctx, s)
			fatal("Error writing export", err)
		}
		fmt.Fprintf(os.Stderr, "Exported to %s\n", exportOut)
	},
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the library with an exported file",
	Long: `Import replaces every profile in the library with the contents of [file].
The format is taken from the file extension unless --format is given.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fatal("Error reading import", err)
		}
		format := importFormat
		if format == "" {
			format = strings.TrimPrefix(filepath.Ext(args[0]), ".")
		}

		confirmOrExit(cmd.InOrStdin(), "every profile and replace them with "+args[0])

		ctx := cmd.Context()
		s := openSession(ctx)
		defer closeSession(ctx, s)

		imported, err := s.repo.Import(data, format)
		if err != nil {
			closeSession(ctx, s)
			fatal("Error importing", err)
		}
		if err := imported.Validate(); err != nil {
			closeSession(ctx, s)
			fatal("Error importing", err)
		}

		runUpdateOn(ctx, s, "Error importing", func(lib *core.Library) error {
			lib.SetProfiles(imported.Profiles())
			return nil
		})
		fmt.Printf("Imported %d profiles.\n", imported.Len())
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write to this file instead of stdout")
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "Input format: json or yaml")
	importCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
}
