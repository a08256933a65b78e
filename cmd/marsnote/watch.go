package main

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/marsnote/pkg/adapters/fs"
	lifecycleadapter "github.com/aretw0/marsnote/pkg/adapters/lifecycle"
	"github.com/aretw0/marsnote/pkg/core"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Report changes other programs make to the MarsNote files",
	Long: `Watch prints an event whenever the save file, settings or state file is
created, modified or deleted by another program (a sync client, an editor,
another MarsNote). Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		// Only the directories are needed; the session is closed before
		// watching so its own saves are not reported.
		s := openSession(ctx)
		dirs := []string{s.SaveDir()}
		if s.AppDir() != s.SaveDir() {
			dirs = append(dirs, s.AppDir())
		}
		closeSession(ctx, s)

		repo := fs.NewRepository(fs.Config{
			Logger:       slog.Default(),
			WatchPattern: watchPattern,
			ErrorHandler: func(err error) {
				slog.Error("watch failed", "error", err)
			},
		})

		var wg sync.WaitGroup
		for _, dir := range dirs {
			events := make(chan core.Event)
			if err := repo.Watch(ctx, dir, events); err != nil {
				fatal("Error watching "+dir, err)
			}

			source := lifecycleadapter.NewSource(events)
			if err := source.Start(ctx); err != nil {
				fatal("Error watching "+dir, err)
			}

			fmt.Printf("Watching %s\n", dir)
			wg.Add(1)
			go func() {
				defer wg.Done()
				for e := range source.Events() {
					fmt.Printf("%s %s\n", time.Now().Format(time.TimeOnly), e.String())
				}
			}()
		}
		wg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPattern, "pattern", fs.DefaultWatchPattern, "Glob of file names to report")
}
