package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/marsnote"
	"github.com/aretw0/marsnote/pkg/adapters/fs"
	"github.com/aretw0/marsnote/pkg/core"
)

var (
	verbose bool
	home    string
	devTemp bool

	env marsnote.Env
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "marsnote",
	Short: "Profiles, folders and notes kept in a single save file",
	Long: `MarsNote keeps notes in folders and folders in profiles.
The whole library is one JSON save file; settings and the last selection
live in the application-data directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is fine.
		_ = godotenv.Load()

		var err error
		env, err = marsnote.LoadEnv()
		if err != nil {
			return err
		}

		level := marsnote.ParseLevel(env.LogLevel)
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&home, "home", "", "Application-data directory (overrides MARSNOTE_HOME)")
	rootCmd.PersistentFlags().BoolVar(&devTemp, "temp", false, "Keep application data under the system temp dir")
}

// session bundles an open session with the filesystem adapter behind it.
type session struct {
	*marsnote.Session
	repo *fs.Repository
}

// openSession opens the library for a command. A broken save file ends the
// process after naming the file, before anything is written.
func openSession(ctx context.Context) *session {
	logger := slog.Default()
	repo := fs.NewRepository(fs.Config{Logger: logger})

	opts := []marsnote.Option{
		marsnote.WithEnv(env),
		marsnote.WithLogger(logger),
		marsnote.WithRepository(repo),
		marsnote.WithRestarter(restartNotice{}),
		marsnote.WithForceTemp(devTemp),
	}
	if home != "" {
		opts = append(opts, marsnote.WithAppDir(home))
	}

	s, err := marsnote.Open(ctx, opts...)
	if err != nil {
		var loadErr *core.LoadError
		if errors.As(err, &loadErr) {
			fmt.Fprintf(os.Stderr, "Failed to read save data file '%s'. The file may be corrupt or unreadable.\n", loadErr.Path)
			fmt.Fprintln(os.Stderr, "Fix or remove the file, then start MarsNote again.")
			os.Exit(1)
		}
		fatal("Failed to open MarsNote", err)
	}
	if s.FirstRun() {
		fmt.Fprintf(os.Stderr, "Created a new save file at %s\n", s.SavePath())
	}
	return &session{Session: s, repo: repo}
}

// closeSession saves and stops the session, reporting failures on stderr.
func closeSession(ctx context.Context, s *session) {
	if err := s.Close(context.WithoutCancel(ctx)); err != nil {
		fmt.Fprintf(os.Stderr, "Error while saving: %v\n", err)
	}
}
