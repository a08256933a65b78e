package main

import (
	"context"
	"fmt"
	"os"
)

// restartNotice tells the user to start MarsNote again. A command-line run
// ends after every command, so there is nothing to restart in-process.
type restartNotice struct{}

func (restartNotice) ScheduleRestart(ctx context.Context) error {
	fmt.Fprintln(os.Stderr, "The save directory changed. Run MarsNote again to use it.")
	return nil
}
