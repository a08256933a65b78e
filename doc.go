// Package marsnote is the composition root for the MarsNote note library.
//
// A library is an ordered list of profiles. Each profile holds folders and
// each folder holds notes. The whole library lives in one JSON save file
// inside a user-chosen directory; settings and the last selection live in
// the application-data directory next to it.
//
// Features:
//
//   - **Canonical save order**: profiles by name, folders by name then
//     pinned first, notes newest first then pinned first. The live order is
//     never touched by a save.
//   - **Single writer**: every save, manual or timed, runs on one auto-save
//     worker.
//   - **Best-effort settings**: unreadable settings or state fall back to
//     defaults with a warning; an unreadable save file is fatal.
//   - **Relocation**: moving the save directory asks what to do when the
//     target already holds a save file, then requires a restart.
//
// Usage:
//
//	s, err := marsnote.Open(ctx, marsnote.WithLogger(logger))
//	if err != nil {
//		var loadErr *core.LoadError
//		if errors.As(err, &loadErr) {
//			// tell the user which file is broken, then exit
//		}
//	}
//	defer s.Close(ctx)
//
//	err = s.Update(ctx, func(lib *core.Library) error {
//		_, err := lib.CreateProfile("Work")
//		return err
//	})
package marsnote
