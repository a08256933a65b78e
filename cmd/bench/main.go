package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/marsnote/pkg/adapters/fs"
	"github.com/aretw0/marsnote/pkg/core"
)

func main() {
	profiles := flag.Int("profiles", 5, "Number of profiles to generate")
	folders := flag.Int("folders", 20, "Folders per profile")
	notes := flag.Int("notes", 100, "Notes per folder")
	format := flag.String("format", "json", "Serializer for the save file: json or yaml")
	keep := flag.Bool("keep", false, "Keep the benchmark directory after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "marsnote_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	total := *profiles * *folders * *notes
	fmt.Printf("Generating %d notes...\n", total)
	startGen := time.Now()
	lib := generate(*profiles, *folders, *notes)
	fmt.Printf("Generation took: %v\n", time.Since(startGen))

	serializer, err := fs.SerializerFor(*format)
	if err != nil {
		panic(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	repo := fs.NewRepository(fs.Config{Logger: logger, Serializer: serializer})
	path := filepath.Join(benchDir, fs.SaveFileName)
	ctx := context.TODO()

	// Save sorts a clone, so the first save pays for the full sort.
	startSave := time.Now()
	if err := repo.SaveProfiles(ctx, lib, path); err != nil {
		panic(err)
	}
	saveDuration := time.Since(startSave)

	info, err := os.Stat(path)
	if err != nil {
		panic(err)
	}

	startLoad := time.Now()
	loaded, err := repo.LoadProfiles(ctx, path)
	if err != nil {
		panic(err)
	}
	loadDuration := time.Since(startLoad)

	startResave := time.Now()
	if err := repo.SaveProfiles(ctx, loaded, path); err != nil {
		panic(err)
	}
	resaveDuration := time.Since(startResave)

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes, %s, %d KiB):\n", total, serializer.Format(), info.Size()/1024)
	fmt.Printf("  Save (unsorted): %v\n", saveDuration)
	fmt.Printf("  Load:            %v\n", loadDuration)
	fmt.Printf("  Save (sorted):   %v\n", resaveDuration)
	fmt.Printf("--------------------------------------------------\n")
}

func generate(profiles, folders, notes int) *core.Library {
	base := time.Now()
	lib := core.NewLibrary(nil)
	for p := 0; p < profiles; p++ {
		profile, err := lib.CreateProfile(fmt.Sprintf("Profile %d", profiles-p))
		if err != nil {
			panic(err)
		}
		for f := 0; f < folders; f++ {
			folder, err := profile.CreateFolder(fmt.Sprintf("Folder %d", folders-f))
			if err != nil {
				panic(err)
			}
			folder.SetPinned(f%7 == 0)
			for n := 0; n < notes; n++ {
				colour := core.RGB(uint8(n), uint8(f), uint8(p))
				folder.AddNote(core.NewNote(
					fmt.Sprintf("Note %d", n),
					"Benchmark note",
					"This is a test note.",
					&colour,
					base.Add(time.Duration(n)*time.Minute),
					n%11 == 0,
				))
			}
		}
	}
	return lib
}
