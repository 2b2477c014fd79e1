// Command cherris-cli plays chess on the terminal, either as a line-oriented
// command loop or as a full-screen board.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/hailam/cherris/internal/board"
	"github.com/hailam/cherris/internal/cli"
	"github.com/hailam/cherris/internal/session"
	"github.com/hailam/cherris/internal/storage"
	"github.com/hailam/cherris/internal/tui"
)

var (
	dbDir      = flag.String("db", getenv("CHERRIS_DB", ""), "database directory (default: platform data directory)")
	memory     = flag.Bool("memory", false, "keep saved sessions in memory only")
	noStore    = flag.Bool("nostore", false, "disable saving and loading sessions")
	fen        = flag.String("fen", "", "start from this FEN position")
	useTUI     = flag.Bool("tui", false, "full-screen terminal board")
	debug      = flag.Bool("debug", getenv("CHERRIS_DEBUG", "") != "", "log move generator probes")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	board.DebugMoveGen = *debug

	sess := session.New()
	if *fen != "" {
		var err error
		sess, err = session.FromFEN(*fen)
		if err != nil {
			log.Fatal(err)
		}
	}

	if *useTUI {
		if err := tui.Run(sess); err != nil {
			log.Fatal(err)
		}
		return
	}

	store, err := openStorage()
	if err != nil {
		log.Printf("Warning: Failed to open storage: %v (save/load disabled)", err)
	}
	if store != nil {
		defer store.Close()
	}

	if err := cli.New(os.Stdin, os.Stdout, sess, store).Run(); err != nil {
		log.Fatal(err)
	}
}

// openStorage picks the session store from the flags. It returns nil, nil
// when storage is disabled.
func openStorage() (*storage.Storage, error) {
	switch {
	case *noStore:
		return nil, nil
	case *memory:
		return storage.OpenInMemory()
	case *dbDir != "":
		return storage.Open(*dbDir)
	default:
		return storage.NewStorage()
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
