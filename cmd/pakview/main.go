// Command pakview inspects a .pak archive: its entry count, total payload
// size, a level-element breakdown for every .dat entry that decodes as a
// level, and (with -list) a per-entry listing of names and sizes.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	itesting "github.com/bgrewell/peggle-kit/internal/testing"
	"github.com/bgrewell/peggle-kit/pkg/level"
	"github.com/bgrewell/peggle-kit/pkg/logging"
	"github.com/bgrewell/peggle-kit/pkg/option"
	"github.com/bgrewell/peggle-kit/pkg/pak"
)

func main() {
	debug := flag.Bool("v", false, "enable verbose (debug) logging")
	trace := flag.Bool("vv", false, "enable trace logging")
	listEntries := flag.Bool("list", false, "list every entry name and size")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("usage: pakview [-v] [-vv] [-list] <path-to-pak-or-dir>")
		os.Exit(1)
	}

	verbosity := logging.LEVEL_INFO
	switch {
	case *trace:
		verbosity = logging.LEVEL_TRACE
	case *debug:
		verbosity = logging.LEVEL_DEBUG
	}
	logger := logging.NewLogger(logging.NewSimpleLogger(os.Stderr, verbosity, true))

	a, err := pak.Open(flag.Arg(0), option.WithLogger(logger), option.WithParseOnOpen(true))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open archive: %v\n", err)
		os.Exit(1)
	}

	folders, files := itesting.GetFileAndFolderCounts(a)

	fmt.Println("=== Archive Information ===")
	fmt.Printf("Entries: %d\n", files)
	fmt.Printf("Folders (by path prefix): %d\n", folders)

	var totalSize int
	for _, name := range a.List() {
		e, err := a.Get(name)
		if err != nil {
			continue
		}
		totalSize += len(e.Payload)
		if strings.HasSuffix(strings.ToLower(name), ".dat") {
			if lvl, err := level.Decode(e.Payload, option.WithLevelLogger(logger)); err == nil {
				present, empty, byKind := itesting.CountElements(lvl)
				fmt.Printf("  level %s: version=0x%x elements=%d (present %d, empty %d) %v\n",
					name, lvl.Version, len(lvl.Elements), present, empty, byKind)
			}
		}
	}
	fmt.Printf("Total payload size: %d bytes\n", totalSize)
	fmt.Println("===========================")

	if *listEntries {
		for _, name := range a.List() {
			e, _ := a.Get(name)
			fmt.Printf("  %s (%d bytes)\n", name, len(e.Payload))
		}
	}
}
