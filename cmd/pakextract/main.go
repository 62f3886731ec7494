// Command pakextract unpacks a .pak archive into a directory tree,
// preserving each entry's relative path and modification time.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bgrewell/peggle-kit/pkg/logging"
	"github.com/bgrewell/peggle-kit/pkg/option"
	"github.com/bgrewell/peggle-kit/pkg/pak"
	"github.com/theckman/yacspin"
	"golang.org/x/term"
)

func main() {
	debug := flag.Bool("v", false, "enable verbose (debug) logging")
	trace := flag.Bool("vv", false, "enable trace logging")
	outputDir := flag.String("o", "./extracted", "output directory for extracted files")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("usage: pakextract [-v] [-vv] [-o <directory>] <path-to-pak>")
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

	spinner := newExtractSpinner()
	if spinner != nil {
		spinner.Start()
	}

	a, err := pak.Open(flag.Arg(0), option.WithLogger(logger), option.WithParseOnOpen(true))
	if err != nil {
		stopSpinnerFail(spinner)
		fmt.Fprintf(os.Stderr, "failed to open archive: %v\n", err)
		os.Exit(1)
	}

	dest, err := filepath.Abs(*outputDir)
	if err != nil {
		stopSpinnerFail(spinner)
		fmt.Fprintf(os.Stderr, "failed to resolve output directory: %v\n", err)
		os.Exit(1)
	}

	if spinner != nil {
		spinner.Message(fmt.Sprintf("extracting %d entries", len(a.List())))
	}

	if err := a.SaveDir(dest); err != nil {
		stopSpinnerFail(spinner)
		fmt.Fprintf(os.Stderr, "failed to extract archive: %v\n", err)
		os.Exit(1)
	}

	if spinner != nil {
		spinner.Stop()
	}
	fmt.Printf("extraction completed successfully to '%s'.\n", dest)
}

// newExtractSpinner returns nil when stdout is not a terminal, matching how
// a progress animation should degrade to plain output when piped or
// redirected.
func newExtractSpinner() *yacspin.Spinner {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil
	}
	cfg := yacspin.Config{
		Frequency:       100 * time.Millisecond,
		CharSet:         yacspin.CharSets[9],
		Suffix:          strings.Repeat(" ", 1),
		SuffixAutoColon: true,
		Message:         "opening archive",
		StopCharacter:   "✓",
		StopColors:      []string{"fgGreen"},
	}
	s, err := yacspin.New(cfg)
	if err != nil {
		return nil
	}
	return s
}

func stopSpinnerFail(s *yacspin.Spinner) {
	if s != nil {
		s.StopFail()
	}
}
