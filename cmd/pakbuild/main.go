// Command pakbuild packs a directory tree into a .pak archive, or rewrites
// an existing .pak (e.g. after editing one of its level or config entries
// on disk as a loose directory).
package main

import (
	"flag"
	"fmt"
	"os"
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
	xorKey := flag.Int("xor", -1, "override the XOR key written to the archive (0-255, default: auto)")
	flag.Parse()

	if flag.NArg() < 2 {
		fmt.Println("usage: pakbuild [-v] [-vv] [-xor <key>] <input-dir> <output.pak>")
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

	openOpts := []option.PakOption{option.WithLogger(logger)}

	spinner := newBuildSpinner()
	if spinner != nil {
		spinner.Start()
		spinner.Message("reading input directory")
	}

	a, err := pak.Open(flag.Arg(0), openOpts...)
	if err != nil {
		stopSpinnerFail(spinner)
		fmt.Fprintf(os.Stderr, "failed to read input directory: %v\n", err)
		os.Exit(1)
	}
	if *xorKey >= 0 {
		a.SetXor(byte(*xorKey))
	}

	if spinner != nil {
		spinner.Message(fmt.Sprintf("writing %d entries", len(a.List())))
	}

	if err := a.SavePak(flag.Arg(1)); err != nil {
		stopSpinnerFail(spinner)
		fmt.Fprintf(os.Stderr, "failed to build archive: %v\n", err)
		os.Exit(1)
	}

	if spinner != nil {
		spinner.Stop()
	}
	fmt.Printf("built archive '%s' with %d entries.\n", flag.Arg(1), len(a.List()))
}

func newBuildSpinner() *yacspin.Spinner {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil
	}
	cfg := yacspin.Config{
		Frequency:       100 * time.Millisecond,
		CharSet:         yacspin.CharSets[9],
		SuffixAutoColon: true,
		Message:         "building",
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
