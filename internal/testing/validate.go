package testing

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bgrewell/peggle-kit/pkg/pak"
)

// ContainsNonASCIIPrintable returns true if the string has any
// characters outside ASCII [32..126], i.e., not a standard printable.
func ContainsNonASCIIPrintable(s string) bool {
	for _, r := range s {
		if r < 32 || r > 126 {
			return true
		}
	}
	return false
}

// GroundTruthEntry represents a single record from a fixture's ground-truth
// JSON: the expected entry list an archive should produce once loaded.
type GroundTruthEntry struct {
	Date           string `json:"date"`
	Time           string `json:"time"`
	Attr           string `json:"attr"`
	Size           int64  `json:"size"`
	CompressedSize int64  `json:"compressed_size"`
	Name           string `json:"name"`
	IsDirectory    bool   `json:"is_directory"`
}

// LoadGroundTruth reads the JSON from a file and unmarshals it into a slice.
func LoadGroundTruth(filePath string) ([]GroundTruthEntry, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var entries []GroundTruthEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return entries, nil
}

// Validate compares an archive's entries against ground-truth JSON,
// reporting names that are missing, unexpected, or contain non-printable
// characters.
func Validate(a *pak.Archive, gtPath string) error {
	groundTruth, err := LoadGroundTruth(gtPath)
	if err != nil {
		return err
	}

	names := a.List()
	nameSet := make(map[string]struct{}, len(names))
	for _, name := range names {
		nameSet[name] = struct{}{}
		if ContainsNonASCIIPrintable(name) {
			return fmt.Errorf("non-ASCII printable characters in entry: %s", name)
		}
	}

	gtMap := make(map[string]GroundTruthEntry, len(groundTruth))
	for _, gt := range groundTruth {
		gtMap[gt.Name] = gt
	}

	var missing []GroundTruthEntry
	for name, gt := range gtMap {
		if _, found := nameSet[name]; !found {
			missing = append(missing, gt)
		}
	}

	var extra []string
	for name := range nameSet {
		if _, found := gtMap[name]; !found {
			extra = append(extra, name)
		}
	}

	fmt.Println(strings.Repeat("=", 40))
	fmt.Println("VALIDATION RESULTS")
	fmt.Println(strings.Repeat("=", 40))

	if len(missing) == 0 && len(extra) == 0 {
		fmt.Println("All entries match the ground truth!")
		return nil
	}

	if len(missing) > 0 {
		fmt.Println("Missing entries (in ground truth, not in archive):")
		for _, m := range missing {
			t := "FILE"
			if m.IsDirectory {
				t = "DIR"
			}
			fmt.Printf("  - [%s] %s\n", t, m.Name)
		}
	} else {
		fmt.Println("No missing entries.")
	}

	if len(extra) > 0 {
		fmt.Println("\nExtra entries (in archive, not in ground truth):")
		for _, x := range extra {
			fmt.Printf("  - [FILE] %s\n", x)
		}
	} else {
		fmt.Println("No extra entries.")
	}

	fmt.Println(strings.Repeat("=", 40))
	return nil
}
