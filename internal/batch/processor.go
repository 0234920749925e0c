package batch

import (
	"fmt"
	"os"
	"strings"
)

// WordEntry is one word of a batch file
type WordEntry struct {
	Word string
	// Spelling is drawn instead of Word when set
	Spelling string
}

// Source returns the text to transliterate
func (e WordEntry) Source() string {
	if e.Spelling != "" {
		return e.Spelling
	}
	return e.Word
}

// ReadBatchFile reads words from a file and returns WordEntry slice
// Supports formats:
// - Word only: "doctor"
// - With respelling: "fiziks = physics" (draws "fiziks", names the output "physics")
// Blank lines and lines starting with '#' are skipped.
func ReadBatchFile(filename string) ([]WordEntry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []WordEntry

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !strings.Contains(line, "=") {
			entries = append(entries, WordEntry{Word: line})
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		spelling := strings.TrimSpace(parts[0])
		word := strings.TrimSpace(parts[1])

		switch {
		case spelling != "" && word != "":
			entries = append(entries, WordEntry{Word: word, Spelling: spelling})
		case word != "":
			// "= word" carries no respelling
			entries = append(entries, WordEntry{Word: word})
		}
		// Ignore lines with an empty word part
	}

	return entries, nil
}
