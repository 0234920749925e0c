package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadBatchFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		want        []WordEntry
	}{
		{
			name:        "empty file",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "only whitespace",
			fileContent: "   \n\t\r\n   ",
			want:        nil,
		},
		{
			name: "plain words",
			fileContent: `doctor
tardis
gallifrey`,
			want: []WordEntry{
				{Word: "doctor"},
				{Word: "tardis"},
				{Word: "gallifrey"},
			},
		},
		{
			name: "respellings",
			fileContent: `fiziks = physics
nite = knight`,
			want: []WordEntry{
				{Word: "physics", Spelling: "fiziks"},
				{Word: "knight", Spelling: "nite"},
			},
		},
		{
			name: "comments and blank lines",
			fileContent: `
# companions
rose

  martha  
# end
`,
			want: []WordEntry{
				{Word: "rose"},
				{Word: "martha"},
			},
		},
		{
			name:        "windows line endings",
			fileContent: "rose\r\nfiziks = physics\r\namy",
			want: []WordEntry{
				{Word: "rose"},
				{Word: "physics", Spelling: "fiziks"},
				{Word: "amy"},
			},
		},
		{
			name:        "empty spelling part",
			fileContent: "= donna",
			want: []WordEntry{
				{Word: "donna"},
			},
		},
		{
			name:        "empty word part is ignored",
			fileContent: "clara =\nbill",
			want: []WordEntry{
				{Word: "bill"},
			},
		},
		{
			name:        "multiple equals signs",
			fileContent: `a = b = c`,
			want: []WordEntry{
				{Word: "b = c", Spelling: "a"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := filepath.Join(t.TempDir(), "test.txt")
			if err := os.WriteFile(tmpFile, []byte(tt.fileContent), 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			got, err := ReadBatchFile(tmpFile)
			if err != nil {
				t.Fatalf("ReadBatchFile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadBatchFile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadBatchFile_FileNotFound(t *testing.T) {
	_, err := ReadBatchFile("/nonexistent/file.txt")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestWordEntrySource(t *testing.T) {
	if got := (WordEntry{Word: "physics", Spelling: "fiziks"}).Source(); got != "fiziks" {
		t.Errorf("Source() = %q, want fiziks", got)
	}
	if got := (WordEntry{Word: "rose"}).Source(); got != "rose" {
		t.Errorf("Source() = %q, want rose", got)
	}
}
