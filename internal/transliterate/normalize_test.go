package transliterate

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"lowercase", "doctor", "doctor", false},
		{"uppercase", "TARDIS", "tardis", false},
		{"surrounding space", "  gallifrey\t\n", "gallifrey", false},
		{"acute accent", "Café", "cafe", false},
		{"umlaut", "Über", "uber", false},
		{"cedilla", "façade", "facade", false},
		{"empty", "", "", true},
		{"only space", "   ", "", true},
		{"inner space", "time lord", "", true},
		{"digits", "k9", "", true},
		{"cyrillic", "ябълка", "", true},
		{"punctuation", "who?", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("Normalize(%q) error = %v, want ErrInvalidInput", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("abcxyz"); err != nil {
		t.Errorf("Validate(\"abcxyz\") = %v, want nil", err)
	}

	err := Validate("ab-c")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Validate(\"ab-c\") = %v, want ErrInvalidInput", err)
	}
	if want := "invalid input: unsupported character '-' at position 2"; err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}
