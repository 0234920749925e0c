package style

import (
	"fmt"

	"github.com/spf13/viper"

	"codeberg.org/snonux/gallifreyan/internal/transliterate"
)

// fileEntry is one letter in a style file.
type fileEntry struct {
	Shape string `mapstructure:"shape"`
	Dots  int    `mapstructure:"dots"`
	Lines int    `mapstructure:"lines"`
}

// LoadFile reads letter styles from a config file and layers them over the
// default table. The file holds a "letters" map, for example in YAML:
//
//	letters:
//	  th: {shape: half_rim, dots: 0, lines: 2}
//	  q:  {shape: inside, dots: 1}
//
// The format is picked from the file extension.
func LoadFile(path string) (*Table, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read style file: %w", err)
	}

	var raw map[string]fileEntry
	if err := v.UnmarshalKey("letters", &raw); err != nil {
		return nil, fmt.Errorf("failed to parse style file: %w", err)
	}

	overrides := make(map[transliterate.Token]LetterStyle, len(raw))
	for name, e := range raw {
		if !transliterate.IsToken(name) {
			return nil, fmt.Errorf("style file %s: %w: %q", path, ErrUnknownToken, name)
		}
		shape, err := ParseShape(e.Shape)
		if err != nil {
			return nil, fmt.Errorf("style file %s, letter %q: %w", path, name, err)
		}
		overrides[transliterate.Token(name)] = LetterStyle{Shape: shape, Dots: e.Dots, Lines: e.Lines}
	}

	return Default().With(overrides)
}
