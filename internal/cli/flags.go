package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	OutputDir  string
	Format     string
	Stdout     bool
	BatchFile  string
	Force      bool
	Archive    bool
	ListModels bool

	// Layout flags
	CanvasSize int
	Indent     int
	StyleFile  string
	Decorate   bool

	// Respelling flags
	Respell     bool
	OpenAIModel string

	// History flags
	History   int
	NoHistory bool
	HistoryDB string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Format:      "svg",
		CanvasSize:  1000,
		Indent:      100,
		OpenAIModel: "gpt-4o-mini",
	}
}

// Formats lists the supported output formats
var Formats = []string{"svg", "text", "json"}

// ValidFormat reports whether format is one of Formats
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
