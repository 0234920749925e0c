package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/gallifreyan/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gallifreyan [word]",
		Short: "Circular Gallifreyan Word Renderer",
		Long: `gallifreyan transliterates English words into Gallifreyan letters and
lays them out around a word circle.

It writes an SVG drawing, a text listing of the draw commands, or the
full layout as JSON.

Examples:
  gallifreyan doctor                   # Render doctor.svg into the output directory
  gallifreyan --stdout -f text tardis  # Print the draw commands of "tardis"
  gallifreyan --batch words.txt        # Render every word listed in a file
  gallifreyan --respell knight         # Respell phonetically before rendering`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

// DefaultStateDir is where glyphs and history live unless configured otherwise
func DefaultStateDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "gallifreyan")
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	stateDir := DefaultStateDir()

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.gallifreyan.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", filepath.Join(stateDir, "glyphs"), "Output directory")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", flags.Format, "Output format (svg, text or json)")
	cmd.Flags().BoolVar(&flags.Stdout, "stdout", false, "Write the output to stdout instead of a file")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process words from file (one per line, 'spelling = word' allowed)")
	cmd.Flags().BoolVar(&flags.Force, "force", false, "Re-render words whose output file already exists")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move the output directory into an archive and exit")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List OpenAI chat models usable with --respell")

	// Layout flags
	cmd.Flags().IntVar(&flags.CanvasSize, "canvas-size", flags.CanvasSize, "Width and height of the canvas in pixels")
	cmd.Flags().IntVar(&flags.Indent, "indent", flags.Indent, "Gap between the canvas edge and the word circle in pixels")
	cmd.Flags().StringVar(&flags.StyleFile, "styles", "", "YAML, TOML or JSON file overriding letter styles")
	cmd.Flags().BoolVar(&flags.Decorate, "decorate", false, "Draw vowel and consonant dots and lines")

	// Respelling flags
	cmd.Flags().BoolVar(&flags.Respell, "respell", false, "Respell words phonetically with OpenAI before rendering")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model used for respelling")

	// History flags
	cmd.Flags().IntVar(&flags.History, "history", 0, "Show the N most recent renders and exit")
	cmd.Flags().BoolVar(&flags.NoHistory, "no-history", false, "Do not record renders in the history database")
	cmd.Flags().StringVar(&flags.HistoryDB, "history-db", filepath.Join(stateDir, "history.db"), "Path of the history database")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("layout.canvas_size", cmd.Flags().Lookup("canvas-size"))
	viper.BindPFlag("layout.indent", cmd.Flags().Lookup("indent"))
	viper.BindPFlag("layout.decorate", cmd.Flags().Lookup("decorate"))
	viper.BindPFlag("style.file", cmd.Flags().Lookup("styles"))
	viper.BindPFlag("respell.enabled", cmd.Flags().Lookup("respell"))
	viper.BindPFlag("respell.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("history.database", cmd.Flags().Lookup("history-db"))
}

// ApplyConfig copies config file and environment values into flags the
// user did not set on the command line
func ApplyConfig(cmd *cobra.Command, flags *Flags) {
	changed := func(name string) bool {
		return cmd.Flags().Changed(name)
	}

	if !changed("output") && viper.IsSet("output.directory") {
		flags.OutputDir = viper.GetString("output.directory")
	}
	if !changed("format") && viper.IsSet("output.format") {
		flags.Format = viper.GetString("output.format")
	}
	if !changed("canvas-size") && viper.IsSet("layout.canvas_size") {
		flags.CanvasSize = viper.GetInt("layout.canvas_size")
	}
	if !changed("indent") && viper.IsSet("layout.indent") {
		flags.Indent = viper.GetInt("layout.indent")
	}
	if !changed("decorate") && viper.IsSet("layout.decorate") {
		flags.Decorate = viper.GetBool("layout.decorate")
	}
	if !changed("styles") && viper.IsSet("style.file") {
		flags.StyleFile = viper.GetString("style.file")
	}
	if !changed("respell") && viper.IsSet("respell.enabled") {
		flags.Respell = viper.GetBool("respell.enabled")
	}
	if !changed("openai-model") && viper.IsSet("respell.openai_model") {
		flags.OpenAIModel = viper.GetString("respell.openai_model")
	}
	if !changed("history-db") && viper.IsSet("history.database") {
		flags.HistoryDB = viper.GetString("history.database")
	}
}

// Validate checks flag combinations before any work is done
func (f *Flags) Validate() error {
	if !ValidFormat(f.Format) {
		return fmt.Errorf("unsupported format %q (want one of %v)", f.Format, Formats)
	}
	if f.CanvasSize <= 0 {
		return fmt.Errorf("canvas size must be positive, got %d", f.CanvasSize)
	}
	if f.Indent < 0 || 2*f.Indent >= f.CanvasSize {
		return fmt.Errorf("indent %d does not fit a %dpx canvas", f.Indent, f.CanvasSize)
	}
	if f.Stdout && f.BatchFile != "" && f.Format == "svg" {
		return fmt.Errorf("--stdout with --batch needs --format text or json")
	}
	return nil
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".gallifreyan" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gallifreyan")
	}

	// Environment variables
	viper.SetEnvPrefix("GALLIFREYAN")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("respell.openai_key")
}
