package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/snonux/gallifreyan/internal"
	"codeberg.org/snonux/gallifreyan/internal/batch"
	"codeberg.org/snonux/gallifreyan/internal/cli"
	"codeberg.org/snonux/gallifreyan/internal/layout"
	"codeberg.org/snonux/gallifreyan/internal/render"
	"codeberg.org/snonux/gallifreyan/internal/respell"
	"codeberg.org/snonux/gallifreyan/internal/store"
	"codeberg.org/snonux/gallifreyan/internal/style"
	"codeberg.org/snonux/gallifreyan/internal/transliterate"
)

// Result is one rendered word
type Result struct {
	Word     string                `json:"word"`
	Spelling string                `json:"spelling"`
	Tokens   []transliterate.Token `json:"tokens"`
	Layout   *layout.WordLayout    `json:"layout"`
	Commands []layout.Command      `json:"commands"`
}

// Processor handles the main word processing logic
type Processor struct {
	flags     *cli.Flags
	table     *style.Table
	engine    *layout.Engine
	cache     *LayoutCache
	respeller respell.Respeller
	history   *store.Store

	out io.Writer // artifacts in --stdout mode
	log io.Writer // progress lines
}

// NewProcessor creates a new word processor
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	table := style.Default()
	if flags.StyleFile != "" {
		var err error
		table, err = style.LoadFile(flags.StyleFile)
		if err != nil {
			return nil, err
		}
	}

	p := &Processor{
		flags:  flags,
		table:  table,
		engine: layout.NewEngine(table, layout.OptionsFor(flags.CanvasSize, flags.Indent)),
		cache:  NewLayoutCache(),
		out:    os.Stdout,
		log:    os.Stdout,
	}

	// Keep stdout clean for the artifact
	if flags.Stdout {
		p.log = os.Stderr
	}

	if flags.Respell {
		openAI := respell.NewOpenAI(cli.GetOpenAIKey(), flags.OpenAIModel)
		p.respeller = respell.WithFallback(openAI, respell.Identity{})
	}

	if !flags.NoHistory && flags.HistoryDB != "" {
		history, err := store.Open(flags.HistoryDB)
		if err != nil {
			// Don't fail rendering if history is unavailable
			fmt.Fprintf(os.Stderr, "Warning: History disabled: %v\n", err)
		} else {
			p.history = history
		}
	}

	return p, nil
}

// Close releases the history database
func (p *Processor) Close() error {
	if p.history == nil {
		return nil
	}
	return p.history.Close()
}

// Render turns word into its layout and draw commands
func (p *Processor) Render(word string) (*Result, error) {
	return p.render(batch.WordEntry{Word: word})
}

func (p *Processor) render(entry batch.WordEntry) (*Result, error) {
	word, err := transliterate.Normalize(entry.Word)
	if err != nil && entry.Spelling == "" {
		return nil, fmt.Errorf("invalid word '%s': %w", entry.Word, err)
	}
	if err != nil {
		// Only the artifact name comes from the word
		word = entry.Word
	}

	spelling := word
	if entry.Spelling != "" {
		spelling, err = transliterate.Normalize(entry.Spelling)
		if err != nil {
			return nil, fmt.Errorf("invalid spelling '%s': %w", entry.Spelling, err)
		}
	} else if p.respeller != nil {
		spelling, err = p.respeller.Respell(context.Background(), word)
		if err != nil {
			return nil, fmt.Errorf("respelling '%s' failed: %w", word, err)
		}
		if spelling != word {
			fmt.Fprintf(p.log, "  Respelled as: %s\n", spelling)
		}
	}

	tokens, wl, ok := p.cache.Get(spelling)
	if !ok {
		tokens = transliterate.Translate(spelling)
		wl, err = p.engine.Layout(tokens)
		if err != nil {
			return nil, fmt.Errorf("layout of '%s' failed: %w", spelling, err)
		}
		p.cache.Add(spelling, tokens, wl)
	}

	return &Result{
		Word:     word,
		Spelling: spelling,
		Tokens:   tokens,
		Layout:   wl,
		Commands: wl.Commands(),
	}, nil
}

// ProcessSingleWord processes a single word from command line
func (p *Processor) ProcessSingleWord(word string) error {
	if err := p.prepareOutput(); err != nil {
		return err
	}

	fmt.Fprintf(p.log, "\nProcessing: %s\n", word)
	_, err := p.processEntry(batch.WordEntry{Word: word})
	return err
}

// ProcessBatch processes multiple words from a batch file
func (p *Processor) ProcessBatch() error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	if err := p.prepareOutput(); err != nil {
		return err
	}

	// Track statistics
	skippedCount := 0
	processedCount := 0
	errorCount := 0

	for i, entry := range entries {
		fmt.Fprintf(p.log, "\nProcessing %d/%d: %s\n", i+1, len(entries), entry.Word)

		if os.Getenv("DEBUG_BATCH") != "" {
			fmt.Fprintf(p.log, "  [DEBUG] Checking for %s\n", p.artifactPath(entry.Word))
		}
		if !p.flags.Stdout && !p.flags.Force && p.isRendered(entry.Word) {
			fmt.Fprintf(p.log, "  ✓ Skipping '%s' - already rendered\n", entry.Word)
			skippedCount++
			continue
		}

		if _, err := p.processEntry(entry); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing '%s': %v\n", entry.Word, err)
			errorCount++
			// Continue with next word
		} else {
			processedCount++
		}
	}

	// Print summary
	fmt.Fprintf(p.log, "\n=== Batch Processing Summary ===\n")
	fmt.Fprintf(p.log, "Total words: %d\n", len(entries))
	fmt.Fprintf(p.log, "Processed: %d\n", processedCount)
	fmt.Fprintf(p.log, "Skipped (already rendered): %d\n", skippedCount)
	if errorCount > 0 {
		fmt.Fprintf(p.log, "Errors: %d\n", errorCount)
	}
	fmt.Fprintf(p.log, "================================\n")

	return nil
}

// processEntry renders one entry, writes its artifact and records it
func (p *Processor) processEntry(entry batch.WordEntry) (*Result, error) {
	res, err := p.render(entry)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(p.log, "  Letters: %s\n", transliterate.Join(res.Tokens))

	path, err := p.writeArtifact(res)
	if err != nil {
		return nil, err
	}
	if path != "" {
		fmt.Fprintf(p.log, "  Saved %s\n", path)
	}

	p.record(res)
	return res, nil
}

func (p *Processor) prepareOutput() error {
	if p.flags.Stdout {
		return nil
	}
	// Create output directory (including parent directories)
	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// artifactPath returns where the artifact for word is written
func (p *Processor) artifactPath(word string) string {
	return filepath.Join(p.flags.OutputDir, internal.SanitizeFilename(word)+"."+extension(p.flags.Format))
}

func (p *Processor) isRendered(word string) bool {
	_, err := os.Stat(p.artifactPath(word))
	return err == nil
}

func extension(format string) string {
	if format == "text" {
		return "txt"
	}
	return format
}

// writeArtifact writes res in the configured format and returns the file
// path, or "" when writing to stdout
func (p *Processor) writeArtifact(res *Result) (string, error) {
	if p.flags.Stdout {
		return "", p.write(p.out, res)
	}

	path := p.artifactPath(res.Word)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}

	if err := p.write(f, res); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close output file: %w", err)
	}

	return path, nil
}

func (p *Processor) write(w io.Writer, res *Result) error {
	switch p.flags.Format {
	case "svg":
		opts := render.DefaultOptions()
		opts.Decorate = p.flags.Decorate
		return render.WriteSVG(w, res.Layout, p.flags.CanvasSize, opts)
	case "text":
		return render.WriteText(w, res.Word, res.Tokens, res.Commands)
	case "json":
		return render.WriteJSON(w, res)
	default:
		return fmt.Errorf("unsupported format: %s", p.flags.Format)
	}
}

// record saves res in the history database, if enabled
func (p *Processor) record(res *Result) {
	if p.history == nil {
		return
	}

	rec := store.Record{
		ID:        internal.GenerateRenderID(res.Word),
		Word:      res.Word,
		Spelling:  res.Spelling,
		Tokens:    res.Tokens,
		Commands:  len(res.Commands),
		Format:    p.flags.Format,
		CreatedAt: time.Now(),
	}
	if err := p.history.Save(context.Background(), rec); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to record history: %v\n", err)
	}
}

// ErrHistoryDisabled is returned by ShowHistory without a history database
var ErrHistoryDisabled = errors.New("history is disabled")

// ShowHistory prints the most recent renders
func (p *Processor) ShowHistory(limit int) error {
	if p.history == nil {
		return ErrHistoryDisabled
	}

	records, err := p.history.Recent(context.Background(), limit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(p.out, "No renders recorded yet")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(p.out, "%s  %-20s %-5s %s\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"), r.Word, r.Format, transliterate.Join(r.Tokens))
	}
	return nil
}
