package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/gallifreyan/internal/archive"
	"codeberg.org/snonux/gallifreyan/internal/cli"
	"codeberg.org/snonux/gallifreyan/internal/models"
	"codeberg.org/snonux/gallifreyan/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Config file and environment fill in what the command line left out
	cli.ApplyConfig(cmd, flags)

	// Handle --archive flag
	if flags.Archive {
		if _, err := archive.ArchiveOutputs(flags.OutputDir, os.Stdout); err != nil {
			return fmt.Errorf("failed to archive glyphs: %w", err)
		}
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	if err := flags.Validate(); err != nil {
		return err
	}

	// Create processor
	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}
	defer proc.Close()

	// Handle --history flag
	if flags.History > 0 {
		return proc.ShowHistory(flags.History)
	}

	// Handle batch processing
	if flags.BatchFile != "" {
		if err := proc.ProcessBatch(); err != nil {
			return err
		}
	} else if len(args) > 0 {
		// Process single word
		if err := proc.ProcessSingleWord(args[0]); err != nil {
			return err
		}
	} else {
		return cmd.Help()
	}

	if !flags.Stdout {
		fmt.Printf("\nDone! Glyphs saved to: %s\n", flags.OutputDir)
	}
	return nil
}
