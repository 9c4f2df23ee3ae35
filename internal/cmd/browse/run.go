package browse

import (
	"context"
	"flag"
	"fmt"
	"os"

	"s3cli/internal/shared/cliargs"
	"s3cli/internal/shared/config"
	"s3cli/internal/shared/s3client"

	tea "github.com/charmbracelet/bubbletea"
)

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("browse", flag.ContinueOnError)
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Usage: s3cli browse [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Open an interactive browser for the configured bucket.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	fs.PrintDefaults()
}

func Run(args []string) int {
	fs := newFlagSet()

	opts := &config.Options{}
	config.AddFlags(fs, opts)

	fs.Usage = func() {
		printUsage(fs)
	}

	pos, err := cliargs.Parse(fs, args)
	if err != nil {
		return 1
	}

	if len(pos) != 0 {
		fs.Usage()
		return 1
	}

	cfg, err := config.FromEnv(*opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	client, err := s3client.New(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	p := tea.NewProgram(initialModel(client, cfg.Bucket), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		return 1
	}

	return 0
}
