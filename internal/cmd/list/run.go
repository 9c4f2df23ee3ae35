package list

import (
	"context"
	"flag"
	"fmt"
	"os"

	"s3cli/internal/shared/cliargs"
	"s3cli/internal/shared/config"
	"s3cli/internal/shared/s3client"
	"s3cli/internal/shared/s3ops"
	"s3cli/internal/shared/ui"
)

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("list", flag.ContinueOnError)
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Usage: s3cli list [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "List keys in the configured bucket, all of them or those under -prefix.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  s3cli list")
	fmt.Fprintln(os.Stderr, "  s3cli list -prefix images/")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	fs.PrintDefaults()
}

func Run(args []string) int {
	fs := newFlagSet()
	prefix := fs.String("prefix", "", "Only list keys starting with this prefix")

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

	ctx := context.Background()
	client, err := s3client.New(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	objects, err := s3ops.ListObjects(ctx, client, cfg.Bucket, *prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if len(objects) == 0 {
		fmt.Println("(empty)")
		return 0
	}

	tbl := ui.NewTable("KEY", "SIZE", "LAST MODIFIED")
	for _, obj := range objects {
		modified := ""
		if !obj.LastModified.IsZero() {
			modified = obj.LastModified.Format("2006-01-02 15:04:05")
		}
		tbl.AddRow(obj.Key, ui.FormatSize(obj.Size), modified)
	}
	fmt.Print(tbl.Render())
	return 0
}
