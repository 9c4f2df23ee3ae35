package remove

import (
	"context"
	"flag"
	"fmt"
	"os"

	"s3cli/internal/s3uri"
	"s3cli/internal/shared/cliargs"
	"s3cli/internal/shared/config"
	"s3cli/internal/shared/s3client"
	"s3cli/internal/shared/s3ops"
	"s3cli/internal/shared/ui"
)

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("delete", flag.ContinueOnError)
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Usage: s3cli delete [flags] <key>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Remove an object. Deleting an absent key is not an error.")
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

	if len(pos) != 1 {
		fs.Usage()
		return 1
	}

	cfg, err := config.FromEnv(*opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	bucket, key, err := s3uri.Resolve(cfg.Bucket, pos[0])
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

	if err := s3ops.DeleteObject(ctx, client, bucket, key); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ui.Failure(fmt.Sprintf("Delete failed: %v", err)))
		return 1
	}

	fmt.Println(ui.Success("Deleted " + key))
	return 0
}
