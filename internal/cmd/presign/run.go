package presign

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"s3cli/internal/s3uri"
	"s3cli/internal/shared/cliargs"
	"s3cli/internal/shared/config"
	"s3cli/internal/shared/s3client"
	"s3cli/internal/shared/s3ops"
)

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("presign", flag.ContinueOnError)
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Usage: s3cli presign [flags] <key>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Print a time-limited download URL for a key. The key is not checked")
	fmt.Fprintln(os.Stderr, "for existence; a URL for an absent key fails on first access.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  s3cli presign images/cat.jpg")
	fmt.Fprintln(os.Stderr, "  s3cli presign -expires 3600 backups/dump.tgz")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	fs.PrintDefaults()
}

func Run(args []string) int {
	fs := newFlagSet()
	expires := fs.Int("expires", 300, "Expiration time in seconds")

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

	if *expires <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -expires must be a positive number of seconds, got %d\n", *expires)
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

	url, err := s3ops.PresignGet(ctx, s3client.NewPresigner(client), bucket, key, time.Duration(*expires)*time.Second)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Bare URL on stdout so the output can be piped.
	fmt.Println(url)
	return 0
}
