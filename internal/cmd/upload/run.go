package upload

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
	return flag.NewFlagSet("upload", flag.ContinueOnError)
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Usage: s3cli upload [flags] <local-path>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Upload a file to the configured bucket. Without -key the object is")
	fmt.Fprintln(os.Stderr, "stored under the file's base name, prefixed with -prefix if given.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  s3cli upload image.jpg -prefix images/")
	fmt.Fprintln(os.Stderr, "  s3cli upload report.pdf -key docs/2026/report.pdf")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	fs.PrintDefaults()
}

func Run(args []string) int {
	fs := newFlagSet()
	key := fs.String("key", "", "Explicit object key (defaults to prefix + file base name)")
	prefix := fs.String("prefix", "", "Key prefix when no explicit key is given")

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

	localPath := pos[0]
	if _, err := os.Stat(localPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	cfg, err := config.FromEnv(*opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	bucket, objectKey, err := s3uri.Resolve(cfg.Bucket, s3ops.ResolveKey(localPath, *key, *prefix))
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

	fmt.Printf("Uploading %s -> s3://%s/%s\n", localPath, bucket, objectKey)

	res, err := s3ops.UploadFile(ctx, client, localPath, bucket, objectKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ui.Failure(fmt.Sprintf("Upload failed: %v", err)))
		return 1
	}

	fmt.Println(ui.Success(fmt.Sprintf("Uploaded %s (%s, %s)", res.Key, ui.FormatSize(res.Size), res.ContentType)))
	return 0
}
