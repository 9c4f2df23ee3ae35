package head

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"s3cli/internal/s3uri"
	"s3cli/internal/shared/cliargs"
	"s3cli/internal/shared/config"
	"s3cli/internal/shared/s3client"
	"s3cli/internal/shared/s3ops"
	"s3cli/internal/shared/ui"
)

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("head", flag.ContinueOnError)
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Usage: s3cli head [flags] <key>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Show an object's metadata without downloading it.")
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

	meta, err := s3ops.HeadObject(ctx, client, bucket, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	for _, f := range metaFields(meta) {
		printField(f.label, f.value)
	}
	return 0
}

type field struct {
	label string
	value string
}

// metaFields flattens object metadata into display order, with user
// metadata keys sorted for stable output.
func metaFields(meta *s3ops.ObjectMetadata) []field {
	fields := []field{
		{"Key", meta.Key},
		{"Size", fmt.Sprintf("%d (%s)", meta.Size, ui.FormatSize(meta.Size))},
		{"ContentType", meta.ContentType},
		{"ETag", meta.ETag},
	}
	if !meta.LastModified.IsZero() {
		fields = append(fields, field{"LastModified", meta.LastModified.Format("2006-01-02 15:04:05 MST")})
	}
	if meta.StorageClass != "" {
		fields = append(fields, field{"StorageClass", meta.StorageClass})
	}
	keys := make([]string, 0, len(meta.Metadata))
	for k := range meta.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, field{"Meta:" + k, meta.Metadata[k]})
	}
	return fields
}

func printField(label, value string) {
	fmt.Printf("%s %s\n", ui.LabelStyle.Render(fmt.Sprintf("%-13s", label+":")), value)
}
