package main

import (
	"fmt"
	"os"
	"strings"

	"s3cli/internal/cmd/browse"
	"s3cli/internal/cmd/head"
	"s3cli/internal/cmd/list"
	"s3cli/internal/cmd/overwrite"
	"s3cli/internal/cmd/presign"
	"s3cli/internal/cmd/remove"
	"s3cli/internal/cmd/upload"
)

const binaryName = "s3cli"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	sub := strings.ToLower(strings.TrimSpace(os.Args[1]))
	args := os.Args[2:]

	switch sub {
	case "upload", "up":
		os.Exit(upload.Run(args))
	case "presign", "url":
		os.Exit(presign.Run(args))
	case "head", "stat":
		os.Exit(head.Run(args))
	case "list", "ls":
		os.Exit(list.Run(args))
	case "delete", "rm":
		os.Exit(remove.Run(args))
	case "overwrite":
		os.Exit(overwrite.Run(args))
	case "browse":
		os.Exit(browse.Run(args))
	default:
		fmt.Fprintf(os.Stderr, "Unknown subcommand: %q\n\n", sub)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", binaryName)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  upload, up     Upload a file to the bucket")
	fmt.Fprintln(os.Stderr, "  presign, url   Create a temporary GET link for a key")
	fmt.Fprintln(os.Stderr, "  head, stat     Show an object's metadata")
	fmt.Fprintln(os.Stderr, "  list, ls       List keys, optionally under a prefix")
	fmt.Fprintln(os.Stderr, "  delete, rm     Delete an object")
	fmt.Fprintln(os.Stderr, "  overwrite      Replace an object's content with a local file")
	fmt.Fprintln(os.Stderr, "  browse         Open an interactive bucket browser")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Configuration comes from S3_ENDPOINT, S3_ACCESS_KEY, S3_SECRET_KEY")
	fmt.Fprintln(os.Stderr, "and S3_BUCKET (optionally S3_REGION), or a .env file.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintf(os.Stderr, "Use \"%s <command> -h\" for command-specific help.\n", binaryName)
}
