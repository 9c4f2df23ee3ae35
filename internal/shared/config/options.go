package config

import "flag"

type Options struct {
	Region   string
	Insecure bool
}

func AddFlags(fs *flag.FlagSet, opts *Options) {
	fs.StringVar(&opts.Region, "region", "", "Region sent to the store (overrides S3_REGION)")
	fs.BoolVar(&opts.Insecure, "insecure", false, "Skip TLS certificate verification (testing only)")
}
