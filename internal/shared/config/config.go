// Package config loads the connection settings every command needs:
// endpoint, credentials and default bucket, from the environment or a
// .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	envEndpoint  = "S3_ENDPOINT"
	envAccessKey = "S3_ACCESS_KEY"
	envSecretKey = "S3_SECRET_KEY"
	envBucket    = "S3_BUCKET"
	envRegion    = "S3_REGION"

	defaultRegion = "us-east-1"
)

var ErrMissingEnv = errors.New("missing required environment variable")

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Insecure  bool
}

// FromEnv builds the configuration from environment variables, loading a
// .env file first if one exists. It fails on the first missing variable.
func FromEnv(opts Options) (*Config, error) {
	_ = godotenv.Load()

	endpoint, err := requireEnv(envEndpoint)
	if err != nil {
		return nil, err
	}
	accessKey, err := requireEnv(envAccessKey)
	if err != nil {
		return nil, err
	}
	secretKey, err := requireEnv(envSecretKey)
	if err != nil {
		return nil, err
	}
	bucket, err := requireEnv(envBucket)
	if err != nil {
		return nil, err
	}

	region := opts.Region
	if region == "" {
		region = os.Getenv(envRegion)
	}
	if region == "" {
		region = defaultRegion
	}

	return &Config{
		Endpoint:  normalizeEndpoint(endpoint, opts.Insecure),
		AccessKey: accessKey,
		SecretKey: secretKey,
		Bucket:    bucket,
		Region:    region,
		Insecure:  opts.Insecure,
	}, nil
}

func requireEnv(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingEnv, name)
	}
	return v, nil
}

// normalizeEndpoint makes sure the endpoint carries a scheme. Bare hosts
// default to https, or http when TLS verification is disabled anyway.
func normalizeEndpoint(endpoint string, insecure bool) string {
	if strings.Contains(endpoint, "://") {
		return endpoint
	}
	if insecure {
		return "http://" + endpoint
	}
	return "https://" + endpoint
}
