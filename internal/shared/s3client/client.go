// Package s3client turns the loaded configuration into a ready-to-use
// S3 client for an S3-compatible endpoint.
package s3client

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"s3cli/internal/shared/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// New builds an S3 client pointed at the configured endpoint with static
// credentials. Path-style addressing is forced because most S3-compatible
// stores (MinIO included) do not resolve virtual-host bucket names.
func New(ctx context.Context, cfg *config.Config) (*s3.Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	}

	if cfg.Insecure {
		loadOpts = append(loadOpts, awsconfig.WithHTTPClient(insecureHTTPClient()))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return client, nil
}

// NewPresigner wraps a client for generating presigned URLs.
func NewPresigner(client *s3.Client) *s3.PresignClient {
	return s3.NewPresignClient(client)
}

func insecureHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		},
	}
}
