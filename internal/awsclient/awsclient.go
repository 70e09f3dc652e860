// Package awsclient builds the AWS SDK clients shared by the catalog and the
// translator.
package awsclient

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/translate"
)

type Options struct {
	// Region is where the Bedrock runtime is called.
	Region  string
	Profile string
	// Timeout bounds both connection setup and the whole request.
	Timeout time.Duration
	// CatalogRegion pins the Bedrock control plane and Amazon Translate.
	// Empty uses the region resolved by the SDK default chain, and Region
	// when the chain resolves none.
	CatalogRegion string
}

// Clients holds one client per remote service.
type Clients struct {
	Runtime   *bedrockruntime.Client
	Bedrock   *bedrock.Client
	Translate *translate.Client
}

// LoadConfig resolves credentials and the default region through the SDK
// default chain. Every call made with the returned config is attempted
// exactly once.
func LoadConfig(ctx context.Context, opts Options) (aws.Config, error) {
	httpClient := awshttp.NewBuildableClient()
	if opts.Timeout > 0 {
		httpClient = httpClient.
			WithTimeout(opts.Timeout).
			WithDialerOptions(func(d *net.Dialer) { d.Timeout = opts.Timeout })
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithHTTPClient(httpClient),
		config.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}

// New creates the service clients from cfg. The runtime client always uses
// opts.Region; the catalog clients use CatalogRegion.
func New(cfg aws.Config, opts Options) *Clients {
	catalogRegion := CatalogRegion(cfg, opts)

	return &Clients{
		Runtime: bedrockruntime.NewFromConfig(cfg, func(o *bedrockruntime.Options) {
			o.Region = opts.Region
		}),
		Bedrock: bedrock.NewFromConfig(cfg, func(o *bedrock.Options) {
			o.Region = catalogRegion
		}),
		Translate: translate.NewFromConfig(cfg, func(o *translate.Options) {
			o.Region = catalogRegion
		}),
	}
}

// CatalogRegion returns the region used for listing languages and models.
func CatalogRegion(cfg aws.Config, opts Options) string {
	switch {
	case opts.CatalogRegion != "":
		return opts.CatalogRegion
	case cfg.Region != "":
		return cfg.Region
	default:
		return opts.Region
	}
}
