package relay

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/chainfront/rpc-relay/secretutils"
)

// Environment variables read at cold start.
const (
	EnvEndpoint         = "RPC_ENDPOINT"
	EnvEndpointSSMParam = "RPC_ENDPOINT_SSM_PARAM"
	EnvAllowOrigin      = "ALLOW_ORIGIN"
	EnvRegion           = "AWS_REGION"
)

// DefaultAllowOrigin is used when no origin is configured.
const DefaultAllowOrigin = "*"

// Config holds the process-wide relay configuration. It is read once at cold
// start and never mutated afterwards.
type Config struct {
	UpstreamEndpoint string
	AllowOrigin      string
}

// endpointFetch resolves the upstream endpoint from a named secret parameter.
type endpointFetch func(region string, parameter string) (string, error)

// LoadConfig builds a Config from the environment.
//
// The upstream endpoint comes from RPC_ENDPOINT, or, when
// RPC_ENDPOINT_SSM_PARAM is set, from the named ssm parameter (decrypted).
// A config without an endpoint is an error; the function should fail its cold
// start rather than relay into nowhere.
func LoadConfig() (*Config, error) {
	return loadConfig(fetchFromSSM)
}

func loadConfig(fetch endpointFetch) (*Config, error) {
	config := new(Config)

	config.AllowOrigin = os.Getenv(EnvAllowOrigin)
	if config.AllowOrigin == "" {
		config.AllowOrigin = DefaultAllowOrigin
	}

	if parameter := os.Getenv(EnvEndpointSSMParam); parameter != "" {
		endpoint, err := fetch(os.Getenv(EnvRegion), parameter)
		if err != nil {
			return nil, errors.Wrapf(err, "failed fetching endpoint from parameter '%s'", parameter)
		}

		config.UpstreamEndpoint = strings.TrimSpace(endpoint)
	} else {
		// TrimSpace guards against stray newlines pasted into the env var.
		config.UpstreamEndpoint = strings.TrimSpace(os.Getenv(EnvEndpoint))
	}

	if config.UpstreamEndpoint == "" {
		return nil, errors.Errorf("upstream endpoint is required, set %s or %s", EnvEndpoint, EnvEndpointSSMParam)
	}

	return config, nil
}

func fetchFromSSM(region string, parameter string) (string, error) {
	return secretutils.NewEndpointFetcher(region, parameter).Fetch()
}
