// Package secretutils retrieves secret configuration values from aws ssm
// parameter store so they never appear in plain environment variables.
package secretutils

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/aws/aws-sdk-go/service/ssm/ssmiface"
	"github.com/pkg/errors"
)

// EndpointFetcher fetches an endpoint url stored as a (SecureString) ssm
// parameter.
type EndpointFetcher struct {
	Region    string
	Parameter string

	svcFunc func(client.ConfigProvider) ssmiface.SSMAPI
}

// NewEndpointFetcher returns a fetcher for the named parameter. Region may be
// empty, in which case the session falls back to the environment's region.
func NewEndpointFetcher(region string, parameter string) *EndpointFetcher {
	return &EndpointFetcher{
		Region:    region,
		Parameter: parameter,
	}
}

// svc is used internally to assist stubs on ssm for testing
func (fetcher *EndpointFetcher) svc(p client.ConfigProvider) ssmiface.SSMAPI {
	if fetcher.svcFunc != nil {
		return fetcher.svcFunc(p)
	}

	return ssm.New(p)
}

// Fetch returns the decrypted parameter value.
func (fetcher *EndpointFetcher) Fetch() (string, error) {
	if fetcher.Parameter == "" {
		return "", errors.New("parameter is required")
	}

	config := aws.NewConfig()
	if fetcher.Region != "" {
		config = config.WithRegion(fetcher.Region)
	}

	s, err := session.NewSession(config)
	if err != nil {
		return "", errors.Wrap(err, "failed getting session")
	}

	svc := fetcher.svc(s)

	output, err := svc.GetParameter(&ssm.GetParameterInput{
		Name:           aws.String(fetcher.Parameter),
		WithDecryption: aws.Bool(true),
	})

	if err != nil {
		return "", errors.Wrapf(err, "failed getting parameter '%s'", fetcher.Parameter)
	}

	if output.Parameter == nil || output.Parameter.Value == nil {
		return "", errors.Errorf("parameter '%s' has no value", fetcher.Parameter)
	}

	return aws.StringValue(output.Parameter.Value), nil
}
