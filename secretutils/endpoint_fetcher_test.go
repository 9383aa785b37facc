package secretutils

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/aws/aws-sdk-go/service/ssm/ssmiface"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewEndpointFetcher(t *testing.T) {
	f := NewEndpointFetcher("us-east-1", "/relay/endpoint")

	assert.Equal(t, "us-east-1", f.Region)
	assert.Equal(t, "/relay/endpoint", f.Parameter)
}

type successMockSSMClient struct {
	ssmiface.SSMAPI
}

func (m *successMockSSMClient) GetParameter(input *ssm.GetParameterInput) (*ssm.GetParameterOutput, error) {
	return &ssm.GetParameterOutput{
		Parameter: &ssm.Parameter{
			Value: aws.String("https://mainnet.example.io/v3/sekrit"),
		},
	}, nil
}

type emptyMockSSMClient struct {
	ssmiface.SSMAPI
}

func (m *emptyMockSSMClient) GetParameter(input *ssm.GetParameterInput) (*ssm.GetParameterOutput, error) {
	return &ssm.GetParameterOutput{}, nil
}

type errorMockSSMClient struct {
	ssmiface.SSMAPI
}

func (m *errorMockSSMClient) GetParameter(input *ssm.GetParameterInput) (*ssm.GetParameterOutput, error) {
	return nil, errors.New("test fail")
}

func TestEndpointFetcher_Fetch(t *testing.T) {
	f := NewEndpointFetcher("us-east-1", "/relay/endpoint")
	f.svcFunc = func(client.ConfigProvider) ssmiface.SSMAPI { return &successMockSSMClient{} }

	endpoint, err := f.Fetch()
	assert.NoError(t, err)
	assert.Equal(t, "https://mainnet.example.io/v3/sekrit", endpoint)
}

func TestEndpointFetcher_Fetch_noParameter(t *testing.T) {
	f := NewEndpointFetcher("us-east-1", "")

	_, err := f.Fetch()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parameter is required")
}

func TestEndpointFetcher_Fetch_noValue(t *testing.T) {
	f := NewEndpointFetcher("us-east-1", "/relay/endpoint")
	f.svcFunc = func(client.ConfigProvider) ssmiface.SSMAPI { return &emptyMockSSMClient{} }

	_, err := f.Fetch()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "has no value")
}

func TestEndpointFetcher_Fetch_error(t *testing.T) {
	f := NewEndpointFetcher("us-east-1", "/relay/endpoint")
	f.svcFunc = func(client.ConfigProvider) ssmiface.SSMAPI { return &errorMockSSMClient{} }

	_, err := f.Fetch()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed getting parameter '/relay/endpoint'")
}
