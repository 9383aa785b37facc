package relay

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
)

// RequestMetaData stores details about the current lambda invocation for
// diagnostic output.
type RequestMetaData struct {
	FunctionName    string
	FunctionVersion string
	RequestID       string
}

// GetRequestMetaData returns MetaData extracted from the current lambda
// context. Outside a lambda runtime the fields are empty.
func GetRequestMetaData(ctx context.Context) RequestMetaData {
	md := RequestMetaData{
		FunctionName:    lambdacontext.FunctionName,
		FunctionVersion: lambdacontext.FunctionVersion,
	}

	if lc, ok := lambdacontext.FromContext(ctx); ok {
		md.RequestID = lc.AwsRequestID
	}

	return md
}
