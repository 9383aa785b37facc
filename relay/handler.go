package relay

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"

	"github.com/chainfront/rpc-relay/proxy"
)

// Handler translates one inbound api gateway event into one outbound call to
// the configured upstream endpoint and translates the outcome back.
//
// It is stateless across invocations and safe for the lambda runtime's
// concurrent invocation model.
type Handler struct {
	config   *Config
	upstream *Upstream
	router   *proxy.Router
}

// NewHandler returns a Handler wired for the given config.
func NewHandler(config *Config) *Handler {
	handler := &Handler{
		config:   config,
		upstream: NewUpstream(config.UpstreamEndpoint),
	}

	router := &proxy.Router{}
	router.OPTIONS(".*", handler.preflight)
	router.POST(".*", handler.forward)
	router.AddCatchAllHandler(handler.methodNotAllowed)
	router.AddErrorHandler(handler.internalError)

	handler.router = router
	return handler
}

// Handle is the lambda entrypoint. It never returns a non-nil error; every
// failure is converted into a structured response.
func (handler *Handler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if !handler.router.Valid() {
		return handler.internalError(ctx, request, handler.router.BuildErrors())
	}

	return handler.router.Route(ctx, request)
}

// preflight answers a CORS preflight without calling upstream.
func (handler *Handler) preflight(rctx *proxy.RouteContext) (events.APIGatewayProxyResponse, error) {
	return events.APIGatewayProxyResponse{
		StatusCode:      http.StatusOK,
		Headers:         preflightHeaders(handler.config.AllowOrigin),
		Body:            "",
		IsBase64Encoded: false,
	}, nil
}

// forward relays a POST body verbatim to the upstream endpoint.
func (handler *Handler) forward(rctx *proxy.RouteContext) (events.APIGatewayProxyResponse, error) {
	body, err := rctx.Body()
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	response, err := handler.upstream.Post(rctx.Context, body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	if !response.Success() {
		return events.APIGatewayProxyResponse{
			StatusCode:      response.StatusCode,
			Headers:         jsonHeaders(handler.config.AllowOrigin),
			Body:            NewErrorPayload(response.StatusText()).Body(),
			IsBase64Encoded: false,
		}, nil
	}

	// Round trip the upstream body so a non-json payload fails here instead
	// of reaching the caller.
	var payload json.RawMessage
	if err := json.Unmarshal(response.Body, &payload); err != nil {
		return events.APIGatewayProxyResponse{}, errors.Wrap(err, "failed parsing upstream response body")
	}

	return events.APIGatewayProxyResponse{
		StatusCode:      response.StatusCode,
		Headers:         jsonHeaders(handler.config.AllowOrigin),
		Body:            string(payload),
		IsBase64Encoded: false,
	}, nil
}

// methodNotAllowed rejects any method other than OPTIONS and POST.
func (handler *Handler) methodNotAllowed(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return events.APIGatewayProxyResponse{
		StatusCode:      http.StatusMethodNotAllowed,
		Headers:         commonHeaders(handler.config.AllowOrigin),
		Body:            "",
		IsBase64Encoded: false,
	}, nil
}

// internalError converts any failure raised while relaying into an
// ErrorPayload response. Failures here happened before an upstream status
// existed, so the response status is a definite 502.
func (handler *Handler) internalError(ctx context.Context, request events.APIGatewayProxyRequest, err error) (events.APIGatewayProxyResponse, error) {
	md := GetRequestMetaData(ctx)
	log.Printf("relay failed (function=%s version=%s request=%s): %+v", md.FunctionName, md.FunctionVersion, md.RequestID, err)

	return events.APIGatewayProxyResponse{
		StatusCode:      http.StatusBadGateway,
		Headers:         jsonHeaders(handler.config.AllowOrigin),
		Body:            NewErrorPayload(err.Error()).Body(),
		IsBase64Encoded: false,
	}, nil
}
