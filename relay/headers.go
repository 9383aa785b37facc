package relay

// commonHeaders returns the CORS headers every relay response carries.
func commonHeaders(origin string) map[string]string {
	return map[string]string{
		"Access-Control-Allow-Credentials": "true",
		"Access-Control-Allow-Origin":      origin,
	}
}

// preflightHeaders returns the headers for an OPTIONS response.
func preflightHeaders(origin string) map[string]string {
	headers := commonHeaders(origin)
	headers["Access-Control-Allow-Headers"] = "Authorization,Content-type"
	headers["Access-Control-Allow-Methods"] = "OPTIONS,POST"
	return headers
}

// jsonHeaders returns the headers for a response carrying a json body.
func jsonHeaders(origin string) map[string]string {
	headers := commonHeaders(origin)
	headers["Content-Type"] = "application/json"
	return headers
}
