package proxy

// HttpMethod is an enum of the standard Http Methods.
type HttpMethod int

const (
	GET HttpMethod = iota
	HEAD
	POST
	PUT
	DELETE
	CONNECT
	OPTIONS
	TRACE
	PATCH
)

var httpMethodNames = [...]string{
	"GET",
	"HEAD",
	"POST",
	"PUT",
	"DELETE",
	"CONNECT",
	"OPTIONS",
	"TRACE",
	"PATCH",
}

// String returns the method name as it appears in a request's HTTPMethod
// field.
func (method HttpMethod) String() string {
	if method < GET || method > PATCH {
		return "UNKNOWN"
	}

	return httpMethodNames[method]
}
