// Package relay implements a lambda that forwards json-rpc POST requests to a
// fixed upstream node endpoint, keeping the endpoint url (and the provider api
// key embedded in it) away from browser clients, and answers CORS preflights.
//
// Every response carries the CORS credential and origin headers. Failures are
// never returned to the platform as handler errors; they are converted into a
// {"error":{"message":...}} json body.
package relay
