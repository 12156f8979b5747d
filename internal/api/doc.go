// Package api handles incoming HTTP requests, path parameter validation,
// and response formatting. It acts as an adapter between external clients
// and the upstream post client, translating upstream outcomes into HTTP
// statuses and {"detail": ...} error bodies.
package api
