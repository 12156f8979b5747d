// Package domain holds the error vocabulary shared by the HTTP layer and the
// upstream adapter. The service owns no business entities of its own: posts
// are opaque documents defined by the upstream API.
package domain
