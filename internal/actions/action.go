// Package actions contains the request handlers behind the dispatcher.
//
// Each handler is a stateless request→response transform: it decodes its
// typed payload from the raw body, talks to the repositories and the
// identity provider, and returns a serializable response. Collaborator
// faults never escape raw; they are reclassified into the two externally
// visible error kinds (see apperrors).
package actions

import (
	"context"
	"encoding/json"
)

// Handler processes the decoded body of a single dispatched action.
// The returned value is serialized to JSON by the dispatcher.
type Handler interface {
	Handle(ctx context.Context, body json.RawMessage) (any, error)
}

// decode unmarshals a possibly absent body into v. An absent body leaves
// v zero-valued, which downstream validation rejects where it matters.
func decode(body json.RawMessage, v any) error {
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, v)
}
