// Package dispatch parses the request envelope and routes it to a handler.
//
// Action names are resolved through a closed lookup table registered at
// construction time. An externally supplied name can only ever select one
// of the known handlers, never load arbitrary code.
package dispatch

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/dmitrijs2005/petgate/internal/actions"
	"github.com/dmitrijs2005/petgate/internal/apperrors"
	"github.com/dmitrijs2005/petgate/internal/logging"
)

// Request is the inbound envelope: an action name and the nested payload
// for that action. Body may be absent.
type Request struct {
	Action string          `json:"action"`
	Body   json.RawMessage `json:"body"`
}

// Dispatcher owns the action table. Construct once per process and share
// across invocations; it keeps no per-request state.
type Dispatcher struct {
	handlers map[string]actions.Handler
	log      logging.Logger
}

func New(log logging.Logger, handlers map[string]actions.Handler) *Dispatcher {
	return &Dispatcher{handlers: handlers, log: log}
}

// Handle decodes the envelope, invokes the resolved handler, and returns
// the serialized response. Errors are always one of the two externally
// visible kinds from apperrors.
func (d *Dispatcher) Handle(ctx context.Context, payload []byte) ([]byte, error) {
	req := &Request{}
	if err := json.Unmarshal(payload, req); err != nil {
		d.log.Warn(ctx, "unparseable request envelope", "error", err)
		return nil, apperrors.NewBadRequest(apperrors.MsgInvalidInput)
	}

	name := strings.TrimSpace(req.Action)
	if name == "" {
		d.log.Warn(ctx, "could not find action parameter in request")
		return nil, apperrors.NewBadRequest(apperrors.MsgActionMissing)
	}

	handler, ok := d.handlers[name]
	if !ok {
		d.log.Warn(ctx, "unknown action requested", "action", name)
		return nil, apperrors.NewBadRequest(apperrors.MsgActionUnknown)
	}

	output, err := handler.Handle(ctx, req.Body)
	if err != nil {
		return nil, err
	}

	resp, err := json.Marshal(output)
	if err != nil {
		d.log.Error(ctx, "response serialization failed", "action", name, "error", err)
		return nil, apperrors.NewInternalWrap(apperrors.MsgResponseEncode, err)
	}

	return resp, nil
}
