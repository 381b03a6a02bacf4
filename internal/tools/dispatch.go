package tools

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/appvector/vector-mcp/internal/logging"
	"github.com/appvector/vector-mcp/internal/upstream"
)

// Dispatcher resolves tool calls against the catalog and shields callers
// from every failure except an unknown tool name: validation, transport,
// and upstream-status errors all come back as an "Error: ..." text block
// inside a normally-shaped envelope.
type Dispatcher struct {
	client   *upstream.Client
	now      func() time.Time
	defs     []Definition
	handlers map[string]Handler
}

// NewDispatcher builds a dispatcher over the fixed catalog using the real
// clock for date defaulting.
func NewDispatcher(client *upstream.Client) *Dispatcher {
	return NewDispatcherAt(client, time.Now)
}

// NewDispatcherAt injects the clock used for default date windows; tests pin
// it to make normalization deterministic.
func NewDispatcherAt(client *upstream.Client, now func() time.Time) *Dispatcher {
	d := &Dispatcher{
		client:   client,
		now:      now,
		handlers: make(map[string]Handler, len(catalog)),
	}
	for _, s := range catalog {
		d.defs = append(d.defs, s.definition())
		d.handlers[s.name] = d.apiHandler(s)
	}
	return d
}

// List returns the ordered tool descriptors.
func (d *Dispatcher) List() []Definition {
	return d.defs
}

// Dispatch invokes the named tool. The returned error is non-nil only for an
// unknown tool name; any failure from a known tool is folded into the content.
func (d *Dispatcher) Dispatch(name string, args map[string]any) ([]ContentPart, error) {
	handler, ok := d.handlers[name]
	if !ok {
		return nil, &UnknownToolError{Name: name}
	}

	callID := uuid.NewString()
	logging.LogCall("in", name, callID, args)
	content, err := handler(args)
	if err != nil {
		logging.LogCall("error", name, callID, err.Error())
		return []ContentPart{{Type: "text", Text: "Error: " + err.Error()}}, nil
	}
	logging.LogCall("out", name, callID, fmt.Sprintf("%d content part(s)", len(content)))
	return content, nil
}

// apiHandler builds the Handler for one tool spec: validate, normalize,
// issue the upstream request, and wrap the JSON body.
func (d *Dispatcher) apiHandler(s toolSpec) Handler {
	def := s.definition()
	return func(args map[string]any) ([]ContentPart, error) {
		if args == nil {
			args = map[string]any{}
		}
		if err := ValidateArguments(def, args); err != nil {
			return nil, err
		}
		req, err := s.normalize(args, d.now())
		if err != nil {
			return nil, err
		}

		var raw []byte
		if req.method == http.MethodPost {
			raw, err = d.client.Post(req.path, req.body, req.query)
		} else {
			raw, err = d.client.Get(req.path, req.query)
		}
		if err != nil {
			return nil, err
		}

		pretty, err := prettyJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("upstream returned malformed JSON: %w", err)
		}
		return []ContentPart{{Type: "text", Text: pretty}}, nil
	}
}

func prettyJSON(raw []byte) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}
