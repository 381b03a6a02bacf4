// Package server binds the tool dispatcher to MCP transports: JSON-RPC 2.0
// over HTTP (the default) or over stdio with Content-Length framing.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/appvector/vector-mcp/internal/tools"
)

const (
	serverName    = "vector-mcp"
	serverVersion = "0.1.0"
)

// --- Protocol data types ---

type jsonrpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type jsonrpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type jsonrpcResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      any           `json:"id,omitempty"`
	Result  any           `json:"result,omitempty"`
	Error   *jsonrpcError `json:"error,omitempty"`
}

// tools/call params
type toolsCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

func makeResult(id any, result any) jsonrpcResponse {
	return jsonrpcResponse{JSONRPC: "2.0", ID: id, Result: result}
}

func makeError(id any, code int, msg string) jsonrpcResponse {
	return jsonrpcResponse{JSONRPC: "2.0", ID: id, Error: &jsonrpcError{Code: code, Message: msg}}
}

// Server routes MCP requests to the dispatcher. It holds no per-call state,
// so one Server serves any number of concurrent connections.
type Server struct {
	dispatcher *tools.Dispatcher
}

// New builds a Server over the given dispatcher.
func New(d *tools.Dispatcher) *Server {
	return &Server{dispatcher: d}
}

// handle processes one JSON-RPC request and produces the response frame.
func (s *Server) handle(req *jsonrpcRequest) jsonrpcResponse {
	switch req.Method {
	case "initialize":
		result := map[string]any{
			"protocolVersion": "2024-11-05",
			"serverInfo":      map[string]any{"name": serverName, "version": serverVersion},
			"capabilities":    map[string]any{"tools": map[string]any{"list": true, "call": true}},
		}
		return makeResult(req.ID, result)

	case "ping", "notifications/initialized":
		return makeResult(req.ID, map[string]any{})

	case "tools/list":
		return makeResult(req.ID, map[string]any{"tools": s.dispatcher.List()})

	case "tools/call":
		var p toolsCallParams
		if len(req.Params) > 0 {
			if err := json.Unmarshal(req.Params, &p); err != nil {
				return makeError(req.ID, -32602, "Invalid params")
			}
		}
		if p.Arguments == nil {
			p.Arguments = map[string]any{}
		}
		content, err := s.dispatcher.Dispatch(p.Name, p.Arguments)
		if err != nil {
			// Only an unknown tool name reaches here; known-tool failures
			// are already folded into the content.
			return makeError(req.ID, -32602, err.Error())
		}
		return makeResult(req.ID, map[string]any{"content": content})
	}

	return makeError(req.ID, -32601, "Method not found: "+req.Method)
}

// --- HTTP transport ---

// Handler returns the inbound HTTP surface: POST /mcp for JSON-RPC and
// GET /health for the liveness probe.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/mcp", s.handleRPC)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req jsonrpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, makeError(nil, -32700, "Parse error"))
		return
	}
	writeJSON(w, s.handle(&req))
}

// handleHealth reports a fixed status payload; it does not pass through the
// dispatcher.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":  "ok",
		"server":  serverName,
		"version": serverVersion,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// Run serves the HTTP transport on addr until the listener fails.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
