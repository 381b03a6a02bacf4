package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/appvector/vector-mcp/internal/tools"
	"github.com/appvector/vector-mcp/internal/upstream"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	fakeAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(fakeAPI.Close)

	client := upstream.NewClient(fakeAPI.URL, "test-token", 2*time.Second)
	srv := New(tools.NewDispatcher(client))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func rpc(t *testing.T, ts *httptest.Server, payload string) map[string]any {
	t.Helper()
	resp, err := http.Post(ts.URL+"/mcp", "application/json", strings.NewReader(payload))
	if err != nil {
		t.Fatalf("post error: %v", err)
	}
	defer resp.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return out
}

func TestInitialize(t *testing.T) {
	_, ts := newTestServer(t)
	out := rpc(t, ts, `{"jsonrpc":"2.0","id":1,"method":"initialize"}`)
	result, _ := out["result"].(map[string]any)
	info, _ := result["serverInfo"].(map[string]any)
	if info["name"] != "vector-mcp" {
		t.Fatalf("unexpected serverInfo: %v", result)
	}
}

func TestToolsList(t *testing.T) {
	_, ts := newTestServer(t)
	out := rpc(t, ts, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	result, _ := out["result"].(map[string]any)
	list, _ := result["tools"].([]any)
	if len(list) != len(tools.Catalog()) {
		t.Fatalf("expected %d tools, got %d", len(tools.Catalog()), len(list))
	}
	first, _ := list[0].(map[string]any)
	if first["name"] != tools.AppleMetadataName {
		t.Fatalf("unexpected first tool %v", first["name"])
	}
	if _, ok := first["inputSchema"].(map[string]any); !ok {
		t.Fatalf("descriptor missing inputSchema: %v", first)
	}
}

func TestToolsCallSuccess(t *testing.T) {
	_, ts := newTestServer(t)
	out := rpc(t, ts, `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"appvector_user_jobs","arguments":{}}}`)
	result, _ := out["result"].(map[string]any)
	content, _ := result["content"].([]any)
	if len(content) != 1 {
		t.Fatalf("expected one content part, got %v", out)
	}
	part, _ := content[0].(map[string]any)
	text, _ := part["text"].(string)
	if !strings.Contains(text, `"ok": true`) {
		t.Fatalf("expected pretty upstream JSON, got %q", text)
	}
}

func TestToolsCallKnownToolFailureWrapped(t *testing.T) {
	_, ts := newTestServer(t)
	out := rpc(t, ts, `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"appvector_apple_rank","arguments":{}}}`)
	if out["error"] != nil {
		t.Fatalf("known-tool failure must not be a protocol error: %v", out["error"])
	}
	result, _ := out["result"].(map[string]any)
	content, _ := result["content"].([]any)
	part, _ := content[0].(map[string]any)
	text, _ := part["text"].(string)
	if !strings.HasPrefix(text, "Error: ") {
		t.Fatalf("expected Error envelope, got %q", text)
	}
}

func TestToolsCallUnknownToolIsProtocolError(t *testing.T) {
	_, ts := newTestServer(t)
	out := rpc(t, ts, `{"jsonrpc":"2.0","id":5,"method":"tools/call","params":{"name":"no_such_tool","arguments":{}}}`)
	errObj, _ := out["error"].(map[string]any)
	if errObj == nil {
		t.Fatalf("expected protocol error, got %v", out)
	}
	if msg, _ := errObj["message"].(string); !strings.Contains(msg, "Unknown tool: no_such_tool") {
		t.Fatalf("unexpected message %v", errObj["message"])
	}
}

func TestMethodNotFound(t *testing.T) {
	_, ts := newTestServer(t)
	out := rpc(t, ts, `{"jsonrpc":"2.0","id":6,"method":"bogus/method"}`)
	errObj, _ := out["error"].(map[string]any)
	if errObj == nil {
		t.Fatalf("expected error, got %v", out)
	}
	if code, _ := errObj["code"].(float64); int(code) != -32601 {
		t.Fatalf("code = %v", errObj["code"])
	}
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if out["status"] != "ok" || out["server"] != "vector-mcp" {
		t.Fatalf("unexpected health payload %v", out)
	}
}

func TestRPCRejectsGet(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/mcp")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestServeStdioRoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)

	payload := `{"jsonrpc":"2.0","id":7,"method":"tools/list"}`
	var in bytes.Buffer
	in.WriteString("Content-Length: ")
	in.WriteString(strconv.Itoa(len(payload)))
	in.WriteString("\r\n\r\n")
	in.WriteString(payload)

	var out bytes.Buffer
	if err := srv.ServeStdio(&in, &out); err != nil {
		t.Fatalf("ServeStdio error: %v", err)
	}

	raw := out.String()
	idx := strings.Index(raw, "\r\n\r\n")
	if idx < 0 {
		t.Fatalf("missing frame header in %q", raw)
	}
	var resp map[string]any
	if err := json.Unmarshal([]byte(raw[idx+4:]), &resp); err != nil {
		t.Fatalf("decode response frame: %v", err)
	}
	result, _ := resp["result"].(map[string]any)
	if _, ok := result["tools"].([]any); !ok {
		t.Fatalf("expected tools list, got %v", resp)
	}
}
