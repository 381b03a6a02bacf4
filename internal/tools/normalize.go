package tools

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DateRange is a calendar window with inclusive YYYY-MM-DD bounds.
type DateRange struct {
	Start string
	End   string
}

// defaultDateRange computes the trailing 30-day window ending at now.
func defaultDateRange(now time.Time) DateRange {
	return DateRange{
		Start: now.AddDate(0, 0, -30).Format(dateLayout),
		End:   now.Format(dateLayout),
	}
}

// request is the normalized, upstream-ready form of a tool call. Every value
// present is non-empty; defaults are already resolved.
type request struct {
	method string
	path   string
	query  url.Values
	body   map[string]any
}

// normalize validates the argument bag against the spec's contract and
// resolves defaults. It never touches the network.
func (s toolSpec) normalize(args map[string]any, now time.Time) (*request, error) {
	params := map[string]any{}
	query := url.Values{}
	pathVals := map[string]string{}

	for _, p := range s.params {
		key := p.name
		if p.out != "" {
			key = p.out
		}
		switch p.kind {
		case kindString:
			v := stringArg(args, p.name)
			if p.trim {
				v = strings.TrimSpace(v)
			}
			if v == "" {
				v = p.def
			}
			if v == "" {
				if p.required {
					return nil, requiredErr(p.name)
				}
				continue
			}
			if len(p.enum) > 0 && !slices.Contains(p.enum, v) {
				return nil, &ValidationError{Detail: fmt.Sprintf("%s must be one of: %s", p.name, strings.Join(p.enum, ", "))}
			}
			pathVals[p.name] = v
			if p.pathOnly {
				continue
			}
			putParam(params, query, p, key, v)
		case kindStringList:
			vals := listArg(args, p.name)
			if len(vals) == 0 {
				if p.required {
					return nil, &ValidationError{Detail: fmt.Sprintf("at least one %s is required", p.name)}
				}
				continue
			}
			putParam(params, query, p, key, vals)
		case kindInt:
			n, ok := intArg(args, p.name)
			if !ok || (p.required && n == 0) {
				if p.required {
					return nil, requiredErr(p.name)
				}
				continue
			}
			putParam(params, query, p, key, n)
		case kindBool:
			b, ok := boolArg(args, p.name)
			if !ok {
				continue
			}
			putParam(params, query, p, key, b)
		}
	}

	switch s.dates {
	case datesRangeOrDate:
		// A single date replaces the range entirely, even when start/end
		// were also supplied.
		if date := strings.TrimSpace(stringArg(args, "date")); date != "" {
			params["date"] = date
			break
		}
		fillDateRange(params, args, now)
	case datesDefaultRange:
		fillDateRange(params, args, now)
	}

	path := s.path
	for name, v := range pathVals {
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(v))
	}

	req := &request{method: s.method, path: path}
	if s.method == http.MethodGet {
		req.query = renderQuery(params)
	} else {
		req.body = params
		req.query = query
	}
	return req, nil
}

func fillDateRange(params map[string]any, args map[string]any, now time.Time) {
	r := defaultDateRange(now)
	if v := stringArg(args, "start_date"); v != "" {
		r.Start = v
	}
	if v := stringArg(args, "end_date"); v != "" {
		r.End = v
	}
	params["start_date"] = r.Start
	params["end_date"] = r.End
}

// putParam routes a normalized value to the body parameters or, for the few
// POST tools that carry query flags, to the query string.
func putParam(params map[string]any, query url.Values, p param, key string, v any) {
	if p.query {
		addQueryValue(query, key, v)
		return
	}
	params[key] = v
}

// renderQuery converts normalized parameters into a query string, dropping
// empty values rather than sending blank parameters.
func renderQuery(params map[string]any) url.Values {
	q := url.Values{}
	for k, v := range params {
		addQueryValue(q, k, v)
	}
	return q
}

func addQueryValue(q url.Values, key string, v any) {
	switch val := v.(type) {
	case string:
		if val != "" {
			q.Add(key, val)
		}
	case []string:
		for _, s := range val {
			if s != "" {
				q.Add(key, s)
			}
		}
	case int:
		q.Add(key, strconv.Itoa(val))
	case bool:
		if val {
			q.Add(key, "1")
		} else {
			q.Add(key, "0")
		}
	}
}

func requiredErr(name string) error {
	return &ValidationError{Detail: fmt.Sprintf("%s is a required parameter", name)}
}

// stringArg returns the string value for key, or "" when absent or not a string.
func stringArg(args map[string]any, key string) string {
	if v, ok := args[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// listArg returns the string entries for key. JSON-decoded arrays arrive as
// []any; typed slices are accepted for direct callers.
func listArg(args map[string]any, key string) []string {
	var out []string
	switch v := args[key].(type) {
	case []string:
		for _, s := range v {
			if s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// intArg returns the integer value for key. JSON numbers decode as float64.
func intArg(args map[string]any, key string) (int, bool) {
	switch v := args[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

func boolArg(args map[string]any, key string) (bool, bool) {
	if v, ok := args[key].(bool); ok {
		return v, true
	}
	return false, false
}
