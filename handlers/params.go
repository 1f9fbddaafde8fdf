package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// mergeIDList folds a singular parameter and its plural counterpart into one
// canonical list: order preserved, duplicates and empty strings dropped.
func mergeIDList(request mcp.CallToolRequest, singular, plural string) []string {
	raw := request.GetStringSlice(plural, nil)
	if single := request.GetString(singular, ""); single != "" {
		raw = append([]string{single}, raw...)
	}
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, id := range raw {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// parseFlexTime accepts RFC3339 or unix seconds (as a decimal string).
func parseFlexTime(value string) (time.Time, error) {
	if sec, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Unix(sec, 0), nil
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: want RFC3339 or unix seconds", value)
	}
	return ts, nil
}

// requireTime reads a required time parameter.
func requireTime(request mcp.CallToolRequest, key string) (time.Time, error) {
	value, err := request.RequireString(key)
	if err != nil {
		return time.Time{}, err
	}
	ts, err := parseFlexTime(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", key, err)
	}
	return ts, nil
}

// optionalTime reads an optional time parameter; the zero time means unset.
func optionalTime(request mcp.CallToolRequest, key string) (time.Time, error) {
	value := request.GetString(key, "")
	if value == "" {
		return time.Time{}, nil
	}
	ts, err := parseFlexTime(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", key, err)
	}
	return ts, nil
}

// userIDType reads the user_id_type parameter, defaulting to open_id.
func userIDType(request mcp.CallToolRequest) (string, error) {
	t := request.GetString("user_id_type", "open_id")
	switch t {
	case "open_id", "union_id", "user_id":
		return t, nil
	default:
		return "", fmt.Errorf("invalid user_id_type %q: want open_id, union_id or user_id", t)
	}
}
