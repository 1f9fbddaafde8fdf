package handlers

import (
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestMergeIDList(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		want []string
	}{
		{
			name: "singular only",
			args: map[string]interface{}{"user_id": "ou_a"},
			want: []string{"ou_a"},
		},
		{
			name: "plural only",
			args: map[string]interface{}{"user_ids": []interface{}{"ou_a", "ou_b"}},
			want: []string{"ou_a", "ou_b"},
		},
		{
			name: "singular merged ahead of plural",
			args: map[string]interface{}{
				"user_id":  "ou_a",
				"user_ids": []interface{}{"ou_b", "ou_c"},
			},
			want: []string{"ou_a", "ou_b", "ou_c"},
		},
		{
			name: "duplicates and empties dropped",
			args: map[string]interface{}{
				"user_id":  "ou_a",
				"user_ids": []interface{}{"ou_a", "", "ou_b", "ou_b"},
			},
			want: []string{"ou_a", "ou_b"},
		},
		{
			name: "nothing set",
			args: map[string]interface{}{},
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeIDList(newRequest(tt.args), "user_id", "user_ids")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlexTime(t *testing.T) {
	ts, err := parseFlexTime("1756100000")
	require.NoError(t, err)
	assert.Equal(t, int64(1756100000), ts.Unix())

	ts, err = parseFlexTime("2026-08-25T10:00:00+08:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 25, 2, 0, 0, 0, time.UTC).Unix(), ts.Unix())

	_, err = parseFlexTime("tomorrow at noon")
	assert.Error(t, err)
}

func TestRequireTime(t *testing.T) {
	_, err := requireTime(newRequest(map[string]interface{}{}), "start")
	assert.Error(t, err)

	ts, err := requireTime(newRequest(map[string]interface{}{"start": "1756100000"}), "start")
	require.NoError(t, err)
	assert.False(t, ts.IsZero())
}

func TestOptionalTime(t *testing.T) {
	ts, err := optionalTime(newRequest(map[string]interface{}{}), "start")
	require.NoError(t, err)
	assert.True(t, ts.IsZero())

	_, err = optionalTime(newRequest(map[string]interface{}{"start": "not-a-time"}), "start")
	assert.Error(t, err)
}

func TestUserIDType(t *testing.T) {
	idType, err := userIDType(newRequest(map[string]interface{}{}))
	require.NoError(t, err)
	assert.Equal(t, "open_id", idType)

	idType, err = userIDType(newRequest(map[string]interface{}{"user_id_type": "union_id"}))
	require.NoError(t, err)
	assert.Equal(t, "union_id", idType)

	_, err = userIDType(newRequest(map[string]interface{}{"user_id_type": "employee_id"}))
	assert.Error(t, err)
}
