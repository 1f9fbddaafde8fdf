package feishu

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserve(t *testing.T) {
	var gotBody map[string]interface{}
	mux := http.NewServeMux()
	mux.HandleFunc("/open-apis/vc/v1/reserves/apply", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(w, map[string]interface{}{
			"code": 0, "msg": "success",
			"data": map[string]interface{}{
				"reserve": map[string]interface{}{
					"id":         "rsv_1",
					"meeting_no": "123456789",
					"url":        "https://vc.feishu.cn/j/123456789",
					"end_time":   "1756108000",
				},
			},
		})
	})
	client := newTestClient(t, mux, Options{})

	res, err := client.Reserve(context.Background(), ReserveInput{
		Topic:      "release review",
		EndTime:    1756108000,
		UserIDType: "open_id",
	})
	require.NoError(t, err)

	settings, ok := gotBody["meeting_settings"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "release review", settings["topic"])
	assert.Equal(t, "1756108000", gotBody["end_time"])

	// Field values are SDK pointers; compare through JSON.
	encoded, err := json.Marshal(res)
	require.NoError(t, err)
	var decoded struct {
		ReserveID string `json:"reserve_id"`
		MeetingNo string `json:"meeting_no"`
		URL       string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, "rsv_1", decoded.ReserveID)
	assert.Equal(t, "123456789", decoded.MeetingNo)
	assert.Equal(t, "https://vc.feishu.cn/j/123456789", decoded.URL)
}

func TestReserve_SurfacesAPIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/open-apis/vc/v1/reserves/apply", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{"code": 121001, "msg": "invalid param"})
	})
	client := newTestClient(t, mux, Options{})

	_, err := client.Reserve(context.Background(), ReserveInput{Topic: "x", UserIDType: "open_id"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "121001")
}

func TestDeleteReservation(t *testing.T) {
	var called bool
	mux := http.NewServeMux()
	mux.HandleFunc("/open-apis/vc/v1/reserves/rsv_1", func(w http.ResponseWriter, r *http.Request) {
		called = true
		require.Equal(t, http.MethodDelete, r.Method)
		writeJSON(w, map[string]interface{}{"code": 0, "msg": "success", "data": map[string]interface{}{}})
	})
	client := newTestClient(t, mux, Options{})

	require.NoError(t, client.DeleteReservation(context.Background(), "rsv_1"))
	assert.True(t, called)
}
