package feishu

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestCreateEvent_ResolvesPrimaryAndAttachesAttendees(t *testing.T) {
	var calls []string
	mux := http.NewServeMux()
	mux.HandleFunc("/open-apis/calendar/v4/calendars/primary", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "primary")
		writeJSON(w, map[string]interface{}{
			"code": 0, "msg": "success",
			"data": map[string]interface{}{
				"calendars": []map[string]interface{}{
					{"calendar": map[string]interface{}{"calendar_id": "cal_primary"}},
				},
			},
		})
	})
	mux.HandleFunc("/open-apis/calendar/v4/calendars/cal_primary/events", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "create")
		writeJSON(w, map[string]interface{}{
			"code": 0, "msg": "success",
			"data": map[string]interface{}{
				"event": map[string]interface{}{"event_id": "evt_1", "summary": "standup"},
			},
		})
	})
	mux.HandleFunc("/open-apis/calendar/v4/calendars/cal_primary/events/evt_1/attendees", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "attendees")
		writeJSON(w, map[string]interface{}{
			"code": 0, "msg": "success",
			"data": map[string]interface{}{
				"attendees": []map[string]interface{}{
					{"user_id": "ou_a"},
				},
			},
		})
	})
	client := newTestClient(t, mux, Options{})

	in := EventInput{Summary: "standup", Start: 1756100000, End: 1756103600, Timezone: "UTC"}
	res, err := client.CreateEvent(context.Background(), "", "open_id", in, []string{"ou_a", "ou_gone"})
	require.NoError(t, err)

	assert.Equal(t, []string{"primary", "create", "attendees"}, calls)
	assert.Equal(t, "cal_primary", res["calendar_id"])
	assert.Equal(t, "evt_1", res["event_id"])
	assert.Equal(t, 1, res["attendees_added"])
	assert.Equal(t, []string{"ou_gone"}, res["invalid_attendees"])
}

func TestCreateEvent_ExplicitCalendarSkipsPrimaryLookup(t *testing.T) {
	var primaryCalled bool
	mux := http.NewServeMux()
	mux.HandleFunc("/open-apis/calendar/v4/calendars/primary", func(w http.ResponseWriter, r *http.Request) {
		primaryCalled = true
	})
	mux.HandleFunc("/open-apis/calendar/v4/calendars/cal_x/events", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{
			"code": 0, "msg": "success",
			"data": map[string]interface{}{
				"event": map[string]interface{}{"event_id": "evt_2"},
			},
		})
	})
	client := newTestClient(t, mux, Options{})

	in := EventInput{Summary: "1:1", Start: 1756100000, End: 1756103600, Timezone: "UTC"}
	res, err := client.CreateEvent(context.Background(), "cal_x", "open_id", in, nil)
	require.NoError(t, err)
	assert.False(t, primaryCalled)
	assert.Equal(t, "evt_2", res["event_id"])
}

func TestFreeBusy_AggregatesPerUser(t *testing.T) {
	var queried []string
	mux := http.NewServeMux()
	mux.HandleFunc("/open-apis/calendar/v4/freebusy/list", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			UserID string `json:"user_id"`
			RoomID string `json:"room_id"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		queried = append(queried, body.UserID)
		writeJSON(w, map[string]interface{}{
			"code": 0, "msg": "success",
			"data": map[string]interface{}{
				"freebusy_list": []map[string]interface{}{
					{"start_time": "2026-08-25T10:00:00+08:00", "end_time": "2026-08-25T11:00:00+08:00"},
				},
			},
		})
	})
	client := newTestClient(t, mux, Options{})

	res, err := client.FreeBusy(context.Background(), FreeBusyQuery{
		TimeMin:    "2026-08-25T09:00:00+08:00",
		TimeMax:    "2026-08-25T18:00:00+08:00",
		UserIDs:    []string{"ou_a", "ou_b"},
		UserIDType: "open_id",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"ou_a", "ou_b"}, queried)
	busy, ok := res["busy"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, busy, 2)
	assert.Contains(t, busy, "ou_a")
	assert.Contains(t, busy, "ou_b")
}

func TestFreeBusy_RejectsUsersAndRoomTogether(t *testing.T) {
	client := newTestClient(t, http.NewServeMux(), Options{})
	_, err := client.FreeBusy(context.Background(), FreeBusyQuery{
		TimeMin: "a", TimeMax: "b",
		UserIDs: []string{"ou_a"},
		RoomID:  "omm_room",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both")
}

func TestFreeBusy_RequiresSubject(t *testing.T) {
	client := newTestClient(t, http.NewServeMux(), Options{})
	_, err := client.FreeBusy(context.Background(), FreeBusyQuery{TimeMin: "a", TimeMax: "b"})
	require.Error(t, err)
}

func TestPrimaryCalendar_SurfacesAPIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/open-apis/calendar/v4/calendars/primary", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{"code": 190003, "msg": "no permission"})
	})
	client := newTestClient(t, mux, Options{})

	_, err := client.PrimaryCalendar(context.Background(), "open_id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "190003")
}
