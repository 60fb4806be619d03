package fpl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/premdata/fpl-warehouse/internal/etl"
	"github.com/premdata/fpl-warehouse/internal/platform/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		Logger:     logging.NewNop(),
	})
}

func TestClient_Bootstrap_MapsPayload(t *testing.T) {
	t.Parallel()

	payload := `{
		"events": [
			{"deadline_time": "2024-08-16T17:30:00Z"},
			{"deadline_time": null}
		],
		"teams": [
			{"id": 1, "code": 3, "name": "Arsenal", "short_name": "ARS", "strength": 5}
		],
		"elements": [
			{"id": 233, "first_name": "Mohamed", "second_name": "Salah", "web_name": "M.Salah",
			 "team_code": 14, "team": 11, "element_type": 3, "code": 118748,
			 "region": 40, "can_select": true, "now_cost": 131}
		]
	}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bootstrap-static/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	})

	boot, err := client.Bootstrap(context.Background())
	require.NoError(t, err)

	require.Len(t, boot.Events, 2)
	require.NotNil(t, boot.Events[0].DeadlineTime)
	require.True(t, boot.Events[0].DeadlineTime.Equal(time.Date(2024, 8, 16, 17, 30, 0, 0, time.UTC)))
	require.Nil(t, boot.Events[1].DeadlineTime)

	require.Len(t, boot.Teams, 1)
	require.Equal(t, etl.SourceTeam{ID: 1, Code: 3, Name: "Arsenal", ShortName: "ARS"}, boot.Teams[0])

	require.Len(t, boot.Players, 1)
	player := boot.Players[0]
	require.Equal(t, int64(233), player.ID)
	require.Equal(t, int64(11), player.TeamID)
	require.Equal(t, int64(3), player.Position)
	require.Equal(t, int64(118748), player.Code)
	require.NotNil(t, player.Region)
	require.Equal(t, int64(40), *player.Region)
	require.True(t, player.CanSelect)
}

func TestClient_Bootstrap_BadDeadlineIsDataError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"events": [{"deadline_time": "yesterday"}], "teams": [], "elements": []}`))
	})

	_, err := client.Bootstrap(context.Background())
	require.ErrorIs(t, err, etl.ErrData)
}

func TestClient_Fixtures_FinishedOnlyAddsFilter(t *testing.T) {
	t.Parallel()

	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/fixtures/", r.URL.Path)
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.Fixtures(context.Background(), true)
	require.NoError(t, err)
	require.Equal(t, "future=0", gotQuery)

	_, err = client.Fixtures(context.Background(), false)
	require.NoError(t, err)
	require.Empty(t, gotQuery)
}

func TestClient_Fixtures_MapsStatBlocks(t *testing.T) {
	t.Parallel()

	payload := `[
		{
			"code": 2444470, "event": 1, "finished": true, "id": 5,
			"kickoff_time": "2024-08-17T14:00:00Z",
			"team_a": 7, "team_h": 11,
			"team_a_score": 0, "team_h_score": 2,
			"team_a_difficulty": 4, "team_h_difficulty": 2,
			"stats": [
				{
					"identifier": "goals_scored",
					"a": [],
					"h": [{"value": 1, "element": 10}, {"value": 1, "element": 12}]
				}
			]
		},
		{
			"code": 2444471, "event": null, "finished": false, "id": 6,
			"kickoff_time": null,
			"team_a": 1, "team_h": 2,
			"team_a_score": null, "team_h_score": null,
			"team_a_difficulty": null, "team_h_difficulty": null,
			"stats": []
		}
	]`
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(payload))
	})

	fixtures, err := client.Fixtures(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, fixtures, 2)

	first := fixtures[0]
	require.Equal(t, int64(2444470), first.Code)
	require.NotNil(t, first.GameweekID)
	require.Equal(t, int64(1), *first.GameweekID)
	require.True(t, first.Finished)
	require.NotNil(t, first.KickoffAt)
	require.True(t, first.KickoffAt.Equal(time.Date(2024, 8, 17, 14, 0, 0, 0, time.UTC)))
	require.Len(t, first.Stats, 1)
	require.Equal(t, "goals_scored", first.Stats[0].Identifier)
	require.Empty(t, first.Stats[0].Away)
	require.Equal(t, []etl.SourceStatEntry{{PlayerID: 10, Value: 1}, {PlayerID: 12, Value: 1}}, first.Stats[0].Home)

	second := fixtures[1]
	require.Nil(t, second.GameweekID)
	require.Nil(t, second.KickoffAt)
	require.Nil(t, second.AwayScore)
	require.Empty(t, second.Stats)
}

func TestClient_NonSuccessStatusIsRequestError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "The game is being updated.", http.StatusServiceUnavailable)
	})

	_, err := client.Bootstrap(context.Background())
	require.ErrorIs(t, err, etl.ErrRequest)
}

func TestClient_MalformedBodyIsDataError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	})

	_, err := client.Fixtures(context.Background(), false)
	require.ErrorIs(t, err, etl.ErrData)
}

func TestClient_UnreachableHostIsRequestError(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{
		BaseURL: "http://127.0.0.1:1",
		Timeout: 500 * time.Millisecond,
		Logger:  logging.NewNop(),
	})

	_, err := client.Bootstrap(context.Background())
	require.Error(t, err)
	require.True(t, errors.Is(err, etl.ErrRequest))
}
