package fpl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/premdata/fpl-warehouse/internal/etl"
	"github.com/premdata/fpl-warehouse/internal/platform/logging"
)

const (
	defaultBaseURL = "https://fantasy.premierleague.com/api"
	bootstrapPath  = "/bootstrap-static/"
	fixturesPath   = "/fixtures/"

	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 32 << 20
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client reads the two public FPL endpoints. The API returns one full
// payload per call, so there is no pagination and no retry.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// Bootstrap fetches bootstrap-static and maps it to typed source records.
func (c *Client) Bootstrap(ctx context.Context) (etl.Bootstrap, error) {
	var envelope bootstrapEnvelope
	if err := c.doJSON(ctx, bootstrapPath, nil, &envelope); err != nil {
		return etl.Bootstrap{}, err
	}

	return mapBootstrap(envelope)
}

// Fixtures fetches the fixture list; finishedOnly adds the completed-only
// filter the stats job relies on.
func (c *Client) Fixtures(ctx context.Context, finishedOnly bool) ([]etl.SourceFixture, error) {
	query := url.Values{}
	if finishedOnly {
		query.Set("future", "0")
	}

	var payload []fixturePayload
	if err := c.doJSON(ctx, fixturesPath, query, &payload); err != nil {
		return nil, err
	}

	return mapFixtures(payload)
}

func (c *Client) doJSON(ctx context.Context, path string, query url.Values, target any) error {
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return crerr.Mark(crerr.Wrap(err, "build request"), etl.ErrRequest)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "fpl request failed", "url", fullURL, "error", err)
		return crerr.Mark(crerr.Wrap(err, "send request"), etl.ErrRequest)
	}

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	_ = resp.Body.Close()
	if readErr != nil {
		return crerr.Mark(crerr.Wrap(readErr, "read response body"), etl.ErrRequest)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WarnContext(ctx, "fpl request rejected", "url", fullURL, "status", resp.StatusCode)
		return crerr.Mark(crerr.Newf("status=%d body=%s", resp.StatusCode, abbreviateBody(raw)), etl.ErrRequest)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Mark(crerr.Wrap(err, "decode payload"), etl.ErrData)
	}

	return nil
}

func mapBootstrap(envelope bootstrapEnvelope) (etl.Bootstrap, error) {
	out := etl.Bootstrap{
		Events:  make([]etl.SourceEvent, 0, len(envelope.Events)),
		Teams:   make([]etl.SourceTeam, 0, len(envelope.Teams)),
		Players: make([]etl.SourcePlayer, 0, len(envelope.Elements)),
	}

	for i, event := range envelope.Events {
		deadline, err := parseTimestamp(event.DeadlineTime)
		if err != nil {
			return etl.Bootstrap{}, crerr.Mark(crerr.Wrapf(err, "event index=%d", i), etl.ErrData)
		}
		out.Events = append(out.Events, etl.SourceEvent{DeadlineTime: deadline})
	}

	for _, team := range envelope.Teams {
		out.Teams = append(out.Teams, etl.SourceTeam{
			ID:        team.ID,
			Code:      team.Code,
			Name:      team.Name,
			ShortName: team.ShortName,
		})
	}

	for _, element := range envelope.Elements {
		out.Players = append(out.Players, etl.SourcePlayer{
			ID:         element.ID,
			FirstName:  element.FirstName,
			SecondName: element.SecondName,
			WebName:    element.WebName,
			TeamCode:   element.TeamCode,
			TeamID:     element.Team,
			Position:   element.ElementType,
			Code:       element.Code,
			Region:     element.Region,
			CanSelect:  element.CanSelect,
		})
	}

	return out, nil
}

func mapFixtures(payload []fixturePayload) ([]etl.SourceFixture, error) {
	out := make([]etl.SourceFixture, 0, len(payload))
	for _, item := range payload {
		kickoff, err := parseTimestamp(item.KickoffTime)
		if err != nil {
			return nil, crerr.Mark(crerr.Wrapf(err, "fixture id=%d", item.ID), etl.ErrData)
		}

		fixture := etl.SourceFixture{
			Code:           item.Code,
			GameweekID:     item.Event,
			Finished:       item.Finished,
			ID:             item.ID,
			KickoffAt:      kickoff,
			AwayTeamID:     item.TeamA,
			HomeTeamID:     item.TeamH,
			AwayScore:      item.TeamAScore,
			HomeScore:      item.TeamHScore,
			AwayDifficulty: item.TeamADifficulty,
			HomeDifficulty: item.TeamHDifficulty,
		}
		for _, block := range item.Stats {
			fixture.Stats = append(fixture.Stats, etl.SourceStatBlock{
				Identifier: block.Identifier,
				Away:       mapStatEntries(block.Away),
				Home:       mapStatEntries(block.Home),
			})
		}
		out = append(out, fixture)
	}

	return out, nil
}

func mapStatEntries(entries []statEntryPayload) []etl.SourceStatEntry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]etl.SourceStatEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, etl.SourceStatEntry{PlayerID: entry.Element, Value: entry.Value})
	}

	return out
}

func parseTimestamp(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp %q: %w", *raw, err)
	}

	return &parsed, nil
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}

	return body
}
