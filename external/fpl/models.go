package fpl

// Wire shapes for the two public FPL endpoints. Only the fields the bronze
// jobs project are declared; sonic ignores the rest.

type bootstrapEnvelope struct {
	Events   []eventPayload   `json:"events"`
	Teams    []teamPayload    `json:"teams"`
	Elements []elementPayload `json:"elements"`
}

type eventPayload struct {
	DeadlineTime *string `json:"deadline_time"`
}

type teamPayload struct {
	ID        int64  `json:"id"`
	Code      int64  `json:"code"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

type elementPayload struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	SecondName  string `json:"second_name"`
	WebName     string `json:"web_name"`
	TeamCode    int64  `json:"team_code"`
	Team        int64  `json:"team"`
	ElementType int64  `json:"element_type"`
	Code        int64  `json:"code"`
	Region      *int64 `json:"region"`
	CanSelect   bool   `json:"can_select"`
}

type fixturePayload struct {
	Code            int64              `json:"code"`
	Event           *int64             `json:"event"`
	Finished        bool               `json:"finished"`
	ID              int64              `json:"id"`
	KickoffTime     *string            `json:"kickoff_time"`
	TeamA           int64              `json:"team_a"`
	TeamH           int64              `json:"team_h"`
	TeamAScore      *int64             `json:"team_a_score"`
	TeamHScore      *int64             `json:"team_h_score"`
	TeamADifficulty *int64             `json:"team_a_difficulty"`
	TeamHDifficulty *int64             `json:"team_h_difficulty"`
	Stats           []statBlockPayload `json:"stats"`
}

type statBlockPayload struct {
	Identifier string             `json:"identifier"`
	Away       []statEntryPayload `json:"a"`
	Home       []statEntryPayload `json:"h"`
}

type statEntryPayload struct {
	Value   int64 `json:"value"`
	Element int64 `json:"element"`
}
