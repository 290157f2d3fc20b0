package espn

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Status       statusResponse        `json:"status"`
	Competitions []competitionResponse `json:"competitions"`
}

type statusResponse struct {
	Type         statusTypeResponse `json:"type"`
	Period       int                `json:"period"`
	DisplayClock string             `json:"displayClock"`
}

type statusTypeResponse struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type competitionResponse struct {
	Status      statusResponse       `json:"status"`
	Competitors []competitorResponse `json:"competitors"`
	Situation   *situationResponse   `json:"situation,omitempty"`
}

type competitorResponse struct {
	HomeAway   string              `json:"homeAway"`
	Score      string              `json:"score"`
	Team       teamResponse        `json:"team"`
	Linescores []linescoreResponse `json:"linescores,omitempty"`
}

type teamResponse struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
}

type linescoreResponse struct {
	Value float64 `json:"value"`
}

type situationResponse struct {
	Possession string `json:"possession"`
}

type summaryResponse struct {
	Header summaryHeader `json:"header"`
}

type summaryHeader struct {
	Competitions []competitionResponse `json:"competitions"`
}
