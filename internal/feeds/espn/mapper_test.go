package espn

import "testing"

func TestStatusToken(t *testing.T) {
	cases := []struct {
		name   string
		status statusResponse
		want   string
	}{
		{"scheduled", statusResponse{Type: statusTypeResponse{Name: "STATUS_SCHEDULED"}}, "NS"},
		{"first quarter", statusResponse{Type: statusTypeResponse{Name: "STATUS_IN_PROGRESS"}, Period: 1}, "Q1"},
		{"fourth quarter", statusResponse{Type: statusTypeResponse{Name: "STATUS_IN_PROGRESS"}, Period: 4}, "Q4"},
		{"overtime in progress", statusResponse{Type: statusTypeResponse{Name: "STATUS_IN_PROGRESS"}, Period: 5}, "OT"},
		{"in progress without period", statusResponse{Type: statusTypeResponse{Name: "STATUS_IN_PROGRESS"}}, "Q1"},
		{"halftime", statusResponse{Type: statusTypeResponse{Name: "STATUS_HALFTIME"}, Period: 2}, "HT"},
		{"regulation final", statusResponse{Type: statusTypeResponse{Name: "STATUS_FINAL"}, Period: 4}, "FT"},
		{"overtime final", statusResponse{Type: statusTypeResponse{Name: "STATUS_FINAL"}, Period: 5}, "AOT"},
		{"postponed", statusResponse{Type: statusTypeResponse{Name: "STATUS_POSTPONED"}}, "PST"},
		{"canceled", statusResponse{Type: statusTypeResponse{Name: "STATUS_CANCELED"}}, "CANC"},
		{"delayed", statusResponse{Type: statusTypeResponse{Name: "STATUS_DELAYED"}}, "SUSP"},
		{"unknown passes through", statusResponse{Type: statusTypeResponse{Name: "STATUS_RAIN_DANCE"}}, "STATUS_RAIN_DANCE"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := statusToken(tc.status); got != tc.want {
				t.Fatalf("statusToken = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMapPeriodScoresUnevenLinescores(t *testing.T) {
	competitors := []competitorResponse{
		{HomeAway: "home", Linescores: []linescoreResponse{{Value: 24}, {Value: 31}, {Value: 20}}},
		{HomeAway: "away", Linescores: []linescoreResponse{{Value: 28}, {Value: 25}}},
	}

	scores := mapPeriodScores(competitors)
	if len(scores) != 2 {
		t.Fatalf("got %d periods, want 2 (shorter side wins)", len(scores))
	}
	if scores[0].Home != 24 || scores[0].Away != 28 {
		t.Errorf("period 1 = %+v", scores[0])
	}
}

func TestMapPeriodScoresAbsent(t *testing.T) {
	competitors := []competitorResponse{
		{HomeAway: "home"},
		{HomeAway: "away"},
	}
	if scores := mapPeriodScores(competitors); scores != nil {
		t.Fatalf("got %v, want nil when no linescores", scores)
	}
}
