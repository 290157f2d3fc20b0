package domain

import "time"

// League identifies which sport a team or game belongs to. Each league
// carries its own provider status vocabulary (see internal/status).
type League string

const (
	LeagueBasketball League = "basketball"
	LeagueFootball   League = "football"
)

// GameStatus is the canonical game lifecycle shared by every provider.
type GameStatus string

const (
	StatusScheduled  GameStatus = "SCHEDULED"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusHalftime   GameStatus = "HALFTIME"
	StatusFinal      GameStatus = "FINAL"
	StatusCanceled   GameStatus = "CANCELED"
	StatusPostponed  GameStatus = "POSTPONED"
	StatusDelayed    GameStatus = "DELAYED"
)

// Terminal reports whether a status can never transition again within a session.
func (s GameStatus) Terminal() bool {
	return s == StatusFinal || s == StatusCanceled
}

// CanonicalTeam is the single internal identity a team is known by,
// independent of any provider's naming. Loaded once at startup, never mutated.
type CanonicalTeam struct {
	ID       string   `json:"id" yaml:"id"`
	Code     string   `json:"code" yaml:"code"`
	FullName string   `json:"fullName" yaml:"fullName"`
	Aliases  []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	League   League   `json:"league" yaml:"league"`
}

// PeriodScore holds both sides' points for a single completed period.
type PeriodScore struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Game is the canonical record for one real-world event. It is re-derived on
// each mount/refresh and never persisted across process restarts.
type Game struct {
	ID            string        `json:"id"`
	HomeTeamID    string        `json:"homeTeamId"`
	AwayTeamID    string        `json:"awayTeamId"`
	ScheduledTime time.Time     `json:"scheduledTime"`
	League        League        `json:"league"`
	Status        GameStatus    `json:"status"`
	Period        int           `json:"period"`
	Clock         string        `json:"clock"`
	HomeScore     int           `json:"homeScore"`
	AwayScore     int           `json:"awayScore"`
	PeriodScores  []PeriodScore `json:"periodScores,omitempty"`
}

// BroadcastEntry is one row of a broadcast-network listing. The team refs are
// provider-native strings that still need canonical resolution.
type BroadcastEntry struct {
	Network string    `json:"network"`
	HomeRef string    `json:"homeRef"`
	AwayRef string    `json:"awayRef"`
	Date    time.Time `json:"date"`
}

// SeriesGame locates one game inside a playoff series by the series feed's id.
type SeriesGame struct {
	ExternalGameID string `json:"externalGameId"`
	GameNumber     int    `json:"gameNumber"`
}

// PlayoffSeriesRecord aggregates a multi-game playoff matchup between two
// teams within one season. There is one record per team pairing per season.
type PlayoffSeriesRecord struct {
	TeamIDs [2]string    `json:"teamIds"` // normalized unordered pair, lexically sorted
	Season  string       `json:"season"`
	Games   []SeriesGame `json:"games"`
	Summary string       `json:"summary"`
}

// PossessionState captures which team holds the ball as of a point in time.
// An empty TeamID means possession is unknown or between plays.
type PossessionState struct {
	AsOf   time.Time `json:"asOf"`
	TeamID string    `json:"teamId,omitempty"`
}

// SeriesContext annotates a game with its place in a playoff series.
type SeriesContext struct {
	GameNumber int    `json:"gameNumber"`
	Summary    string `json:"summary"`
}

// GameView is the single merged shape handed to display surfaces. Enrichment
// fields (broadcasts, series, possession) are best-effort and may be absent.
type GameView struct {
	HomeTeamID        string         `json:"homeTeamId"`
	AwayTeamID        string         `json:"awayTeamId"`
	Status            GameStatus     `json:"status"`
	PeriodLabel       string         `json:"periodLabel,omitempty"`
	Clock             string         `json:"clock,omitempty"`
	HomeScore         int            `json:"homeScore"`
	AwayScore         int            `json:"awayScore"`
	Winner            string         `json:"winner,omitempty"` // "home" or "away", final games only
	BroadcastNetworks []string       `json:"broadcastNetworks,omitempty"`
	Series            *SeriesContext `json:"series,omitempty"`
	PossessingTeamID  string         `json:"possessingTeamId,omitempty"`
}
