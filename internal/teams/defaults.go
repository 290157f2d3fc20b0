package teams

import "gamecast-service/internal/domain"

// DefaultTeams is the built-in canonical registry used when no directory file
// is configured. Basketball ids follow the upstream schedule store's numeric
// team ids; football ids live in a disjoint range.
func DefaultTeams() []domain.CanonicalTeam {
	return []domain.CanonicalTeam{
		{ID: "2", Code: "BOS", FullName: "Boston Celtics", Aliases: []string{"Celtics"}, League: domain.LeagueBasketball},
		{ID: "3", Code: "BKN", FullName: "Brooklyn Nets", Aliases: []string{"Nets"}, League: domain.LeagueBasketball},
		{ID: "7", Code: "DAL", FullName: "Dallas Mavericks", Aliases: []string{"Mavericks", "Mavs"}, League: domain.LeagueBasketball},
		{ID: "8", Code: "DEN", FullName: "Denver Nuggets", Aliases: []string{"Nuggets"}, League: domain.LeagueBasketball},
		{ID: "10", Code: "GSW", FullName: "Golden State Warriors", Aliases: []string{"Warriors", "GS Warriors"}, League: domain.LeagueBasketball},
		{ID: "13", Code: "LAC", FullName: "Los Angeles Clippers", Aliases: []string{"Clippers", "LA Clippers"}, League: domain.LeagueBasketball},
		{ID: "14", Code: "LAL", FullName: "Los Angeles Lakers", Aliases: []string{"Lakers", "LA Lakers"}, League: domain.LeagueBasketball},
		{ID: "16", Code: "MIA", FullName: "Miami Heat", Aliases: []string{"Heat"}, League: domain.LeagueBasketball},
		{ID: "17", Code: "MIL", FullName: "Milwaukee Bucks", Aliases: []string{"Bucks"}, League: domain.LeagueBasketball},
		{ID: "20", Code: "NYK", FullName: "New York Knicks", Aliases: []string{"Knicks", "NY Knicks"}, League: domain.LeagueBasketball},

		{ID: "101", Code: "KC", FullName: "Kansas City Chiefs", Aliases: []string{"Chiefs"}, League: domain.LeagueFootball},
		{ID: "102", Code: "SF", FullName: "San Francisco 49ers", Aliases: []string{"49ers", "Niners"}, League: domain.LeagueFootball},
		{ID: "103", Code: "BUF", FullName: "Buffalo Bills", Aliases: []string{"Bills"}, League: domain.LeagueFootball},
		{ID: "104", Code: "PHI", FullName: "Philadelphia Eagles", Aliases: []string{"Eagles"}, League: domain.LeagueFootball},
		{ID: "105", Code: "DET", FullName: "Detroit Lions", Aliases: []string{"Lions"}, League: domain.LeagueFootball},
		{ID: "106", Code: "BAL", FullName: "Baltimore Ravens", Aliases: []string{"Ravens"}, League: domain.LeagueFootball},
		{ID: "107", Code: "GB", FullName: "Green Bay Packers", Aliases: []string{"Packers"}, League: domain.LeagueFootball},
		{ID: "108", Code: "SEA", FullName: "Seattle Seahawks", Aliases: []string{"Seahawks"}, League: domain.LeagueFootball},
	}
}

// DefaultDirectory builds a Directory over DefaultTeams.
func DefaultDirectory() *Directory {
	return NewDirectory(DefaultTeams())
}
