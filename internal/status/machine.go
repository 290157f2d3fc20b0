package status

import (
	"log/slog"

	"gamecast-service/internal/domain"
	"gamecast-service/internal/logging"
)

// UnknownTokenRecorder counts status tokens that no table recognizes.
type UnknownTokenRecorder interface {
	RecordUnknownToken(league string)
}

// Machine reduces provider status tokens to canonical lifecycle states.
// An unrecognized token degrades to Scheduled with a single warning; it is
// never fatal. The machine does not enforce forward-only transitions; that
// guard lives where a fresh observation is merged into an existing record
// (see internal/match.ApplyUpdate).
type Machine struct {
	tables  map[domain.League]TokenTable
	logger  *slog.Logger
	metrics UnknownTokenRecorder
}

// NewMachine builds a machine over the given token tables.
func NewMachine(logger *slog.Logger, metrics UnknownTokenRecorder, tables ...TokenTable) *Machine {
	m := &Machine{
		tables:  make(map[domain.League]TokenTable, len(tables)),
		logger:  logger,
		metrics: metrics,
	}
	for _, t := range tables {
		m.tables[t.league] = t
	}
	return m
}

// NewDefaultMachine wires the built-in football and basketball tables.
func NewDefaultMachine(logger *slog.Logger, metrics UnknownTokenRecorder) *Machine {
	return NewMachine(logger, metrics, FootballTokens(), BasketballTokens())
}

// Map returns the canonical state for a raw provider token.
func (m *Machine) Map(league domain.League, token string) domain.GameStatus {
	table, ok := m.tables[league]
	if !ok {
		m.warnUnknown(league, token, "no token table for league")
		return domain.StatusScheduled
	}

	if s, ok := table.lookup(token); ok {
		return s
	}

	m.warnUnknown(league, token, "unrecognized status token")
	return domain.StatusScheduled
}

func (m *Machine) warnUnknown(league domain.League, token, msg string) {
	logging.Warn(m.logger, msg,
		slog.String(logging.FieldLeague, string(league)),
		slog.String(logging.FieldToken, token),
	)
	if m.metrics != nil {
		m.metrics.RecordUnknownToken(string(league))
	}
}
