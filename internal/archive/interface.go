package archive

import (
	"github.com/mauv0809/hand-cricket/internal/cricket"
	"github.com/mauv0809/hand-cricket/internal/notifier"
)

// ArchiveStore records tournaments as they are played and reads them back.
type ArchiveStore interface {
	notifier.Notifier
	GetTournament(id string) (Summary, error)
	GetFixtures(id string) ([]cricket.Fixture, error)
	GetStandings(id string) ([]cricket.StandingsEntry, error)
	GetTitles() (map[string]int, error)
}
