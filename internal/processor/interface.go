package processor

// Store defines the standings operations required by the processor.
type Store interface {
	Record(team1, team2 string, score1, score2 int) error
}
