package game

// Player is one seat at the table. Seats are fixed when the game starts.
type Player struct {
	Seat  int
	Name  string
	Score int
}

// NewPlayers seats one player per name, each with the starting score.
func NewPlayers(names []string, startingScore int) []Player {
	players := make([]Player, len(names))
	for i, name := range names {
		players[i] = Player{Seat: i, Name: name, Score: startingScore}
	}
	return players
}

func clonePlayers(players []Player) []Player {
	out := make([]Player, len(players))
	copy(out, players)
	return out
}

// DisplayScores returns every score relative to the highlighted seat.
// A negative highlight returns the absolute scores.
func DisplayScores(players []Player, highlight int) []int {
	scores := make([]int, len(players))
	for i, p := range players {
		if highlight < 0 || highlight >= len(players) {
			scores[i] = p.Score
			continue
		}
		scores[i] = p.Score - players[highlight].Score
	}
	return scores
}
