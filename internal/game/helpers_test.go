package game

func scores(players []Player) []int {
	out := make([]int, len(players))
	for i, p := range players {
		out[i] = p.Score
	}
	return out
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
