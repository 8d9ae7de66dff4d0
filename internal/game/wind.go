package game

import "fmt"

var windLabels = [...]string{"East", "South", "West", "North"}

// SeatWindLabel returns the wind name for a seat or prevailing wind index.
func SeatWindLabel(seat int) string {
	i := seat % len(windLabels)
	if i < 0 {
		i += len(windLabels)
	}
	return windLabels[i]
}

// DealerSeat returns the dealer for a round. The prevailing wind does not
// affect who deals; a full wind is numPlayers rounds long.
func DealerSeat(wind, round, numPlayers int) int {
	if numPlayers <= 0 {
		return 0
	}
	seat := (round - 1) % numPlayers
	if seat < 0 {
		seat += numPlayers
	}
	return seat
}

// RoundLabel formats a wind and round pair, e.g. "East 1".
func RoundLabel(wind, round int) string {
	return fmt.Sprintf("%s %d", SeatWindLabel(wind), round)
}
