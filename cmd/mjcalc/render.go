package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/mjcalc/internal/game"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)
)

// renderStandings lists players from highest to lowest score. Ties keep
// seat order.
func renderStandings(players []game.Player) string {
	ranked := append([]game.Player(nil), players...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	var b strings.Builder
	for i, p := range ranked {
		b.WriteString(fmt.Sprintf("%d. %-12s %s\n", i+1, p.Name, valueStyle.Render(fmt.Sprintf("%6d", p.Score))))
	}
	return b.String()
}

// renderHandValue shows a hand's label and its payments.
func renderHandValue(v game.HandValue, fan, fu int, dealer bool) string {
	var b strings.Builder
	who := "Non-dealer"
	if dealer {
		who = "Dealer"
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", who, v.Describe(fan, fu))))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-8s", label)))
		b.WriteString(" ")
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}
	row("Base", fmt.Sprintf("%d", v.Base))
	row("Ron", fmt.Sprintf("%d", v.Ron))
	if dealer {
		row("Tsumo", fmt.Sprintf("%d all", v.TsumoOther))
	} else {
		row("Tsumo", fmt.Sprintf("%d / %d", v.TsumoOther, v.TsumoDealer))
	}
	return b.String()
}
