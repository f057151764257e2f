package main

import (
	"strings"

	"github.com/luca-patrignani/pusoy-dos/domain/pusoy"
	"github.com/pterm/pterm"
)

func printHandInfo(name string, h pusoy.Hand, main bool) string {
	hpadding := 4
	if main {
		hpadding = 10
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(hpadding).WithTopPadding(1).WithBottomPadding(1)
	cards := make([]string, 0, h.Len())
	for _, c := range h.Cards() {
		cards = append(cards, c.Pretty())
	}
	return pbox.WithTitle(name).WithTitleTopLeft().Sprintf("%s\n%s\n%d cards", strings.Join(cards, " "), pterm.Gray(h.String()), h.Len())
}

// printState renders every opponent's hand (when reveal is set) above the player's own.
func printState(opponents []pusoy.Hand, own pusoy.Hand, reveal bool, additionalPanel ...pterm.Panel) {
	var panels []pterm.Panel
	if reveal {
		for i, h := range opponents {
			panels = append(panels, pterm.Panel{Data: printHandInfo(pterm.Sprintf("Opponent %d", i+1), h, false)})
		}
	}
	dashboard := []pterm.Panel{{Data: printHandInfo(pterm.LightCyan("Your Cards"), own, true)}}
	dashboard = append(dashboard, additionalPanel...)

	layout := [][]pterm.Panel{dashboard}
	if len(panels) > 0 {
		layout = [][]pterm.Panel{panels, dashboard}
	}
	pterm.DefaultPanel.WithPanels(layout).Render()
}

func getResultPanel(o outcome) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	cards := make([]string, 0, o.Played.Len())
	for _, c := range o.Played.Cards() {
		cards = append(cards, c.Pretty())
	}
	info := pterm.Sprintfln("%s", o.Label())
	info += pterm.Sprintfln("%s  score %d", strings.Join(cards, " "), o.Result.Score)
	if o.Poker != "" {
		info += pterm.Sprintfln("poker: %s", o.Poker)
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen("|PLAY|")).WithTitleTopCenter().Sprint(info)}
}
