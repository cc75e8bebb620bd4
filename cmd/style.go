package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/giru28/drawpoker/domain/poker"
	"github.com/giru28/drawpoker/ledger"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

func renderBanner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("F", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ive ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("C", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ard ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("D", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("raw", pterm.FgDarkGray.ToStyle()),
	).Render()
}

func renderRules(l labels) {
	pterm.DefaultSection.Println(l.msg.title)
	for _, line := range l.msg.rules {
		pterm.Println(line)
	}
	pterm.DefaultTable.WithHasHeader().WithData(categoryTable(l)).Render()
	pterm.Println()
}

// categoryTable lists the categories from strongest to weakest.
func categoryTable(l labels) pterm.TableData {
	data := pterm.TableData{{l.msg.categoryHeader[0], l.msg.categoryHeader[1]}}
	for i := len(poker.Categories) - 1; i >= 0; i-- {
		hc := poker.Categories[i]
		data = append(data, []string{l.category(hc), strconv.Itoa(hc.Score())})
	}
	return data
}

func handString(l labels, hand []poker.Card) string {
	cards := make([]string, len(hand))
	for i, c := range hand {
		cards[i] = fmt.Sprintf("%d:%s", i+1, l.card(c))
	}
	return strings.Join(cards, "  ")
}

func printPlayerInfo(l labels, s poker.Standing) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := pterm.Sprintfln("%s\n%s: %s\n%s: %d",
		pterm.BgGreen.Sprint(handString(l, s.Hand)),
		l.msg.category, pterm.LightCyan(l.category(s.Category)),
		l.msg.score, s.Score,
	)
	if s.Description != "" {
		body += pterm.Sprintfln("%s: %s", l.msg.detail, pterm.Gray(s.Description))
	}
	return pbox.WithTitle(s.Name).WithTitleTopLeft().Sprint(body)
}

func printStandings(l labels, title string, standings []poker.Standing) {
	pterm.DefaultSection.Println(title)
	var panels []pterm.Panel
	for _, s := range standings {
		panels = append(panels, pterm.Panel{Data: printPlayerInfo(l, s)})
	}
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{panels}).Render()
}

func printHand(l labels, s poker.Standing) {
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{{{Data: printPlayerInfo(l, s)}}}).Render()
}

func getWinnerPanel(l labels, res poker.Result) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	w := res.Winner
	info := pterm.Sprintfln("%s\n%s: %s\n%s: %d\n%s",
		pterm.LightCyan(w.Name),
		l.msg.category, l.category(w.Category),
		l.msg.score, w.Score,
		handString(l, w.Hand),
	)
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen("|" + l.msg.winner + "|")).WithTitleTopCenter().Sprint(info)}
}

func printWinner(l labels, res poker.Result) {
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{{getWinnerPanel(l, res)}}).Render()
}

func historyTable(l labels, results []poker.Result) pterm.TableData {
	h := l.msg.historyHeader
	data := pterm.TableData{{h[0], h[1], h[2], h[3]}}
	for i, r := range results {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			r.Winner.Name,
			l.category(r.Winner.Category),
			strconv.Itoa(r.Winner.Score),
		})
	}
	return data
}

func printHistory(l labels, history *ledger.Blockchain) {
	results := history.Results()
	if len(results) == 0 {
		return
	}
	pterm.DefaultSection.Println(l.msg.history)
	pterm.DefaultTable.WithHasHeader().WithData(historyTable(l, results)).Render()
	if err := history.Verify(); err != nil {
		pterm.Error.Printfln(l.msg.historyInvalid, err)
		return
	}
	pterm.Success.Printfln(l.msg.historyValid, len(results))
}
