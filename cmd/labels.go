package main

import (
	"fmt"

	"github.com/giru28/drawpoker/domain/poker"
	"github.com/pterm/pterm"
)

// messages holds every user facing sentence of the driver
type messages struct {
	title           string
	rules           []string
	categoryHeader  [2]string
	playerCount     string
	playerName      string
	defaultName     string
	discard         string
	invalidInput    string
	firstEvaluation string
	finalEvaluation string
	winner          string
	category        string
	score           string
	detail          string
	drawIgnored     string
	playAgain       string
	history         string
	historyHeader   [4]string
	historyValid    string
	historyInvalid  string
	goodbye         string
}

var english = messages{
	title: "Five Card Draw",
	rules: []string{
		"Exchange cards to build the strongest hand and beat the other players!",
		"Every player is dealt 5 cards and may exchange any of them once.",
		"Hand strength:",
	},
	categoryHeader:  [2]string{"Hand", "Score"},
	playerCount:     "Number of players (%d-%d)",
	playerName:      "Name of player %d",
	defaultName:     "Player %d",
	discard:         "%s, positions to exchange separated by spaces (1-5), blank to keep",
	invalidInput:    "Invalid input: %v",
	firstEvaluation: "Dealt hands",
	finalEvaluation: "Final hands",
	winner:          "Winner",
	category:        "Hand",
	score:           "Score",
	detail:          "Detail",
	drawIgnored:     "%s keeps the hand: %v",
	playAgain:       "Play another round?",
	history:         "Round history",
	historyHeader:   [4]string{"#", "Winner", "Hand", "Score"},
	historyValid:    "History verified: %d rounds",
	historyInvalid:  "History verification failed: %v",
	goodbye:         "Thanks for playing!",
}

var japanese = messages{
	title: "Five Card Draw",
	rules: []string{
		"手札を交換して最も強い役を作り、他のプレイヤーよりも勝ちましょう！",
		"手札は5枚配られます。交換は1回だけできます。",
		"役の強さは以下の通りです:",
	},
	categoryHeader:  [2]string{"役", "得点"},
	playerCount:     "プレイヤーの人数を入力してください (%d-%d)",
	playerName:      "プレイヤー%dの名前を入力してください",
	defaultName:     "プレイヤー%d",
	discard:         "%sさん、入れ替えるカードの番号をスペース区切りで入力してください (1-5)。入れ替えない場合は何も入力せずにEnter",
	invalidInput:    "入力が無効です: %v",
	firstEvaluation: "配られた手札",
	finalEvaluation: "最終の手札",
	winner:          "勝者",
	category:        "役",
	score:           "得点",
	detail:          "詳細",
	drawIgnored:     "%sさんの入れ替えは行われません: %v",
	playAgain:       "ゲームを続けますか？",
	history:         "ゲームの記録",
	historyHeader:   [4]string{"#", "勝者", "役", "得点"},
	historyValid:    "記録を検証しました: %dゲーム",
	historyInvalid:  "記録の検証に失敗しました: %v",
	goodbye:         "ゲームを終了します。お疲れ様でした！",
}

type labels struct {
	locale string
	msg    messages
}

func newLabels(locale string) labels {
	if locale == "ja" {
		return labels{locale: locale, msg: japanese}
	}
	return labels{locale: "en", msg: english}
}

var japaneseCategories = map[poker.HandCategory]string{
	poker.HighCard:      "ハイカード",
	poker.OnePair:       "ワンペア",
	poker.TwoPair:       "ツーペア",
	poker.ThreeOfAKind:  "スリーカード",
	poker.Straight:      "ストレート",
	poker.Flush:         "フラッシュ",
	poker.FullHouse:     "フルハウス",
	poker.FourOfAKind:   "フォーカード",
	poker.StraightFlush: "ストレートフラッシュ",
	poker.RoyalFlush:    "ロイヤルフラッシュ",
}

var japaneseSuits = map[poker.Suit]string{
	poker.Spade:   "スペード",
	poker.Heart:   "ハート",
	poker.Diamond: "ダイヤ",
	poker.Club:    "クラブ",
}

var japaneseFaces = map[poker.Rank]string{
	poker.Jack:  "ジャック",
	poker.Queen: "クイーン",
	poker.King:  "キング",
	poker.Ace:   "エース",
}

func (l labels) category(hc poker.HandCategory) string {
	if l.locale == "ja" {
		if s, ok := japaneseCategories[hc]; ok {
			return s
		}
	}
	return hc.String()
}

func (l labels) card(c poker.Card) string {
	if l.locale != "ja" {
		return c.String()
	}
	rank, ok := japaneseFaces[c.Rank()]
	if !ok {
		rank = c.Rank().String()
	}
	suit := japaneseSuits[c.Suit()]
	if c.Suit() == poker.Heart || c.Suit() == poker.Diamond {
		suit = pterm.LightRed(suit)
	}
	return fmt.Sprintf("%sの%s", rank, suit)
}
