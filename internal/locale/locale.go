package locale

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// ErrUnsupportedLocale is returned when no catalog exists for a locale
var ErrUnsupportedLocale = errors.New("unsupported locale")

// Supported locales
var (
	English  = language.English
	Japanese = language.Japanese

	// Default is used when no locale is configured
	Default = English
)

// Message keys. Each key doubles as the English format string.
const (
	EffectsHeading = "Effects"

	EffectNone          = "No effect."
	EffectGoToStart     = "Go back to the start."
	EffectSkipSelf      = "Skip the next %d turn(s)."
	EffectPushSelf      = "Advance %d square(s)."
	EffectPullSelf      = "Go back %d square(s)."
	EffectPushOthersAll = "Every other player advances %d square(s)."
	EffectPullOthersAll = "Every other player goes back %d square(s)."

	GuidanceQuit   = "ESC: quit"
	GuidanceRedraw = "Ctrl-l: redraw"
	GuidanceTitle  = "Ctrl-t: title screen"
	GuidanceRandom = "r: roll a random die"

	PromptStart        = "Press Enter to start."
	PromptDiceRoll     = "%s, roll the dice (%d-%d). >>> "
	PromptEnter        = "Press Enter."
	PromptQuit         = "Quit the game? (Y: yes / other keys: no)"
	PromptGameFinished = "Everyone has reached the goal.\nPlease quit the game."

	DiceOutOfRange = "The dice value is out of range: %d"
	PlayerResting  = "%s is resting. Remaining: %d"
	PlayerArrived  = "%s reached the goal in place %d."
	ColumnName     = "Name"

	ResultNotRecorded = "The result of this game could not be saved."
)

var translations = map[language.Tag]map[string]string{
	English: {},
	Japanese: {
		EffectsHeading: "効果",

		EffectNone:          "なし",
		EffectGoToStart:     "スタートに戻る。",
		EffectSkipSelf:      "プレイヤーの休みを%d回追加。",
		EffectPushSelf:      "プレイヤーは%d マス進む。",
		EffectPullSelf:      "プレイヤーは%d マス戻る。",
		EffectPushOthersAll: "他のプレイヤー全員が%d マス進む。",
		EffectPullOthersAll: "他のプレイヤー全員が%d マス戻る。",

		GuidanceQuit:   "ESC: 終了",
		GuidanceRedraw: "Ctrl-l: 再描画",
		GuidanceTitle:  "Ctrl-t: タイトル画面の表示",
		GuidanceRandom: "r: ランダムにサイコロを振る",

		PromptStart:        "エンターキーを押して開始してください。",
		PromptDiceRoll:     "%sさん、サイコロを振ってください (%d-%d)。 >>> ",
		PromptEnter:        "エンターキーを押してください。",
		PromptQuit:         "ゲームを終了しますか？ (Y: はい / その他: いいえ)",
		PromptGameFinished: "全員ゴールしました。\nゲームを終了してください。",

		DiceOutOfRange: "サイコロの値が範囲外です: %d",
		PlayerResting:  "%sさんはお休みです。カウント: %d",
		PlayerArrived:  "%sさんが%d位でゴールしました。",
		ColumnName:     "名前",

		ResultNotRecorded: "このゲームの結果を保存できませんでした。",
	},
}

var (
	messages = mustBuildCatalog()
	matcher  = language.NewMatcher(Supported())
)

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(English))
	for tag, table := range translations {
		for key, msg := range table {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("locale: register %s %q: %v", tag, key, err))
			}
		}
	}
	return b
}

// Supported returns the locales with a message table, default first
func Supported() []language.Tag {
	tags := []language.Tag{Default}
	var rest []language.Tag
	for tag := range translations {
		if tag != Default {
			rest = append(rest, tag)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].String() < rest[j].String() })
	return append(tags, rest...)
}

// Parse resolves a locale name such as "en", "ja" or "ja-JP".
// An empty name selects the default locale.
func Parse(name string) (language.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Default, nil
	}

	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %s", ErrUnsupportedLocale, name)
	}

	_, index, confidence := matcher.Match(tag)
	if confidence < language.High {
		return language.Und, fmt.Errorf("%w: %s", ErrUnsupportedLocale, name)
	}
	return Supported()[index], nil
}

// NewPrinter returns a printer rendering messages in the given locale
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}
