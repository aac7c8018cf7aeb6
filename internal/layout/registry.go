// Package layout owns the card registry and the persisted display order.
package layout

// CardID names a registered dashboard card.
type CardID string

const (
	CardWeather     CardID = "weather"
	CardClock       CardID = "clock"
	CardTrain       CardID = "train"
	CardTodo        CardID = "todo"
	CardLocation    CardID = "location"
	CardAnniversary CardID = "anniversary"
	CardQuote       CardID = "quote"
	CardNews        CardID = "news"
	CardRoutine     CardID = "routine"
	CardPokemon     CardID = "pokemon"
)

// DefaultOrder is the rendering order used when nothing valid is persisted.
func DefaultOrder() []CardID {
	return []CardID{
		CardWeather, CardClock, CardTrain, CardTodo, CardLocation,
		CardAnniversary, CardQuote, CardNews, CardRoutine, CardPokemon,
	}
}

// Known reports whether id names a registered card. Unknown identifiers in
// a persisted order render as no-ops, never a crash.
func Known(id CardID) bool {
	switch id {
	case CardWeather, CardClock, CardTrain, CardTodo, CardLocation,
		CardAnniversary, CardQuote, CardNews, CardRoutine, CardPokemon:
		return true
	}
	return false
}

// Span returns the column weight of a card: 2 for a full-width cell,
// 1 for a standard cell. The registry is the single source of truth;
// layout weight is never persisted.
func Span(id CardID) int {
	switch id {
	case CardNews:
		return 2
	case CardWeather, CardClock, CardTrain, CardTodo, CardLocation,
		CardAnniversary, CardQuote, CardRoutine, CardPokemon:
		return 1
	}
	return 1
}

// Title returns the card's header label.
func Title(id CardID) string {
	switch id {
	case CardWeather:
		return "今日の天気"
	case CardClock:
		return "時計・タイマー"
	case CardTrain:
		return "都営浅草線"
	case CardTodo:
		return "今日のタスク"
	case CardLocation:
		return "位置情報設定"
	case CardAnniversary:
		return "今日は何の日"
	case CardQuote:
		return "偉人の言葉"
	case CardNews:
		return "主要ニュース"
	case CardRoutine:
		return "モーニングルーティン"
	case CardPokemon:
		return "今日のポケモン"
	}
	return string(id)
}
