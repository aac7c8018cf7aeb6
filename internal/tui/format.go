package tui

import (
	"fmt"
	"time"
)

// Greeting returns the salutation for an hour of the day.
func Greeting(hour int) string {
	switch {
	case hour < 5:
		return "おやすみなさい"
	case hour < 12:
		return "おはようございます"
	case hour < 18:
		return "こんにちは"
	default:
		return "こんばんは"
	}
}

var jaWeekdays = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// FormatDateJa renders a date line like 2026年9月1日（火）.
func FormatDateJa(t time.Time) string {
	return fmt.Sprintf("%d年%d月%d日（%s）", t.Year(), int(t.Month()), t.Day(), jaWeekdays[t.Weekday()])
}

// FormatCountdown renders remaining time as MM:SS, clamped at zero.
func FormatCountdown(remaining time.Duration) string {
	if remaining <= 0 {
		return "00:00"
	}
	mins := int(remaining.Minutes())
	secs := int(remaining.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// FormatMinutes renders an estimate like "約25分".
func FormatMinutes(mins int) string {
	if mins <= 0 {
		return "完了"
	}
	return fmt.Sprintf("約%d分", mins)
}
