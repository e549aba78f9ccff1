package domain

import (
	"fmt"
	"time"
)

// Значения конфигурации по умолчанию
const (
	DefaultBusinessStartHour     = 9
	DefaultBusinessEndHour       = 17
	DefaultMinBookingDuration    = 60 * time.Minute
	DefaultMinDisplayDuration    = 30 * time.Minute
	DefaultPendingTTL            = time.Hour
	DefaultTimezone              = "Asia/Tokyo"
	DefaultCalendarID            = "primary"
	DefaultUserID                = "default_user"
	DefaultEventTitle            = "会議"
	DefaultEventsLookaheadDays   = 30
	DefaultSelectionListMaxSlots = 20
)

// Форматы дат и времени
const (
	DateFormat       = "2006-01-02" // YYYY-MM-DD
	TimeFormat       = "15:04"      // HH:MM
	DateFormatJa     = "01月02日"
	DateTimeFormatJa = "01月02日 15:04"
)

// weekdaysJa японские односимвольные названия дней недели (воскресенье первое)
var weekdaysJa = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// WeekdayJa возвращает японское обозначение дня недели
func WeekdayJa(t time.Time) string {
	return weekdaysJa[int(t.Weekday())]
}

// FormatDateJa форматирует дату как 02月08日
func FormatDateJa(t time.Time) string {
	return t.Format(DateFormatJa)
}

// FormatDateWeekdayJa форматирует дату как 02月08日(木)
func FormatDateWeekdayJa(t time.Time) string {
	return fmt.Sprintf("%s(%s)", t.Format(DateFormatJa), WeekdayJa(t))
}

// FormatDateTimeJa форматирует момент как 02月08日 13:00
func FormatDateTimeJa(t time.Time) string {
	return t.Format(DateTimeFormatJa)
}
