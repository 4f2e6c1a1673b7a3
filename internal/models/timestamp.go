package models

import (
	"errors"
	"fmt"
	"time"
)

// TimestampLayout is the layout used when producing server-style timestamps
// (ISO-8601 without offset, microsecond precision, UTC).
const TimestampLayout = "2006-01-02T15:04:05.000000"

// timestampLayouts перечисляет допустимые форматы ISO-8601.
// Сервер отдает время без смещения (naive), такие значения трактуются как UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999Z0700",
}

// ParseTimestamp разбирает ISO-8601 строку времени
func ParseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("timestamp is empty")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// FormatTimestamp форматирует время так же, как это делает сервер
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
