package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// TimestampKind - форма, в которой время пришло из источника
type TimestampKind int

const (
	TimestampUnset TimestampKind = iota
	TimestampMillis
	TimestampDate
)

// Timestamp - явный tagged union вместо разбора "число / Date / серверный timestamp" в ядре.
// Приводится один раз на границе доступа к данным.
type Timestamp struct {
	Kind   TimestampKind
	Millis int64
	Date   time.Time
}

// MillisTimestamp создаёт Timestamp из unix-миллисекунд
func MillisTimestamp(ms int64) Timestamp {
	return Timestamp{Kind: TimestampMillis, Millis: ms}
}

// DateTimestamp создаёт Timestamp из time.Time
func DateTimestamp(t time.Time) Timestamp {
	if t.IsZero() {
		return Timestamp{}
	}
	return Timestamp{Kind: TimestampDate, Date: t}
}

// Time приводит значение к time.Time (нулевое время для Unset)
func (t Timestamp) Time() time.Time {
	switch t.Kind {
	case TimestampMillis:
		return time.UnixMilli(t.Millis).UTC()
	case TimestampDate:
		return t.Date
	default:
		return time.Time{}
	}
}

// IsZero проверяет что время не задано
func (t Timestamp) IsZero() bool {
	return t.Kind == TimestampUnset
}

// Before сравнивает два значения по времени; Unset раньше любого заданного
func (t Timestamp) Before(other Timestamp) bool {
	return t.Time().Before(other.Time())
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time().Format(time.RFC3339Nano))
}

// UnmarshalJSON принимает число (мс), строку RFC3339 или объект {"seconds","nanoseconds"}
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("parse timestamp %q: %w", s, err)
		}
		*t = DateTimestamp(parsed)
		return nil
	case '{':
		var server struct {
			Seconds     int64 `json:"seconds"`
			Nanoseconds int64 `json:"nanoseconds"`
		}
		if err := json.Unmarshal(data, &server); err != nil {
			return err
		}
		*t = DateTimestamp(time.Unix(server.Seconds, server.Nanoseconds).UTC())
		return nil
	default:
		var ms float64
		if err := json.Unmarshal(data, &ms); err != nil {
			return fmt.Errorf("parse timestamp: %w", err)
		}
		*t = MillisTimestamp(int64(ms))
		return nil
	}
}
