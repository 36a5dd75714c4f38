package record

import (
	"fmt"
	"strings"

	"github.com/tidwall/sjson"
)

// Fields - тело запроса на создание или обновление записи.
// Поля кодируются в порядке добавления.
type Fields struct {
	raw []byte
}

func NewFields() *Fields {
	return &Fields{raw: []byte("{}")}
}

// Set добавляет или заменяет поле.
func (f *Fields) Set(key string, value any) error {
	if key == "" {
		return fmt.Errorf("%w: empty field name", ErrFieldMissing)
	}

	raw, err := sjson.SetBytes(f.raw, escapeKey(key), value)
	if err != nil {
		return fmt.Errorf("set field %q: %w", key, err)
	}
	f.raw = raw
	return nil
}

// FieldsFromPairs строит тело из пар "ключ=значение".
func FieldsFromPairs(pairs []string) (*Fields, error) {
	f := NewFields()
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("invalid field %q, want key=value", p)
		}
		if err := f.Set(key, value); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Bytes возвращает JSON представление полей.
func (f *Fields) Bytes() []byte {
	return f.raw
}

func (f *Fields) MarshalJSON() ([]byte, error) {
	return f.raw, nil
}

// escapeKey экранирует символы, которые sjson трактует как синтаксис пути.
func escapeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '\\', '|', '#', '@', '!', ':':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
