package record

import (
	"github.com/tidwall/gjson"
)

// Kind - тип JSON значения поля записи
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String возвращает строковое представление типа.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value - значение поля записи с известным типом
type Value struct {
	res gjson.Result
}

func newValue(res gjson.Result) Value {
	return Value{res: res}
}

// Kind возвращает тип значения.
func (v Value) Kind() Kind {
	switch v.res.Type {
	case gjson.True, gjson.False:
		return KindBool
	case gjson.Number:
		return KindNumber
	case gjson.String:
		return KindString
	case gjson.JSON:
		if v.res.IsArray() {
			return KindArray
		}
		return KindObject
	default:
		return KindNull
	}
}

// Raw возвращает исходный JSON текст значения.
func (v Value) Raw() string {
	return v.res.Raw
}

// String возвращает строку без кавычек для строковых значений и JSON текст для остальных.
func (v Value) String() string {
	if v.Kind() == KindString {
		return v.res.Str
	}
	return v.res.Raw
}
