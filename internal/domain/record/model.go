package record

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Record - один JSON объект (пользователь, пост, комментарий или задача).
// Хранится в исходном виде, поэтому порядок полей сохраняется.
type Record struct {
	raw []byte
}

// Collection - упорядоченный список записей
type Collection []Record

// Parse разбирает одиночный JSON объект.
func Parse(data []byte) (Record, error) {
	var r Record
	if err := r.UnmarshalJSON(data); err != nil {
		return Record{}, err
	}
	return r, nil
}

// ParseCollection разбирает JSON массив объектов. Тело "null" дает пустую коллекцию.
func ParseCollection(data []byte) (Collection, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid json", ErrDecode)
	}

	res := gjson.ParseBytes(data)
	if res.Type == gjson.Null {
		return Collection{}, nil
	}
	if !res.IsArray() {
		return nil, fmt.Errorf("%w: expected array, got %s", ErrDecode, newValue(res).Kind())
	}

	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if c == nil {
		c = Collection{}
	}
	return c, nil
}

func (r *Record) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: invalid json", ErrDecode)
	}
	if res := gjson.ParseBytes(data); !res.IsObject() {
		return fmt.Errorf("%w: expected object, got %s", ErrDecode, newValue(res).Kind())
	}

	r.raw = append(r.raw[:0], data...)
	return nil
}

func (r Record) MarshalJSON() ([]byte, error) {
	if len(r.raw) == 0 {
		return []byte("{}"), nil
	}
	return r.raw, nil
}

// String возвращает компактное JSON представление записи.
func (r Record) String() string {
	if len(r.raw) == 0 {
		return "{}"
	}
	return string(pretty.Ugly(r.raw))
}

// Get возвращает значение поля.
func (r Record) Get(field string) (Value, error) {
	var (
		found Value
		ok    bool
	)
	gjson.ParseBytes(r.raw).ForEach(func(key, value gjson.Result) bool {
		if key.Str == field {
			found, ok = newValue(value), true
			return false
		}
		return true
	})

	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrFieldMissing, field)
	}
	return found, nil
}

// Keys возвращает имена полей в исходном порядке.
func (r Record) Keys() []string {
	var keys []string
	gjson.ParseBytes(r.raw).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.Str)
		return true
	})
	return keys
}

// Has проверяет наличие поля.
func (r Record) Has(field string) bool {
	_, err := r.Get(field)
	return err == nil
}

// Int возвращает целочисленное поле.
func (r Record) Int(field string) (int64, error) {
	v, err := r.Get(field)
	if err != nil {
		return 0, err
	}
	if v.Kind() != KindNumber {
		return 0, fmt.Errorf("%w: %q is %s, want number", ErrFieldType, field, v.Kind())
	}

	if n, err := strconv.ParseInt(v.res.Raw, 10, 64); err == nil {
		return n, nil
	}
	if f := v.res.Num; f == math.Trunc(f) && math.Abs(f) <= math.MaxInt64 {
		return int64(f), nil
	}
	return 0, fmt.Errorf("%w: %q is %s, want integer", ErrFieldType, field, v.res.Raw)
}

// Bool возвращает логическое поле.
func (r Record) Bool(field string) (bool, error) {
	v, err := r.Get(field)
	if err != nil {
		return false, err
	}
	if v.Kind() != KindBool {
		return false, fmt.Errorf("%w: %q is %s, want bool", ErrFieldType, field, v.Kind())
	}
	return v.res.Bool(), nil
}

// Str возвращает строковое поле.
func (r Record) Str(field string) (string, error) {
	v, err := r.Get(field)
	if err != nil {
		return "", err
	}
	if v.Kind() != KindString {
		return "", fmt.Errorf("%w: %q is %s, want string", ErrFieldType, field, v.Kind())
	}
	return v.res.Str, nil
}

// ID возвращает идентификатор записи. Отрицательный id считается ошибкой.
func (r Record) ID() (int64, error) {
	id, err := r.Int("id")
	if err != nil {
		return 0, err
	}
	if id < 0 {
		return 0, fmt.Errorf("%w: negative id %d", ErrFieldType, id)
	}
	return id, nil
}

// Pretty возвращает коллекцию в виде JSON с отступами.
func (c Collection) Pretty() ([]byte, error) {
	if c == nil {
		c = Collection{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(data), nil
}
