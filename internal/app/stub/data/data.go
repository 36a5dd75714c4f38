package data

import (
	"encoding/json"
	"fmt"
	"math"
)

// Item - одна запись в наборе данных заглушки
type Item = map[string]any

// Dataset - данные, которые отдает заглушка API. Запись в API набор не меняет.
type Dataset struct {
	Users    []Item `json:"users"`
	Posts    []Item `json:"posts"`
	Comments []Item `json:"comments"`
	Todos    []Item `json:"todos"`
}

// FromJSON загружает набор данных из JSON документа
func FromJSON(raw []byte) (*Dataset, error) {
	var d Dataset
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("ошибка разбора набора данных: %w", err)
	}
	return &d, nil
}

func (d *Dataset) User(id int) (Item, bool) {
	for _, u := range d.Users {
		if v, ok := IntField(u, "id"); ok && v == id {
			return u, true
		}
	}
	return nil, false
}

func (d *Dataset) UsersByUsername(username string) []Item {
	return filter(d.Users, func(u Item) bool {
		name, _ := u["username"].(string)
		return name == username
	})
}

func (d *Dataset) PostsOf(userID int) []Item {
	return filter(d.Posts, fieldEquals("userId", userID))
}

func (d *Dataset) CommentsOfPost(postID int) []Item {
	return filter(d.Comments, fieldEquals("postId", postID))
}

// CommentsOfUser возвращает комментарии ко всем постам пользователя
func (d *Dataset) CommentsOfUser(userID int) []Item {
	posts := make(map[int]struct{})
	for _, p := range d.PostsOf(userID) {
		if id, ok := IntField(p, "id"); ok {
			posts[id] = struct{}{}
		}
	}

	return filter(d.Comments, func(c Item) bool {
		id, ok := IntField(c, "postId")
		if !ok {
			return false
		}
		_, own := posts[id]
		return own
	})
}

func (d *Dataset) TodosOf(userID int) []Item {
	return filter(d.Todos, fieldEquals("userId", userID))
}

// IntField читает целочисленное поле независимо от того, как оно было декодировано
func IntField(item Item, key string) (int, bool) {
	switch v := item[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	default:
		return 0, false
	}
}

func fieldEquals(key string, want int) func(Item) bool {
	return func(item Item) bool {
		v, ok := IntField(item, key)
		return ok && v == want
	}
}

// filter всегда возвращает не-nil срез, чтобы в JSON получался [] а не null
func filter(items []Item, keep func(Item) bool) []Item {
	out := make([]Item, 0)
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
