package record

import (
	"fmt"
)

// LastByID находит запись с наибольшим id. При равенстве выигрывает последняя.
func LastByID(c Collection) (Record, bool, error) {
	var (
		last  Record
		maxID int64
		found bool
	)

	for i, r := range c {
		id, err := r.ID()
		if err != nil {
			return Record{}, false, fmt.Errorf("record #%d: %w", i, err)
		}
		if !found || id >= maxID {
			last, maxID, found = r, id, true
		}
	}

	return last, found, nil
}

// OpenTitles возвращает заголовки незавершенных задач в исходном порядке.
func OpenTitles(c Collection) ([]string, error) {
	titles := make([]string, 0, len(c))

	for i, r := range c {
		completed, err := r.Bool("completed")
		if err != nil {
			return nil, fmt.Errorf("todo #%d: %w", i, err)
		}
		if completed {
			continue
		}

		title, err := r.Str("title")
		if err != nil {
			return nil, fmt.Errorf("todo #%d: %w", i, err)
		}
		titles = append(titles, title)
	}

	return titles, nil
}
