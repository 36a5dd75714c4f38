package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/exp/slog"

	"jsonapi/internal/app/client/config"
	"jsonapi/internal/domain/record"
	"jsonapi/internal/utils/logger"
)

// ExportLastPostComments сохраняет комментарии к последнему посту пользователя в файл.
// Возвращает путь к файлу или пустую строку, если ничего не записано.
// Ошибка записи файла только логируется; сетевые ошибки и ошибки разбора возвращаются.
func (a *App) ExportLastPostComments(ctx context.Context, userID int) (string, error) {
	posts, err := a.ListUserPosts(ctx, userID)
	if err != nil {
		return "", err
	}

	// Находим пост с наибольшим id (последний пост)
	last, found, err := record.LastByID(posts)
	if err != nil {
		return "", fmt.Errorf("выбор последнего поста: %w", err)
	}
	if !found {
		a.log.Info("У пользователя нет постов, экспорт пропущен", slog.Int("user_id", userID))
		return "", nil
	}

	postID, err := last.ID()
	if err != nil {
		return "", err
	}

	owner := int(postID)
	if a.config.CommentsScope == config.ScopeUser {
		owner = userID
	}

	comments, err := a.ListPostComments(ctx, owner)
	if err != nil {
		return "", err
	}

	path := a.exportPath(userID, postID)
	if err := writeCollection(path, comments); err != nil {
		a.log.Error("Ошибка записи комментариев в файл",
			slog.String("path", path),
			slog.Int("user_id", userID),
			slog.Int64("post_id", postID),
			logger.Err(err),
		)
		return "", nil
	}

	a.log.Info("Комментарии сохранены",
		slog.String("path", path),
		slog.Int64("post_id", postID),
		slog.Int("count", len(comments)),
	)
	return path, nil
}

func (a *App) exportPath(userID int, postID int64) string {
	name := strings.NewReplacer(
		"{user}", strconv.Itoa(userID),
		"{post}", strconv.FormatInt(postID, 10),
	).Replace(a.config.ExportFile)

	return filepath.Join(a.config.ExportDir, name)
}

func writeCollection(path string, c record.Collection) (err error) {
	data, err := c.Pretty()
	if err != nil {
		return fmt.Errorf("ошибка сериализации: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ошибка создания директории: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("ошибка закрытия файла: %w", cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("ошибка записи файла: %w", err)
	}
	return nil
}

// PrintOpenTodos печатает заголовки незавершенных задач пользователя
func (a *App) PrintOpenTodos(ctx context.Context, w io.Writer, userID int) error {
	todos, err := a.ListUserTodos(ctx, userID)
	if err != nil {
		return err
	}

	titles, err := record.OpenTitles(todos)
	if err != nil {
		return fmt.Errorf("открытые задачи пользователя %d: %w", userID, err)
	}

	for _, title := range titles {
		if _, err := fmt.Fprintf(w, "- %s\n", title); err != nil {
			return err
		}
	}
	return nil
}
