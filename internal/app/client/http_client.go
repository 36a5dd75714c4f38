package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"jsonapi/internal/app/client/config"
)

const contentTypeJSON = "application/json; charset=UTF-8"

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	policy    *StatusPolicy
	baseURL   string
	userAgent string
}

// response - прочитанный ответ сервера
type response struct {
	status int
	body   []byte
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 2,
		},
	}

	return &httpClient{
		client:    client,
		log:       log.With(slog.String("component", "http_client")),
		policy:    NewStatusPolicy(log, cfg.StrictStatus),
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
	}, nil
}

// do выполняет запрос и проверяет статус по политике операции.
// В строгом режиме при неверном статусе возвращает и ответ, и ошибку.
func (h *httpClient) do(ctx context.Context, op Operation, method, path string, query url.Values, body []byte) (*response, error) {
	resp, err := h.doRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res, err := h.readResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := h.policy.Check(op, res.status, res.body); err != nil {
		return res, err
	}

	return res, nil
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, query url.Values, body []byte) (*http.Response, error) {
	target := h.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	// Добавляем заголовки
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
		"request_id", requestID,
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

func (h *httpClient) readResponse(resp *http.Response) (*response, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"request_id", resp.Request.Header.Get("X-Request-ID"),
		"body", string(body),
	)

	return &response{
		status: resp.StatusCode,
		body:   body,
	}, nil
}

// expand подставляет идентификатор в шаблон пути
func expand(template string, id int) string {
	return strings.ReplaceAll(template, "{id}", strconv.Itoa(id))
}
