package todo

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"jsonapi/internal/app/stub/data"
)

type Handler struct {
	data       *data.Dataset
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(ds *data.Dataset, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		data:       ds,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.userTodosOp(), h.userTodos)
}

func (h *Handler) userTodos(_ context.Context, in *IDInput) (*ListOutput, error) {
	h.log.Debug("stub: todos requested", slog.Int("user_id", in.ID))
	return &ListOutput{Body: h.data.TodosOf(in.ID)}, nil
}
