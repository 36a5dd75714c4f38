package user

import (
	"context"
	"fmt"

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
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(_ context.Context, in *ListInput) (*ListOutput, error) {
	if in.Username != "" {
		return &ListOutput{Body: h.data.UsersByUsername(in.Username)}, nil
	}

	users := h.data.Users
	if users == nil {
		users = []data.Item{}
	}
	return &ListOutput{Body: users}, nil
}

func (h *Handler) get(_ context.Context, in *IDInput) (*ItemOutput, error) {
	u, ok := h.data.User(in.ID)
	if !ok {
		return nil, huma.Error404NotFound(fmt.Sprintf("user %d not found", in.ID))
	}
	return &ItemOutput{Body: u}, nil
}

func (h *Handler) create(_ context.Context, in *CreateInput) (*ItemOutput, error) {
	out := copyItem(in.Body)
	out["id"] = len(h.data.Users) + 1

	h.log.Debug("stub: user created", slog.Any("id", out["id"]))
	return &ItemOutput{Body: out}, nil
}

func (h *Handler) update(_ context.Context, in *UpdateInput) (*ItemOutput, error) {
	if _, ok := h.data.User(in.ID); !ok {
		return nil, huma.Error404NotFound(fmt.Sprintf("user %d not found", in.ID))
	}

	out := copyItem(in.Body)
	out["id"] = in.ID
	return &ItemOutput{Body: out}, nil
}

func (h *Handler) delete(_ context.Context, _ *IDInput) (*ItemOutput, error) {
	return &ItemOutput{Body: data.Item{}}, nil
}

func copyItem(src data.Item) data.Item {
	out := make(data.Item, len(src)+1)
	for k, v := range src {
		out[k] = v
	}
	return out
}
