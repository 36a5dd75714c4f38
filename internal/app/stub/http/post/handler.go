package post

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
	huma.Register(api, h.userPostsOp(), h.userPosts)
	huma.Register(api, h.postCommentsOp(), h.postComments)
	huma.Register(api, h.userCommentsOp(), h.userComments)
}

func (h *Handler) userPosts(_ context.Context, in *IDInput) (*ListOutput, error) {
	return &ListOutput{Body: h.data.PostsOf(in.ID)}, nil
}

func (h *Handler) postComments(_ context.Context, in *IDInput) (*ListOutput, error) {
	return &ListOutput{Body: h.data.CommentsOfPost(in.ID)}, nil
}

func (h *Handler) userComments(_ context.Context, in *IDInput) (*ListOutput, error) {
	return &ListOutput{Body: h.data.CommentsOfUser(in.ID)}, nil
}
