package impl

import (
	"context"
	"log/slog"

	deliverycontext "wardlink/internal/delivery/context"
	domainerrors "wardlink/internal/domain/errors"
	"wardlink/internal/domain/repository"
	"wardlink/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	postRepo repository.PostRepository
	logger   *slog.Logger
}

// PostServiceParams holds dependencies for postService, injected by Fx.
type PostServiceParams struct {
	fx.In

	PostRepo repository.PostRepository
	Logger   *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		postRepo: params.PostRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetPostDetail retrieves a single video letter scoped to the caller's hospital.
func (srv *postService) GetPostDetail(ctx context.Context, hospitalID, postID uint) (*usecase.PostDetailOutput, error) {
	post, err := srv.postRepo.FindByID(ctx, hospitalID, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			srv.log(ctx).Warn("Post lookup missed",
				slog.Uint64("hospitalID", uint64(hospitalID)),
				slog.Uint64("postID", uint64(postID)))

			return nil, errors.Wrap(domainerrors.ErrNotFound, "post not found")
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return &usecase.PostDetailOutput{
		ID:          post.ID,
		VideoURL:    post.VideoURL,
		TextURL:     post.TextURL,
		Check:       post.Check,
		StampNumber: post.StampNumber,
		CardNumber:  post.CardNumber,
		CreatedAt:   formatDate(post.CreatedAt),
	}, nil
}
