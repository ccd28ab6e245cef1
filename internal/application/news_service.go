package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/internal/domain/apperror"
	"github.com/oksasatya/unibase/internal/domain/entity"
	repo "github.com/oksasatya/unibase/internal/domain/repository"
)

type NewsService struct {
	Repo   repo.NewsRepository
	Tx     repo.TxManager
	Logger *logrus.Logger
}

func NewNewsService(r repo.NewsRepository, tx repo.TxManager, logger *logrus.Logger) *NewsService {
	return &NewsService{Repo: r, Tx: tx, Logger: logger}
}

type NewsInput struct {
	Title string
	Photo string
	Body  string
}

func (s *NewsService) Create(ctx context.Context, actor *entity.User, in NewsInput) (*entity.News, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	title, err := required(in.Title, "title")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Body) == "" {
		return nil, apperror.Invalid("body is required")
	}
	n := &entity.News{Title: title, Photo: strings.TrimSpace(in.Photo), Body: in.Body, CreatedByID: actor.ID}
	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.Repo.Create(ctx, n)
	})
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"news_id": n.ID, "user_id": actor.ID}).Info("news published")
	return n, nil
}

// Update is partial: blank fields keep their current value.
func (s *NewsService) Update(ctx context.Context, actor *entity.User, id string, in NewsInput) (*entity.News, error) {
	var out *entity.News
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		n, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := requireOwnerOrStaff(actor, n.CreatedByID); err != nil {
			return err
		}
		if v := strings.TrimSpace(in.Title); v != "" {
			n.Title = v
		}
		if v := strings.TrimSpace(in.Photo); v != "" {
			n.Photo = v
		}
		if strings.TrimSpace(in.Body) != "" {
			n.Body = in.Body
		}
		if err := s.Repo.Update(ctx, n); err != nil {
			return err
		}
		out = n
		return nil
	})
	return out, err
}

func (s *NewsService) Get(ctx context.Context, id string) (*entity.News, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *NewsService) List(ctx context.Context, page repo.Page) ([]entity.News, error) {
	return s.Repo.List(ctx, repo.NewsFilter{Page: page})
}

func (s *NewsService) ListMine(ctx context.Context, actor *entity.User, page repo.Page) ([]entity.News, error) {
	if actor == nil {
		return nil, errNoActor
	}
	return s.Repo.List(ctx, repo.NewsFilter{CreatedByID: actor.ID, Page: page})
}

func (s *NewsService) Delete(ctx context.Context, actor *entity.User, id string) error {
	return s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		n, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := requireOwnerOrStaff(actor, n.CreatedByID); err != nil {
			return err
		}
		return s.Repo.Delete(ctx, id)
	})
}
