package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/internal/domain/entity"
	repo "github.com/oksasatya/unibase/internal/domain/repository"
)

// CommentService lets any signed-in user comment; only the author may edit or
// remove a comment.
type CommentService struct {
	Repo         repo.CommentRepository
	Universities repo.UniversityRepository
	Tx           repo.TxManager
	Logger       *logrus.Logger
}

func NewCommentService(r repo.CommentRepository, universities repo.UniversityRepository, tx repo.TxManager, logger *logrus.Logger) *CommentService {
	return &CommentService{Repo: r, Universities: universities, Tx: tx, Logger: logger}
}

func (s *CommentService) Create(ctx context.Context, actor *entity.User, universityID, body string) (*entity.Comment, error) {
	if actor == nil {
		return nil, errNoActor
	}
	body, err := required(body, "body")
	if err != nil {
		return nil, err
	}
	c := &entity.Comment{Body: body, UserID: actor.ID, UniversityID: universityID}
	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.Universities.GetByID(ctx, universityID); err != nil {
			return err
		}
		return s.Repo.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) Update(ctx context.Context, actor *entity.User, id, body string) (*entity.Comment, error) {
	body, err := required(body, "body")
	if err != nil {
		return nil, err
	}
	var out *entity.Comment
	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		c, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := requireOwner(actor, c.UserID); err != nil {
			return err
		}
		c.Body = body
		if err := s.Repo.Update(ctx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	return out, err
}

func (s *CommentService) ListByUniversity(ctx context.Context, universityID string, page repo.Page) ([]entity.Comment, error) {
	return s.Repo.List(ctx, repo.CommentFilter{UniversityID: universityID, Page: page})
}

func (s *CommentService) ListMine(ctx context.Context, actor *entity.User, page repo.Page) ([]entity.Comment, error) {
	if actor == nil {
		return nil, errNoActor
	}
	return s.Repo.List(ctx, repo.CommentFilter{UserID: actor.ID, Page: page})
}

func (s *CommentService) Delete(ctx context.Context, actor *entity.User, id string) error {
	return s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		c, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := requireOwner(actor, c.UserID); err != nil {
			return err
		}
		return s.Repo.Delete(ctx, id)
	})
}
