package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/internal/domain/apperror"
	"github.com/oksasatya/unibase/internal/domain/entity"
	repo "github.com/oksasatya/unibase/internal/domain/repository"
)

var errAlreadyFavorite = apperror.Conflict("university already in favorites")

type FavoriteService struct {
	Repo         repo.FavoriteRepository
	Universities repo.UniversityRepository
	Tx           repo.TxManager
	Logger       *logrus.Logger
}

func NewFavoriteService(r repo.FavoriteRepository, universities repo.UniversityRepository, tx repo.TxManager, logger *logrus.Logger) *FavoriteService {
	return &FavoriteService{Repo: r, Universities: universities, Tx: tx, Logger: logger}
}


func (s *FavoriteService) Add(ctx context.Context, actor *entity.User, universityID string) (*entity.Favorite, error) {
	if actor == nil {
		return nil, errNoActor
	}
	f := &entity.Favorite{UserID: actor.ID, UniversityID: universityID}
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.Universities.GetByID(ctx, universityID); err != nil {
			return err
		}
		exists, err := s.Repo.Exists(ctx, actor.ID, universityID)
		if err != nil {
			return err
		}
		if exists {
			return errAlreadyFavorite
		}
		return s.Repo.Add(ctx, f)
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FavoriteService) Remove(ctx context.Context, actor *entity.User, universityID string) error {
	if actor == nil {
		return errNoActor
	}
	return s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.Repo.Remove(ctx, actor.ID, universityID)
	})
}

func (s *FavoriteService) Exists(ctx context.Context, actor *entity.User, universityID string) (bool, error) {
	if actor == nil {
		return false, errNoActor
	}
	return s.Repo.Exists(ctx, actor.ID, universityID)
}

// List skips bookmarks whose university vanished between the two reads.
func (s *FavoriteService) List(ctx context.Context, actor *entity.User, page repo.Page) ([]entity.FavoriteEntry, error) {
	if actor == nil {
		return nil, errNoActor
	}
	return s.Repo.ListByUser(ctx, actor.ID, page)
}
