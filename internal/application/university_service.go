package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/internal/domain/entity"
	repo "github.com/oksasatya/unibase/internal/domain/repository"
)

type UniversityService struct {
	Repo       repo.UniversityRepository
	Categories repo.CategoryRepository
	Locations  repo.LocationRepository
	Tx         repo.TxManager
	Logger     *logrus.Logger
}

func NewUniversityService(r repo.UniversityRepository, categories repo.CategoryRepository, locations repo.LocationRepository, tx repo.TxManager, logger *logrus.Logger) *UniversityService {
	return &UniversityService{Repo: r, Categories: categories, Locations: locations, Tx: tx, Logger: logger}
}

type UniversityInput struct {
	Name             string
	Photo            string
	Video            string
	Description      string
	AmountOfStudents int
	PhoneNumber      string
	Email            string
	Webpage          string
	CategoryID       string
	LocationID       string
}

func (in UniversityInput) apply(u *entity.University) error {
	var err error
	if u.Name, err = required(in.Name, "name"); err != nil {
		return err
	}
	if u.PhoneNumber, err = required(in.PhoneNumber, "phone_number"); err != nil {
		return err
	}
	if u.Email, err = required(in.Email, "email"); err != nil {
		return err
	}
	if err := nonNegative(in.AmountOfStudents, "amount_of_students"); err != nil {
		return err
	}
	u.Email = strings.ToLower(u.Email)
	u.Photo = strings.TrimSpace(in.Photo)
	u.Video = strings.TrimSpace(in.Video)
	u.Description = in.Description
	u.AmountOfStudents = in.AmountOfStudents
	u.Webpage = strings.TrimSpace(in.Webpage)
	u.CategoryID = in.CategoryID
	u.LocationID = in.LocationID
	return nil
}

// validate checks references and uniqueness inside the caller's transaction.
func (s *UniversityService) validate(ctx context.Context, u *entity.University) error {
	if _, err := s.Categories.GetByID(ctx, u.CategoryID); err != nil {
		return err
	}
	if _, err := s.Locations.GetByID(ctx, u.LocationID); err != nil {
		return err
	}
	if err := ensureFree(ctx, s.Repo.NameTaken, u.Name, u.ID, "university name already exists"); err != nil {
		return err
	}
	if err := ensureFree(ctx, s.Repo.EmailTaken, u.Email, u.ID, "university email already exists"); err != nil {
		return err
	}
	return ensureFree(ctx, s.Repo.PhoneTaken, u.PhoneNumber, u.ID, "university phone number already exists")
}

func (s *UniversityService) Create(ctx context.Context, actor *entity.User, in UniversityInput) (*entity.University, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	u := &entity.University{CreatedByID: actor.ID}
	if err := in.apply(u); err != nil {
		return nil, err
	}
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.validate(ctx, u); err != nil {
			return err
		}
		return s.Repo.Create(ctx, u)
	})
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"university_id": u.ID, "user_id": actor.ID}).Info("university created")
	return u, nil
}

func (s *UniversityService) Update(ctx context.Context, actor *entity.User, id string, in UniversityInput) (*entity.University, error) {
	var out *entity.University
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := requireOwnerOrStaff(actor, u.CreatedByID); err != nil {
			return err
		}
		if err := in.apply(u); err != nil {
			return err
		}
		if err := s.validate(ctx, u); err != nil {
			return err
		}
		if err := s.Repo.Update(ctx, u); err != nil {
			return err
		}
		out = u
		return nil
	})
	return out, err
}

func (s *UniversityService) Get(ctx context.Context, id string) (*entity.University, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *UniversityService) List(ctx context.Context, f repo.UniversityFilter) ([]entity.University, error) {
	return s.Repo.List(ctx, f)
}

func (s *UniversityService) ListMine(ctx context.Context, actor *entity.User, page repo.Page) ([]entity.University, error) {
	if actor == nil {
		return nil, errNoActor
	}
	return s.Repo.List(ctx, repo.UniversityFilter{CreatedByID: actor.ID, Page: page})
}

func (s *UniversityService) Delete(ctx context.Context, actor *entity.User, id string) error {
	return s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := requireOwnerOrStaff(actor, u.CreatedByID); err != nil {
			return err
		}
		return s.Repo.Delete(ctx, id)
	})
}
