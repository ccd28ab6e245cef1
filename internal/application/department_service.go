package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/internal/domain/entity"
	repo "github.com/oksasatya/unibase/internal/domain/repository"
)

type DepartmentService struct {
	Repo         repo.DepartmentRepository
	Universities repo.UniversityRepository
	Tx           repo.TxManager
	Logger       *logrus.Logger
}

func NewDepartmentService(r repo.DepartmentRepository, universities repo.UniversityRepository, tx repo.TxManager, logger *logrus.Logger) *DepartmentService {
	return &DepartmentService{Repo: r, Universities: universities, Tx: tx, Logger: logger}
}

type DepartmentInput struct {
	Name         string
	Photo        string
	Description  string
	UniversityID string
}

func (in DepartmentInput) apply(d *entity.Department) error {
	var err error
	if d.Name, err = required(in.Name, "name"); err != nil {
		return err
	}
	d.Photo = strings.TrimSpace(in.Photo)
	d.Description = in.Description
	d.UniversityID = in.UniversityID
	return nil
}

func (s *DepartmentService) validate(ctx context.Context, d *entity.Department) error {
	if _, err := s.Universities.GetByID(ctx, d.UniversityID); err != nil {
		return err
	}
	return ensureFree(ctx, s.Repo.NameTaken, d.Name, d.ID, "department name already exists")
}

func (s *DepartmentService) Create(ctx context.Context, actor *entity.User, in DepartmentInput) (*entity.Department, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	d := &entity.Department{CreatedByID: actor.ID}
	if err := in.apply(d); err != nil {
		return nil, err
	}
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.validate(ctx, d); err != nil {
			return err
		}
		return s.Repo.Create(ctx, d)
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DepartmentService) Update(ctx context.Context, actor *entity.User, id string, in DepartmentInput) (*entity.Department, error) {
	var out *entity.Department
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		d, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := requireOwnerOrStaff(actor, d.CreatedByID); err != nil {
			return err
		}
		if err := in.apply(d); err != nil {
			return err
		}
		if err := s.validate(ctx, d); err != nil {
			return err
		}
		if err := s.Repo.Update(ctx, d); err != nil {
			return err
		}
		out = d
		return nil
	})
	return out, err
}

func (s *DepartmentService) Get(ctx context.Context, id string) (*entity.Department, error) {
	return s.Repo.GetByID(ctx, id)
}

// List filters by university and/or a name substring.
func (s *DepartmentService) List(ctx context.Context, f repo.DepartmentFilter) ([]entity.Department, error) {
	return s.Repo.List(ctx, f)
}

func (s *DepartmentService) ListMine(ctx context.Context, actor *entity.User, page repo.Page) ([]entity.Department, error) {
	if actor == nil {
		return nil, errNoActor
	}
	return s.Repo.List(ctx, repo.DepartmentFilter{CreatedByID: actor.ID, Page: page})
}

func (s *DepartmentService) Delete(ctx context.Context, actor *entity.User, id string) error {
	return s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		d, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := requireOwnerOrStaff(actor, d.CreatedByID); err != nil {
			return err
		}
		return s.Repo.Delete(ctx, id)
	})
}
