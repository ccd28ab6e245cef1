package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/internal/domain/entity"
	repo "github.com/oksasatya/unibase/internal/domain/repository"
)

type ProgramService struct {
	Repo        repo.ProgramRepository
	Departments repo.DepartmentRepository
	Tx          repo.TxManager
	Logger      *logrus.Logger
}

func NewProgramService(r repo.ProgramRepository, departments repo.DepartmentRepository, tx repo.TxManager, logger *logrus.Logger) *ProgramService {
	return &ProgramService{Repo: r, Departments: departments, Tx: tx, Logger: logger}
}

type ProgramInput struct {
	Name             string
	Photo            string
	Description      string
	NumberOfStudents int
	DepartmentID     string
}

func (in ProgramInput) apply(p *entity.Program) error {
	var err error
	if p.Name, err = required(in.Name, "name"); err != nil {
		return err
	}
	if err := nonNegative(in.NumberOfStudents, "number_of_students"); err != nil {
		return err
	}
	p.Photo = strings.TrimSpace(in.Photo)
	p.Description = in.Description
	p.NumberOfStudents = in.NumberOfStudents
	p.DepartmentID = in.DepartmentID
	return nil
}

func (s *ProgramService) validate(ctx context.Context, p *entity.Program) error {
	if _, err := s.Departments.GetByID(ctx, p.DepartmentID); err != nil {
		return err
	}
	return ensureFree(ctx, s.Repo.NameTaken, p.Name, p.ID, "program name already exists")
}

func (s *ProgramService) Create(ctx context.Context, actor *entity.User, in ProgramInput) (*entity.Program, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	p := &entity.Program{CreatedByID: actor.ID}
	if err := in.apply(p); err != nil {
		return nil, err
	}
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.validate(ctx, p); err != nil {
			return err
		}
		return s.Repo.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProgramService) Update(ctx context.Context, actor *entity.User, id string, in ProgramInput) (*entity.Program, error) {
	var out *entity.Program
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := requireOwnerOrStaff(actor, p.CreatedByID); err != nil {
			return err
		}
		if err := in.apply(p); err != nil {
			return err
		}
		if err := s.validate(ctx, p); err != nil {
			return err
		}
		if err := s.Repo.Update(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	return out, err
}

func (s *ProgramService) Get(ctx context.Context, id string) (*entity.Program, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *ProgramService) List(ctx context.Context, f repo.ProgramFilter) ([]entity.Program, error) {
	return s.Repo.List(ctx, f)
}

func (s *ProgramService) ListMine(ctx context.Context, actor *entity.User, page repo.Page) ([]entity.Program, error) {
	if actor == nil {
		return nil, errNoActor
	}
	return s.Repo.List(ctx, repo.ProgramFilter{CreatedByID: actor.ID, Page: page})
}

func (s *ProgramService) Delete(ctx context.Context, actor *entity.User, id string) error {
	return s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := requireOwnerOrStaff(actor, p.CreatedByID); err != nil {
			return err
		}
		return s.Repo.Delete(ctx, id)
	})
}
