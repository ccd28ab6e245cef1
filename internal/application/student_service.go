package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/internal/domain/entity"
	repo "github.com/oksasatya/unibase/internal/domain/repository"
)

// StudentService writes are staff-only because students carry no creator.
type StudentService struct {
	Repo     repo.StudentRepository
	Programs repo.ProgramRepository
	Tx       repo.TxManager
	Logger   *logrus.Logger
}

func NewStudentService(r repo.StudentRepository, programs repo.ProgramRepository, tx repo.TxManager, logger *logrus.Logger) *StudentService {
	return &StudentService{Repo: r, Programs: programs, Tx: tx, Logger: logger}
}

type StudentInput struct {
	Name         string
	Lastname     string
	Photo        string
	Description  string
	WorkingPlace string
	Achievements string
	ProgramID    string
}

func (in StudentInput) apply(st *entity.Student) error {
	var err error
	if st.Name, err = required(in.Name, "name"); err != nil {
		return err
	}
	if st.Lastname, err = required(in.Lastname, "lastname"); err != nil {
		return err
	}
	st.Photo = strings.TrimSpace(in.Photo)
	st.Description = in.Description
	st.WorkingPlace = strings.TrimSpace(in.WorkingPlace)
	st.Achievements = in.Achievements
	st.ProgramID = in.ProgramID
	return nil
}

func (s *StudentService) Create(ctx context.Context, actor *entity.User, in StudentInput) (*entity.Student, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	st := &entity.Student{}
	if err := in.apply(st); err != nil {
		return nil, err
	}
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.Programs.GetByID(ctx, st.ProgramID); err != nil {
			return err
		}
		return s.Repo.Create(ctx, st)
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (s *StudentService) Update(ctx context.Context, actor *entity.User, id string, in StudentInput) (*entity.Student, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	var out *entity.Student
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		st, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := in.apply(st); err != nil {
			return err
		}
		if _, err := s.Programs.GetByID(ctx, st.ProgramID); err != nil {
			return err
		}
		if err := s.Repo.Update(ctx, st); err != nil {
			return err
		}
		out = st
		return nil
	})
	return out, err
}

func (s *StudentService) Get(ctx context.Context, id string) (*entity.Student, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *StudentService) List(ctx context.Context, programID string, page repo.Page) ([]entity.Student, error) {
	return s.Repo.List(ctx, repo.StudentFilter{ProgramID: programID, Page: page})
}

func (s *StudentService) Delete(ctx context.Context, actor *entity.User, id string) error {
	if err := requireStaff(actor); err != nil {
		return err
	}
	return s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.Repo.Delete(ctx, id)
	})
}
