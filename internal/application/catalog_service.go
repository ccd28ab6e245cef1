package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/internal/domain/entity"
	repo "github.com/oksasatya/unibase/internal/domain/repository"
)

type CategoryService struct {
	Repo   repo.CategoryRepository
	Tx     repo.TxManager
	Logger *logrus.Logger
}

func NewCategoryService(r repo.CategoryRepository, tx repo.TxManager, logger *logrus.Logger) *CategoryService {
	return &CategoryService{Repo: r, Tx: tx, Logger: logger}
}

func (s *CategoryService) Create(ctx context.Context, actor *entity.User, name string) (*entity.Category, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	name, err := required(name, "name")
	if err != nil {
		return nil, err
	}
	c := &entity.Category{Name: name, CreatedByID: actor.ID}
	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := ensureFree(ctx, s.Repo.NameTaken, name, "", "category name already exists"); err != nil {
			return err
		}
		return s.Repo.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, actor *entity.User, id, name string) (*entity.Category, error) {
	name, err := required(name, "name")
	if err != nil {
		return nil, err
	}
	var out *entity.Category
	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		c, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := requireOwnerOrStaff(actor, c.CreatedByID); err != nil {
			return err
		}
		if err := ensureFree(ctx, s.Repo.NameTaken, name, c.ID, "category name already exists"); err != nil {
			return err
		}
		c.Name = name
		if err := s.Repo.Update(ctx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	return out, err
}

func (s *CategoryService) Get(ctx context.Context, id string) (*entity.Category, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context, page repo.Page) ([]entity.Category, error) {
	return s.Repo.List(ctx, repo.CategoryFilter{Page: page})
}

func (s *CategoryService) ListMine(ctx context.Context, actor *entity.User, page repo.Page) ([]entity.Category, error) {
	if actor == nil {
		return nil, errNoActor
	}
	return s.Repo.List(ctx, repo.CategoryFilter{CreatedByID: actor.ID, Page: page})
}

func (s *CategoryService) Delete(ctx context.Context, actor *entity.User, id string) error {
	return s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		c, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := requireOwnerOrStaff(actor, c.CreatedByID); err != nil {
			return err
		}
		return s.Repo.Delete(ctx, id)
	})
}

type RegionService struct {
	Repo   repo.RegionRepository
	Tx     repo.TxManager
	Logger *logrus.Logger
}

func NewRegionService(r repo.RegionRepository, tx repo.TxManager, logger *logrus.Logger) *RegionService {
	return &RegionService{Repo: r, Tx: tx, Logger: logger}
}

func (s *RegionService) Create(ctx context.Context, actor *entity.User, name string) (*entity.Region, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	name, err := required(name, "name")
	if err != nil {
		return nil, err
	}
	rg := &entity.Region{Name: name, CreatedByID: actor.ID}
	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := ensureFree(ctx, s.Repo.NameTaken, name, "", "region name already exists"); err != nil {
			return err
		}
		return s.Repo.Create(ctx, rg)
	})
	if err != nil {
		return nil, err
	}
	return rg, nil
}

func (s *RegionService) Update(ctx context.Context, actor *entity.User, id, name string) (*entity.Region, error) {
	name, err := required(name, "name")
	if err != nil {
		return nil, err
	}
	var out *entity.Region
	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		rg, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := requireOwnerOrStaff(actor, rg.CreatedByID); err != nil {
			return err
		}
		if err := ensureFree(ctx, s.Repo.NameTaken, name, rg.ID, "region name already exists"); err != nil {
			return err
		}
		rg.Name = name
		if err := s.Repo.Update(ctx, rg); err != nil {
			return err
		}
		out = rg
		return nil
	})
	return out, err
}

func (s *RegionService) Get(ctx context.Context, id string) (*entity.Region, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *RegionService) List(ctx context.Context, page repo.Page) ([]entity.Region, error) {
	return s.Repo.List(ctx, repo.RegionFilter{Page: page})
}

func (s *RegionService) ListMine(ctx context.Context, actor *entity.User, page repo.Page) ([]entity.Region, error) {
	if actor == nil {
		return nil, errNoActor
	}
	return s.Repo.List(ctx, repo.RegionFilter{CreatedByID: actor.ID, Page: page})
}

func (s *RegionService) Delete(ctx context.Context, actor *entity.User, id string) error {
	return s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		rg, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := requireOwnerOrStaff(actor, rg.CreatedByID); err != nil {
			return err
		}
		return s.Repo.Delete(ctx, id)
	})
}

type LocationService struct {
	Repo    repo.LocationRepository
	Regions repo.RegionRepository
	Tx      repo.TxManager
	Logger  *logrus.Logger
}

func NewLocationService(r repo.LocationRepository, regions repo.RegionRepository, tx repo.TxManager, logger *logrus.Logger) *LocationService {
	return &LocationService{Repo: r, Regions: regions, Tx: tx, Logger: logger}
}

type LocationInput struct {
	Name     string
	RegionID string
}

func (s *LocationService) Create(ctx context.Context, actor *entity.User, in LocationInput) (*entity.Location, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	name, err := required(in.Name, "name")
	if err != nil {
		return nil, err
	}
	l := &entity.Location{Name: name, RegionID: in.RegionID, CreatedByID: actor.ID}
	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.Regions.GetByID(ctx, l.RegionID); err != nil {
			return err
		}
		if err := ensureFree(ctx, s.Repo.NameTaken, name, "", "location name already exists"); err != nil {
			return err
		}
		return s.Repo.Create(ctx, l)
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (s *LocationService) Update(ctx context.Context, actor *entity.User, id string, in LocationInput) (*entity.Location, error) {
	name, err := required(in.Name, "name")
	if err != nil {
		return nil, err
	}
	var out *entity.Location
	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		l, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := requireOwnerOrStaff(actor, l.CreatedByID); err != nil {
			return err
		}
		if _, err := s.Regions.GetByID(ctx, in.RegionID); err != nil {
			return err
		}
		if err := ensureFree(ctx, s.Repo.NameTaken, name, l.ID, "location name already exists"); err != nil {
			return err
		}
		l.Name, l.RegionID = name, in.RegionID
		if err := s.Repo.Update(ctx, l); err != nil {
			return err
		}
		out = l
		return nil
	})
	return out, err
}

func (s *LocationService) Get(ctx context.Context, id string) (*entity.Location, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *LocationService) List(ctx context.Context, regionID string, page repo.Page) ([]entity.Location, error) {
	return s.Repo.List(ctx, repo.LocationFilter{RegionID: regionID, Page: page})
}

func (s *LocationService) ListMine(ctx context.Context, actor *entity.User, page repo.Page) ([]entity.Location, error) {
	if actor == nil {
		return nil, errNoActor
	}
	return s.Repo.List(ctx, repo.LocationFilter{CreatedByID: actor.ID, Page: page})
}

func (s *LocationService) Delete(ctx context.Context, actor *entity.User, id string) error {
	return s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		l, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := requireOwnerOrStaff(actor, l.CreatedByID); err != nil {
			return err
		}
		return s.Repo.Delete(ctx, id)
	})
}
