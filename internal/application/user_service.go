package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/internal/domain/apperror"
	"github.com/oksasatya/unibase/internal/domain/entity"
	repo "github.com/oksasatya/unibase/internal/domain/repository"
	"github.com/oksasatya/unibase/pkg/helpers"
)

var (
	ErrInvalidCredentials = apperror.Unauthenticated("invalid credentials")
	ErrInvalidRefresh     = apperror.Unauthenticated("invalid refresh token")
	ErrWrongPassword      = apperror.Invalid("current password is incorrect")

	errPasswordTooLong = apperror.Invalid("password must be at most 72 bytes")
)

func hashPassword(plain string) (string, error) {
	hash, err := helpers.HashPassword(plain)
	if errors.Is(err, helpers.ErrPasswordTooLong) {
		return "", errPasswordTooLong
	}
	return hash, err
}

type UserService struct {
	Repo   repo.UserRepository
	Tx     repo.TxManager
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewUserService(repo repo.UserRepository, tx repo.TxManager, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Tx: tx, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	Email       string
	FullName    string
	PhoneNumber string
	Password    string
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	email, err := required(in.Email, "email")
	if err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, apperror.Invalid("password is required")
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:       strings.ToLower(email),
		FullName:    strings.TrimSpace(in.FullName),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Password:    hash,
	}
	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := ensureFree(ctx, s.Repo.EmailTaken, u.Email, "", "email already registered"); err != nil {
			return err
		}
		return s.Repo.Create(ctx, u)
	})
	if err != nil {
		return nil, err
	}
	s.Logger.WithField("user_id", u.ID).Info("user registered")
	return u, nil
}

// Login returns the same error for an unknown email and a wrong password.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, helpers.TokenPair, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, helpers.TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		return nil, helpers.TokenPair{}, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, helpers.TokenPair{}, ErrInvalidCredentials
	}
	pair, err := s.JWT.Issue(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("issue tokens failed")
		return nil, helpers.TokenPair{}, err
	}
	return u, pair, nil
}

// Refresh trades a valid refresh token for a new pair. Tokens are stateless,
// so the old refresh token stays usable until it expires.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (helpers.TokenPair, error) {
	v := s.JWT.VerifyRefresh(refreshToken)
	if !v.Valid() {
		s.Logger.WithError(v.Err).WithField("status", v.Status.String()).Debug("refresh token rejected")
		return helpers.TokenPair{}, ErrInvalidRefresh
	}
	u, err := s.Repo.GetByID(ctx, v.Claims.UserID)
	if errors.Is(err, apperror.ErrNotFound) {
		return helpers.TokenPair{}, ErrInvalidRefresh
	}
	if err != nil {
		return helpers.TokenPair{}, err
	}
	return s.JWT.Issue(u.ID)
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return s.Repo.GetByID(ctx, userID)
}

// UpdateProfileInput leaves nil fields unchanged.
type UpdateProfileInput struct {
	FullName    *string
	PhoneNumber *string
	Email       *string
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	var out *entity.User
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.Repo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if in.FullName != nil {
			u.FullName = strings.TrimSpace(*in.FullName)
		}
		if in.PhoneNumber != nil {
			u.PhoneNumber = strings.TrimSpace(*in.PhoneNumber)
		}
		if in.Email != nil {
			email, err := required(*in.Email, "email")
			if err != nil {
				return err
			}
			u.Email = strings.ToLower(email)
			if err := ensureFree(ctx, s.Repo.EmailTaken, u.Email, u.ID, "email already registered"); err != nil {
				return err
			}
		}
		if err := s.Repo.Update(ctx, u); err != nil {
			return err
		}
		out = u
		return nil
	})
	return out, err
}

func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	if next == "" {
		return apperror.Invalid("new password is required")
	}
	if len(next) > helpers.MaxPasswordBytes {
		return errPasswordTooLong
	}
	return s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.Repo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if !helpers.CompareHashAndPassword(u.Password, current) {
			return ErrWrongPassword
		}
		hash, err := hashPassword(next)
		if err != nil {
			return err
		}
		u.Password = hash
		return s.Repo.Update(ctx, u)
	})
}

// Delete removes the account. It fails with a conflict while the user still
// owns content.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.Repo.Delete(ctx, userID)
	})
	if err == nil {
		s.Logger.WithField("user_id", userID).Info("user deleted")
	}
	return err
}
