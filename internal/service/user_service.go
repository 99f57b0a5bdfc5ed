package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/internal/repository"
	"github.com/limbo/myfit/pkg/entity"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	return &UserService{
		repo: usersRepo,
	}
}

// Register creates the account and its default settings.
func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	user := &entity.User{
		Name:         req.Name,
		PasswordHash: passwordHash,
	}
	if err = us.repo.Create(ctx, user); err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) Login(ctx context.Context, name, password string) (*entity.User, error) {
	user, err := us.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if !passwordMatches(user, password) {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetByName(ctx context.Context, name string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) ChangePassword(ctx context.Context, id uuid.UUID, req *ChangePasswordRequest) error {
	if err := validateStruct(*req); err != nil {
		return err
	}
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !passwordMatches(user, req.OldPassword) {
		return fmt.Errorf("password change failed: %w", errorvalues.ErrWrongCredentials)
	}
	hash, err := Hash(req.NewPassword)
	if err != nil {
		return errors.New("hashing password error: " + err.Error())
	}
	if err = us.repo.UpdatePassword(ctx, id, hash); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository updating error: " + err.Error())
	}
	return nil
}

// DeleteAccount drops the user and all of their data after re-checking the password.
func (us *UserService) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !passwordMatches(user, password) {
		return fmt.Errorf("deletion failed: %w", errorvalues.ErrWrongCredentials)
	}
	err = us.repo.Delete(ctx, user.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}

func passwordMatches(user *entity.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
