package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/go-news-panel/internal/models"
	"github.com/pribylovaa/go-news-panel/internal/storage"
	"github.com/pribylovaa/go-news-panel/pkg/log"
	"github.com/pribylovaa/go-news-panel/pkg/redact"
	"golang.org/x/crypto/bcrypt"
)

// LoginResult: итог успешного входа.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      models.User
	Panel     models.Panel
}

// Signup регистрирует пользователя и создаёт ему пустую панель.
//
// Поведение:
//   - пустые username/password: ErrInvalidArgument;
//   - занятый username: ErrConflict;
//   - при сбое создания пользователя панель удаляется.
func (s *Service) Signup(ctx context.Context, username, password string) (*models.User, error) {
	const op = "service/auth/Signup"

	username = strings.TrimSpace(username)

	lg := log.From(ctx).With("op", op, "username", redact.Username(username))

	if username == "" || password == "" {
		lg.Warn("invalid argument: username and password are required")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	_, err := s.storage.UserByUsername(ctx, username)
	if err == nil {
		lg.Warn("username taken")

		return nil, fmt.Errorf("%s: %w", op, ErrConflict)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, mapStorageErr(lg, op, "UserByUsername", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost())
	if err != nil {
		lg.Error("password hash failed", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	panel, err := s.storage.CreatePanel(ctx)
	if err != nil {
		return nil, mapStorageErr(lg, op, "CreatePanel", err)
	}

	user, err := s.storage.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: string(hash),
		PanelID:      panel.ID,
	})
	if err != nil {
		if delErr := s.storage.DeletePanel(ctx, panel.ID); delErr != nil {
			lg.Error("compensation: delete panel failed", "panel_id", panel.ID, "err", delErr)
		}

		return nil, mapStorageErr(lg, op, "CreateUser", err)
	}

	lg.Info("user registered", "user_id", user.ID, "panel_id", panel.ID)

	return user, nil
}

// Login проверяет пару username/password и выпускает JWT.
// Неизвестный пользователь и неверный пароль неразличимы: ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	const op = "service/auth/Login"

	username = strings.TrimSpace(username)

	lg := log.From(ctx).With("op", op, "username", redact.Username(username))

	if username == "" || password == "" {
		lg.Warn("invalid argument: username and password are required")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.storage.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("unknown user")

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, mapStorageErr(lg, op, "UserByUsername", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		lg.Warn("wrong password", "user_id", user.ID)

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	panel, err := s.storage.PanelByID(ctx, user.PanelID)
	if err != nil {
		return nil, mapStorageErr(lg, op, "PanelByID", err)
	}

	token, expiresAt, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("user logged in", "user_id", user.ID)

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *user,
		Panel:     *panel,
	}, nil
}

// LoginDetails возвращает всех пользователей; ErrNotFound, если их нет.
func (s *Service) LoginDetails(ctx context.Context) ([]models.User, error) {
	const op = "service/auth/LoginDetails"

	lg := log.From(ctx).With("op", op)

	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, mapStorageErr(lg, op, "ListUsers", err)
	}

	if len(users) == 0 {
		lg.Warn("no users")

		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return users, nil
}

func (s *Service) bcryptCost() int {
	if s.cfg == nil || s.cfg.Auth.BcryptCost == 0 {
		return bcrypt.DefaultCost
	}

	return s.cfg.Auth.BcryptCost
}
