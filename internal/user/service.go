// Package user はユーザー管理のドメインロジックを提供する。
package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hitoshi/fitlog/internal/model"
	"github.com/hitoshi/fitlog/internal/repository"
	"github.com/hitoshi/fitlog/internal/security"
)

// CreationMetrics はユーザー作成のメトリクス記録インターフェース。
type CreationMetrics interface {
	RecordUserCreated()
}

// Service はユーザー管理のサービス層。
// ユーザーの作成と一覧取得のビジネスロジックを提供する。
type Service struct {
	repo      repository.UserRepository
	sanitizer security.InputSanitizerService
	metrics   CreationMetrics
}

// NewService はServiceの新しいインスタンスを生成する。
// metricsはnil許容（テストやメトリクス無効時）。
func NewService(
	repo repository.UserRepository,
	sanitizer security.InputSanitizerService,
	metrics CreationMetrics,
) *Service {
	return &Service{
		repo:      repo,
		sanitizer: sanitizer,
		metrics:   metrics,
	}
}

// CreateUser は新規ユーザーを作成する。
// usernameはサニタイズ後に空であってはならない。IDはUUID v4で採番する。
func (s *Service) CreateUser(ctx context.Context, username string) (*model.User, error) {
	sanitized := s.sanitizer.Sanitize(username)
	if sanitized == "" {
		return nil, model.NewUsernameRequiredError()
	}

	newUser := &model.User{
		ID:        uuid.NewString(),
		Username:  sanitized,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, fmt.Errorf("ユーザーの作成に失敗しました: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordUserCreated()
	}

	slog.Info("user created",
		slog.String("user_id", newUser.ID),
	)

	return newUser, nil
}

// ListUsers は全ユーザーを作成順で返す。
func (s *Service) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("ユーザー一覧の取得に失敗しました: %w", err)
	}
	return users, nil
}
