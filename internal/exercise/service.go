// Package exercise は運動記録作成のドメインロジックを提供する。
package exercise

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hitoshi/fitlog/internal/exerciselog"
	"github.com/hitoshi/fitlog/internal/model"
	"github.com/hitoshi/fitlog/internal/security"
)

// UserFinder はユーザー存在確認のための最小インターフェース。
type UserFinder interface {
	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// ExerciseCreator は運動記録作成のための最小インターフェース。
type ExerciseCreator interface {
	Create(ctx context.Context, exercise *model.Exercise) error
}

// CreationMetrics は運動記録作成のメトリクス記録インターフェース。
type CreationMetrics interface {
	RecordExerciseCreated()
}

// Service は運動記録作成のサービス層。
// 入力検証、ユーザー存在確認、日付のデフォルト補完を行う。
type Service struct {
	users     UserFinder
	exercises ExerciseCreator
	sanitizer security.InputSanitizerService
	metrics   CreationMetrics
}

// NewService はServiceの新しいインスタンスを生成する。
// metricsはnil許容（テストやメトリクス無効時）。
func NewService(
	users UserFinder,
	exercises ExerciseCreator,
	sanitizer security.InputSanitizerService,
	metrics CreationMetrics,
) *Service {
	return &Service{
		users:     users,
		exercises: exercises,
		sanitizer: sanitizer,
		metrics:   metrics,
	}
}

// CreateExercise は指定ユーザーに対する運動記録を作成する。
//
// 検証規則:
//   - description（サニタイズ後）とdurationは必須。
//   - durationは正の整数（分）。数値として解釈できない値はバリデーションエラー。
//   - dateは指定された場合のみ解釈する。解釈できない値はバリデーションエラーであり、
//     黙ってデフォルトに置き換えない。完全に未指定の場合のみ「現在時刻」を補完する。
//   - ユーザーが存在しない場合は記録を作成せずUSER_NOT_FOUNDを返す。
//
// 成功時は作成した記録と所属ユーザーを返す。
func (s *Service) CreateExercise(ctx context.Context, userID, description, durationStr, dateStr string) (*model.Exercise, *model.User, error) {
	sanitized := s.sanitizer.Sanitize(description)

	var missing []string
	if sanitized == "" {
		missing = append(missing, "description")
	}
	if durationStr == "" {
		missing = append(missing, "duration")
	}
	if len(missing) > 0 {
		return nil, nil, model.NewFieldsMissingError(strings.Join(missing, ", "))
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil || duration <= 0 {
		return nil, nil, model.NewInvalidDurationError(durationStr)
	}

	date := time.Now().UTC()
	if dateStr != "" {
		parsed, err := exerciselog.ParseDate(dateStr)
		if err != nil {
			return nil, nil, model.NewInvalidDateError(dateStr)
		}
		date = parsed
	}

	owner, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("ユーザーの取得に失敗しました: %w", err)
	}
	if owner == nil {
		return nil, nil, model.NewUserNotFoundError(userID)
	}

	newExercise := &model.Exercise{
		ID:          uuid.NewString(),
		UserID:      owner.ID,
		Description: sanitized,
		Duration:    duration,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.exercises.Create(ctx, newExercise); err != nil {
		return nil, nil, fmt.Errorf("運動記録の作成に失敗しました: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordExerciseCreated()
	}

	slog.Info("exercise created",
		slog.String("exercise_id", newExercise.ID),
		slog.String("user_id", owner.ID),
		slog.Int("duration", duration),
	)

	return newExercise, owner, nil
}
