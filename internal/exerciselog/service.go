package exerciselog

import (
	"context"
	"fmt"
	"time"

	"github.com/hitoshi/fitlog/internal/model"
)

// UserFinder はユーザー存在確認のための最小インターフェース。
type UserFinder interface {
	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// ExerciseStore はログ取得に必要な運動記録ストアの最小インターフェース。
type ExerciseStore interface {
	// ListByFilter はフィルタに一致する運動記録をdate昇順で返す。
	ListByFilter(ctx context.Context, filter model.ExerciseFilter, limit int) ([]*model.Exercise, error)
	// CountByFilter はlimit適用前の一致総数を返す。
	CountByFilter(ctx context.Context, filter model.ExerciseFilter) (int, error)
}

// QueryMetrics はログ取得クエリのメトリクス記録インターフェース。
type QueryMetrics interface {
	// RecordLogQuery はログ取得1回の所要時間を記録する。
	RecordLogQuery(duration time.Duration)
}

// Service は運動ログ取得のサービス層。
// 日付範囲の検証、クエリ組み立て、ストア呼び出し、レスポンス整形を編成する。
type Service struct {
	users     UserFinder
	exercises ExerciseStore
	metrics   QueryMetrics
}

// NewService はServiceの新しいインスタンスを生成する。
// metricsはnil許容（テストやメトリクス無効時）。
func NewService(users UserFinder, exercises ExerciseStore, metrics QueryMetrics) *Service {
	return &Service{
		users:     users,
		exercises: exercises,
		metrics:   metrics,
	}
}

// GetLogs は指定ユーザーの運動ログを取得する。
//
// 処理順序: ユーザー存在確認 → 日付範囲の検証 → クエリ組み立て →
// ストアからの取得と総数カウント → エンベロープ整形。
// 存在しないユーザーは USER_NOT_FOUND、不正なfrom/toはバリデーションエラーを返す。
// Countはlimit適用前の真の総数を報告する。
func (s *Service) GetLogs(ctx context.Context, userID, fromStr, toStr, limitStr string) (*Envelope, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ユーザーの取得に失敗しました: %w", err)
	}
	if user == nil {
		return nil, model.NewUserNotFoundError(userID)
	}

	dateRange, err := ParseDateRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}

	query := BuildQuery(userID, dateRange, limitStr)

	start := time.Now()

	exercises, err := s.exercises.ListByFilter(ctx, query.Filter, query.Limit)
	if err != nil {
		return nil, fmt.Errorf("運動記録の取得に失敗しました: %w", err)
	}

	total, err := s.exercises.CountByFilter(ctx, query.Filter)
	if err != nil {
		return nil, fmt.Errorf("運動記録のカウントに失敗しました: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordLogQuery(time.Since(start))
	}

	return BuildEnvelope(user, exercises, total, dateRange), nil
}
