// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/fitlog/internal/model"
)

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// Create はユーザーを作成する。
	Create(ctx context.Context, user *model.User) error

	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.User, error)

	// ListAll は全ユーザーをcreated_at昇順で返す。
	ListAll(ctx context.Context) ([]*model.User, error)
}

// ExerciseRepository は運動記録の永続化インターフェース。
type ExerciseRepository interface {
	// Create は運動記録を作成する。
	Create(ctx context.Context, exercise *model.Exercise) error

	// ListByFilter はフィルタに一致する運動記録をdate昇順で返す。
	// 同一dateのレコードは挿入順（created_at昇順）で安定に並ぶ。
	// limitが正の場合は返却件数を制限する。0以下の場合は制限しない。
	ListByFilter(ctx context.Context, filter model.ExerciseFilter, limit int) ([]*model.Exercise, error)

	// CountByFilter はフィルタに一致する運動記録の総数を返す。
	// limit適用前の真の総数であり、ListByFilterの返却件数とは独立している。
	CountByFilter(ctx context.Context, filter model.ExerciseFilter) (int, error)
}
