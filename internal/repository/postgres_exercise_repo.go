package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/fitlog/internal/model"
)

// PostgresExerciseRepo はPostgreSQLを使用した運動記録リポジトリ。
type PostgresExerciseRepo struct {
	db *sql.DB
}

// NewPostgresExerciseRepo はPostgresExerciseRepoを生成する。
func NewPostgresExerciseRepo(db *sql.DB) *PostgresExerciseRepo {
	return &PostgresExerciseRepo{db: db}
}

// Create は運動記録を作成する。
func (r *PostgresExerciseRepo) Create(ctx context.Context, exercise *model.Exercise) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO exercises (id, user_id, description, duration, date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		exercise.ID, exercise.UserID, exercise.Description,
		exercise.Duration, exercise.Date, exercise.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert exercise: %w", err)
	}
	return nil
}

// buildFilterClause はExerciseFilterからWHERE句と引数リストを構築する。
// 戻り値のnextIndexは追加のプレースホルダ（LIMIT等）に使用する。
func buildFilterClause(filter model.ExerciseFilter) (where string, args []interface{}, nextIndex int) {
	where = " WHERE user_id = $1"
	args = []interface{}{filter.UserID}
	nextIndex = 2

	// 日付範囲は両端とも含む。片側だけの指定も有効。
	if filter.From != nil {
		where += fmt.Sprintf(" AND date >= $%d", nextIndex)
		args = append(args, *filter.From)
		nextIndex++
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND date <= $%d", nextIndex)
		args = append(args, *filter.To)
		nextIndex++
	}

	return where, args, nextIndex
}

// ListByFilter はフィルタに一致する運動記録をdate昇順で返す。
// 同一dateのタイブレークはcreated_at昇順（挿入順）で、同一クエリ内で安定する。
// limitが正の場合のみLIMIT句を付与する。
func (r *PostgresExerciseRepo) ListByFilter(ctx context.Context, filter model.ExerciseFilter, limit int) ([]*model.Exercise, error) {
	query := `SELECT id, user_id, description, duration, date, created_at FROM exercises`

	where, args, nextIndex := buildFilterClause(filter)
	query += where
	query += " ORDER BY date ASC, created_at ASC"

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", nextIndex)
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*model.Exercise
	for rows.Next() {
		exercise := &model.Exercise{}
		if err := rows.Scan(
			&exercise.ID, &exercise.UserID, &exercise.Description,
			&exercise.Duration, &exercise.Date, &exercise.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan exercise row: %w", err)
		}
		exercises = append(exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate exercise rows: %w", err)
	}

	return exercises, nil
}

// CountByFilter はフィルタに一致する運動記録の総数を返す。
// LIMIT適用前の真の総数であり、ページングするクライアントが必要とする値。
func (r *PostgresExerciseRepo) CountByFilter(ctx context.Context, filter model.ExerciseFilter) (int, error) {
	query := `SELECT COUNT(*) FROM exercises`

	where, args, _ := buildFilterClause(filter)
	query += where

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count exercises: %w", err)
	}

	return count, nil
}

// compile-time interface check
var _ ExerciseRepository = (*PostgresExerciseRepo)(nil)
