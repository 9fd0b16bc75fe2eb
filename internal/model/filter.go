// Package model はドメインモデルを定義する。
package model

import "time"

// ExerciseFilter は運動記録を選択する述語仕様を表す。
// UserIDの等価制約に、任意の日付範囲制約（両端とも含む）を組み合わせる。
// FromまたはToがnilの場合、その側の制約は適用されない。
type ExerciseFilter struct {
	UserID string
	From   *time.Time
	To     *time.Time
}
