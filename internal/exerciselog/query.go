package exerciselog

import (
	"strconv"

	"github.com/hitoshi/fitlog/internal/model"
)

// Query は運動ログ取得のフィルタ仕様と返却上限を表す。
// Limitが0の場合は上限なし。
type Query struct {
	Filter model.ExerciseFilter
	Limit  int
}

// ParseLimit はlimit文字列を解釈する。
// 正の整数のみ有効。解釈できない値や0以下の値は、表示上の利便性の指定に
// すぎないため拒否せず無視する（0 = 上限なし、を返す）。
func ParseLimit(value string) int {
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// BuildQuery はユーザーIDと検証済みの日付区間、limit文字列からQueryを組み立てる。
// フィルタは常にuser_idの等価制約を持ち、日付区間の境界があれば範囲制約を加える。
func BuildQuery(userID string, dateRange DateRange, limitStr string) Query {
	return Query{
		Filter: model.ExerciseFilter{
			UserID: userID,
			From:   dateRange.From,
			To:     dateRange.To,
		},
		Limit: ParseLimit(limitStr),
	}
}
