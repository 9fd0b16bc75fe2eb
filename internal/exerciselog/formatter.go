package exerciselog

import (
	"time"

	"github.com/hitoshi/fitlog/internal/model"
)

// LogDateFormat はログエントリの日付表示形式。
// 3文字の曜日・3文字の月・2桁の日・4桁の年からなる固定形式で、
// ISOタイムスタンプではなく人間可読の文字列として返す。
const LogDateFormat = "Mon Jan 02 2006"

// FormatDate は日時をUTCの固定形式文字列に整形する。
func FormatDate(t time.Time) string {
	return t.UTC().Format(LogDateFormat)
}

// Entry はレスポンス中の1件の運動記録を表す。
type Entry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// Envelope はログ取得レスポンスの最上位オブジェクトを表す。
// Countはlimit適用前の真の総数であり、len(Log)とは独立している。
// From/Toはリクエストが有効な境界を指定した場合のみ、整形済み文字列で反映される。
type Envelope struct {
	ID       string  `json:"_id"`
	Username string  `json:"username"`
	From     string  `json:"from,omitempty"`
	To       string  `json:"to,omitempty"`
	Count    int     `json:"count"`
	Log      []Entry `json:"log"`
}

// BuildEnvelope はユーザーと運動記録のリストからレスポンスエンベロープを組み立てる。
// exercisesはストアが返した順序（date昇順）を保持する。
// totalはlimit適用前の一致総数。整形は保存済みの正しいレコードに対して失敗しない。
func BuildEnvelope(user *model.User, exercises []*model.Exercise, total int, dateRange DateRange) *Envelope {
	entries := make([]Entry, 0, len(exercises))
	for _, e := range exercises {
		entries = append(entries, Entry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        FormatDate(e.Date),
		})
	}

	env := &Envelope{
		ID:       user.ID,
		Username: user.Username,
		Count:    total,
		Log:      entries,
	}

	if dateRange.From != nil {
		env.From = FormatDate(*dateRange.From)
	}
	if dateRange.To != nil {
		env.To = FormatDate(*dateRange.To)
	}

	return env
}
