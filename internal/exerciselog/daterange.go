// Package exerciselog は運動ログ取得のコアロジックを提供する。
//
// ログ取得リクエストは、日付範囲の検証（daterange.go）、フィルタと上限の
// 組み立て（query.go）、レスポンスエンベロープの整形（formatter.go）の
// 3段階で処理される。各段階はストアから返されたレコードと入力のみに依存する
// 純粋なロジックであり、バリデーション失敗は*model.APIErrorとして区別可能に返す。
package exerciselog

import (
	"time"

	"github.com/hitoshi/fitlog/internal/model"
)

// DateOnlyFormat は日付のみの入力形式。
const DateOnlyFormat = "2006-01-02"

// DateRange は両端とも含む日付区間を表す。
// FromまたはToがnilの場合、その側の制約は存在しない。
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// HasBounds はいずれかの境界が指定されているかを返す。
func (r DateRange) HasBounds() bool {
	return r.From != nil || r.To != nil
}

// ParseDate は日付文字列をUTCのtime.Timeとして解釈する。
// "2006-01-02" 形式を優先し、次にRFC3339形式を試す。
// どちらでも解釈できない場合はエラーを返す。
func ParseDate(value string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateOnlyFormat, value, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// endOfDay は指定日時が属する暦日の終端（23:59:59.999999999）を返す。
func endOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, 999999999, time.UTC)
}

// ParseDateRange は任意のfrom/to文字列から日付区間を組み立てる。
//
// fromが指定されていて解釈できない場合は INVALID_FROM_DATE、
// toが指定されていて解釈できない場合は INVALID_TO_DATE のバリデーション
// エラーを返す。不正な入力を黙って無視することはない。
//
// toはその暦日の終端に正規化される。これにより to=2024-01-10 の指定で
// 2024-01-10T08:00 の記録が含まれる（両端を含む日単位のポリシー）。
// 両方とも未指定の場合は制約なしの区間を返す。
func ParseDateRange(fromStr, toStr string) (DateRange, error) {
	var r DateRange

	if fromStr != "" {
		from, err := ParseDate(fromStr)
		if err != nil {
			return DateRange{}, model.NewInvalidFromDateError(fromStr)
		}
		r.From = &from
	}

	if toStr != "" {
		to, err := ParseDate(toStr)
		if err != nil {
			return DateRange{}, model.NewInvalidToDateError(toStr)
		}
		eod := endOfDay(to)
		r.To = &eod
	}

	return r, nil
}
