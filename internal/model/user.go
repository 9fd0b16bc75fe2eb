// Package model はドメインモデルを定義する。
package model

import "time"

// User はサービス利用ユーザーを表す。
// 一度作成したら変更・削除されないイミュータブルなレコード。
type User struct {
	ID        string
	Username  string
	CreatedAt time.Time
}
