// Package model はドメインモデルを定義する。
package model

import "time"

// Exercise はユーザーが記録した運動を表す。
// UserIDは値による外部参照であり、ストア側の参照整合性制約では強制しない。
// 作成時にサービス層がユーザーの存在を検証する。
type Exercise struct {
	ID          string
	UserID      string
	Description string
	Duration    int // 分単位
	Date        time.Time
	CreatedAt   time.Time
}
