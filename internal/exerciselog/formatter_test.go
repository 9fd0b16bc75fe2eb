package exerciselog

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/hitoshi/fitlog/internal/model"
)

// TestFormatDate は固定形式"Mon Jan 02 2006"での整形を検証する。
// タイムゾーン付きの日時もUTCに変換してから整形する。
func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{
			name:  "UTC日付",
			input: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
			want:  "Mon May 01 2023",
		},
		{
			name:  "タイムゾーン付きはUTC換算",
			input: time.Date(2023, 5, 1, 7, 0, 0, 0, time.FixedZone("JST", 9*3600)),
			want:  "Sun Apr 30 2023",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDate(tt.input)
			if got != tt.want {
				t.Errorf("FormatDate = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestBuildEnvelope_Basic はエンベロープの基本構造を検証する。
func TestBuildEnvelope_Basic(t *testing.T) {
	user := &model.User{ID: "user-1", Username: "alice"}
	exercises := []*model.Exercise{
		{Description: "run", Duration: 30, Date: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)},
		{Description: "swim", Duration: 45, Date: time.Date(2023, 5, 2, 0, 0, 0, 0, time.UTC)},
	}

	env := BuildEnvelope(user, exercises, 2, DateRange{})

	if env.ID != "user-1" {
		t.Errorf("ID = %q, want %q", env.ID, "user-1")
	}
	if env.Username != "alice" {
		t.Errorf("Username = %q, want %q", env.Username, "alice")
	}
	if env.Count != 2 {
		t.Errorf("Count = %d, want 2", env.Count)
	}
	if len(env.Log) != 2 {
		t.Fatalf("len(Log) = %d, want 2", len(env.Log))
	}
	if env.Log[0].Description != "run" || env.Log[0].Duration != 30 {
		t.Errorf("Log[0] = %+v", env.Log[0])
	}
	if env.Log[0].Date != "Mon May 01 2023" {
		t.Errorf("Log[0].Date = %q, want %q", env.Log[0].Date, "Mon May 01 2023")
	}
	if env.From != "" || env.To != "" {
		t.Errorf("expected no from/to echo, got from=%q to=%q", env.From, env.To)
	}
}

// TestBuildEnvelope_CountIndependentOfLogLength はCountがlimit適用前の
// 総数を保持し、len(Log)と独立であることを検証する。
func TestBuildEnvelope_CountIndependentOfLogLength(t *testing.T) {
	user := &model.User{ID: "user-1", Username: "alice"}
	exercises := []*model.Exercise{
		{Description: "run", Duration: 30, Date: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)},
		{Description: "swim", Duration: 45, Date: time.Date(2023, 5, 2, 0, 0, 0, 0, time.UTC)},
	}

	// 5件一致のうちlimitで2件だけ返却されたケース
	env := BuildEnvelope(user, exercises, 5, DateRange{})

	if env.Count != 5 {
		t.Errorf("Count = %d, want 5", env.Count)
	}
	if len(env.Log) != 2 {
		t.Errorf("len(Log) = %d, want 2", len(env.Log))
	}
}

// TestBuildEnvelope_EchoesRange は有効なfrom/toが整形済み文字列で反映されることを検証する。
func TestBuildEnvelope_EchoesRange(t *testing.T) {
	user := &model.User{ID: "user-1", Username: "alice"}
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 10, 23, 59, 59, 999999999, time.UTC)

	env := BuildEnvelope(user, nil, 0, DateRange{From: &from, To: &to})

	if env.From != "Mon Jan 01 2024" {
		t.Errorf("From = %q, want %q", env.From, "Mon Jan 01 2024")
	}
	if env.To != "Wed Jan 10 2024" {
		t.Errorf("To = %q, want %q", env.To, "Wed Jan 10 2024")
	}
}

// TestBuildEnvelope_EmptyLogSerializesAsArray は記録ゼロ件のログが
// JSONでnullではなく[]になることを検証する。
func TestBuildEnvelope_EmptyLogSerializesAsArray(t *testing.T) {
	user := &model.User{ID: "user-1", Username: "alice"}

	env := BuildEnvelope(user, nil, 0, DateRange{})

	data, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("json.Marshal returned error: %v", err)
	}
	if !strings.Contains(string(data), `"log":[]`) {
		t.Errorf("expected empty log array in JSON, got %s", data)
	}
	if !strings.Contains(string(data), `"_id":"user-1"`) {
		t.Errorf("expected _id field in JSON, got %s", data)
	}
}
