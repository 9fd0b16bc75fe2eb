package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/fitlog/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	HealthChecker     HealthChecker
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	StatusRecorder    middleware.HTTPStatusRecorder
	Logger            *slog.Logger

	// メトリクス公開エンドポイント
	MetricsHandler http.Handler

	// ドメインサービス
	UserService     UserServiceInterface
	ExerciseService ExerciseServiceInterface
	LogService      LogServiceInterface
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → CORS → SecurityHeaders → Logging → Metrics → RateLimit(General)
//
// /health と /metrics はレート制限の外に配置する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Recoveryを最上位に適用（後続ミドルウェアのpanicも拾う）
	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewLoggingMiddleware(logger))
	if deps.StatusRecorder != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.StatusRecorder))
	}

	userHandler := NewUserHandler(deps.UserService)
	exerciseHandler := NewExerciseHandler(deps.ExerciseService)
	logHandler := NewLogHandler(deps.LogService)
	healthHandler := NewHealthHandler(deps.HealthChecker)

	// --- 運用系ルート（レート制限の外） ---

	r.Get("/health", healthHandler.Check)
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	// --- APIルート ---
	// ミドルウェアスタック: RateLimit(General)
	r.Group(func(r chi.Router) {
		r.Use(deps.RateLimiter.GeneralMiddleware())

		r.Route("/api/users", func(r chi.Router) {
			// POST /api/users - ユーザー作成（作成専用レート制限を追加）
			r.With(deps.RateLimiter.WriteMiddleware()).Post("/", userHandler.CreateUser)
			r.Get("/", userHandler.ListUsers)

			r.Route("/{id}", func(r chi.Router) {
				// POST /api/users/{id}/exercises - 運動記録の作成
				r.With(deps.RateLimiter.WriteMiddleware()).Post("/exercises", exerciseHandler.CreateExercise)

				// GET /api/users/{id}/logs - 運動ログの取得
				r.Get("/logs", logHandler.GetLogs)
			})
		})
	})

	return r
}
