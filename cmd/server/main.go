package main

import (
	"log"
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"user_backend/internal/app/router"
	"user_backend/internal/feature/users/adapters"
	userhandler "user_backend/internal/feature/users/transport/handler"
	"user_backend/internal/feature/users/usecase"
	"user_backend/internal/platform/cache"
	"user_backend/internal/platform/config"
	infradb "user_backend/internal/platform/db"
	jwtmw "user_backend/internal/platform/jwt"
	infraredis "user_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// 設定は起動時に一度だけ読み込み、以降はコンストラクタ経由で注入する
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// db
	db, err := infradb.OpenDB(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	// Redis（未設定・接続不可ならキャッシュなしで起動）
	var rdb *redisv9.Client
	if cfg.RedisHost == "" {
		slog.Info("Redis not configured. Running without cache.")
	} else if tmp, err := infraredis.NewRedisClient(cfg); err != nil {
		slog.Warn("Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	userRepo := adapters.NewUserMySQL(db)

	// Redisキャッシュでラップ
	cachedUserRepo := cache.NewCachingUserRepository(rdb, cfg.CacheTTL(), userRepo, "users")

	// Token generator
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiration())

	// Usecase
	userUC := usecase.NewUserUsecase(cachedUserRepo, tokenGen)

	// Handler
	userH := userhandler.NewUserHandler(userUC)

	// ルータ生成
	r := router.NewRouter(userH, cfg.JWTSecret)

	// CORS追加
	r.Use(cors.Default())

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
