package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"inventory-system/migrations"
	"inventory-system/pkg/config"
	"inventory-system/pkg/logger"
)

func main() {
	cmd := flag.String("cmd", "up", "up | down | status")
	flag.Parse()

	_ = godotenv.Load()
	log := logger.NewLogger(config.LogConfig{Level: os.Getenv("LOG_LEVEL")})
	defer log.Sync()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL не задан")
	}

	db, err := migrations.Open(dsn)
	if err != nil {
		log.Fatal("Ошибка подключения", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	switch *cmd {
	case "up":
		err = migrations.Up(ctx, db)
	case "down":
		err = migrations.Down(ctx, db)
	case "status":
		err = migrations.Status(ctx, db)
	default:
		log.Fatal("Неизвестная команда", zap.String("cmd", *cmd))
	}
	if err != nil {
		log.Fatal("Миграция завершилась ошибкой", zap.String("cmd", *cmd), zap.Error(err))
	}
	log.Info("Готово", zap.String("cmd", *cmd))
}
