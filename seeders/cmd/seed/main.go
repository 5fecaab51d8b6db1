package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"inventory-system/pkg/config"
	"inventory-system/pkg/database/postgresql"
	"inventory-system/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runDictionaries := flag.Bool("dictionaries", false, "Наполнить справочники (организации, склады, производители, номенклатура)")
	runDemo := flag.Bool("demo", false, "Создать демо-подразделение, МОЛ, оборудование и накладные")
	runAll := flag.Bool("all", false, "Запустить все сидеры (эквивалентно -dictionaries -demo)")
	flag.Parse()

	if !*runDictionaries && !*runDemo && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed -dictionaries")
		log.Println("  go run ./seeders/cmd/seed -all")
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	dbPool, err := postgresql.ConnectDB(context.Background(), cfg.Postgres.DSN, cfg.Postgres.ConnectRetries, zap.NewNop())
	if err != nil {
		log.Fatalf("❌ Не удалось подключиться к БД: %v", err)
	}
	defer dbPool.Close()

	if *runAll || *runDictionaries {
		seeders.SeedDictionaries(dbPool)
		log.Println("======================================================")
	}
	if *runAll || *runDemo {
		seeders.SeedDemo(dbPool)
		log.Println("======================================================")
	}

	log.Println("✅ Все указанные операции сидирования успешно завершены.")
}
