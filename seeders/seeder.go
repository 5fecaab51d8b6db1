package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDictionaries наполняет справочники без зависимостей от пользователей.
func SeedDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения справочников...")

	if err := seedOrganizations(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Организаций: %v", err)
	}
	if err := seedPlaces(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Складов: %v", err)
	}
	if err := seedVendors(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Производителей: %v", err)
	}
	if err := seedNomenclatures(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Номенклатуры: %v", err)
	}
	log.Println("✅ Наполнение справочников завершено!")
}

// SeedDemo создает подразделение с МОЛ, оборудование и накладные для формы 8.
// Требует справочников.
func SeedDemo(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения демо-данных...")

	if err := seedDemo(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения демо-данных: %v", err)
	}
	log.Println("✅ Демо-данные созданы!")
}
