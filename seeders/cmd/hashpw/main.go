// hashpw печатает bcrypt-хеш пароля для ручной правки пользователя в БД.
package main

import (
	"flag"
	"fmt"
	"log"

	"inventory-system/pkg/utils"
)

func main() {
	password := flag.String("p", "", "пароль для хеширования")
	flag.Parse()

	if *password == "" {
		log.Fatal("❌ Укажите пароль: -p <пароль>")
	}

	hash, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatalf("Ошибка при генерации хеша: %v", err)
	}
	fmt.Println(hash)
}
