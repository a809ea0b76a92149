// Package main реализует multichecker для статического анализа кода проекта.
//
// # Назначение
//
// Multichecker объединяет несколько статических анализаторов для проверки кода
// на соответствие стандартам качества, обнаружения потенциальных ошибок
// и выявления проблем безопасности.
//
// # Запуск
//
// Для запуска анализатора выполните:
//
//	go run cmd/staticlint/main.go ./...
//
// Или соберите бинарный файл:
//
//	go build -o staticlint cmd/staticlint/main.go
//	./staticlint ./...
//
// Для анализа конкретного пакета:
//
//	./staticlint ./internal/handler
//
// # Состав анализаторов
//
// Multichecker включает следующие группы анализаторов:
//
// ## 1. Стандартные анализаторы golang.org/x/tools/go/analysis/passes
//
//   - printf: проверяет корректность форматирования в fmt.Printf и подобных
//   - shadow: обнаруживает затенение переменных
//   - structtag: проверяет корректность тегов структур
//   - unusedresult: находит неиспользуемые результаты функций
//
// ## 2. Анализаторы класса SA из staticcheck.io
//
// Все анализаторы класса SA (Static Analysis) проверяют код на наличие
// распространенных ошибок и проблем:
//
//   - SA1*: обнаружение некорректного использования стандартной библиотеки
//   - SA2*: проверка конкурентности и синхронизации
//   - SA3*: проверка логических операций
//   - SA4*: проверка корректности использования API
//   - SA5*: проверка на распространенные ошибки
//   - SA6*: проверка эффективности кода
//   - SA9*: проверка на подозрительные конструкции
//
// ## 3. Дополнительные анализаторы staticcheck.io
//
//   - ST1003 (stylecheck): проверка именования на соответствие Go conventions
//   - QF1001 (quickfix): предложения по упрощению кода
//
// ## 4. Собственный анализатор
//
//   - layering: не даёт HTTP слою обращаться к БД в обход фасада хранилища
//
// # Собственный анализатор layering
//
// Пакеты internal/handler работают с хранилищем только через
// repository.Repository. Анализатор сообщает об импорте драйверов
// и конкретных хранилищ в этих пакетах:
//
//	import "database/sql" // будет обнаружено
//	import "github.com/Popolzen/wishlists/internal/repository/database" // тоже
//
// Тесты пакета (файлы _test.go) проверяются так же, кроме memory: на нём
// построены сквозные тесты обработчиков.
//
// # Примеры использования
//
// Проверка всего проекта:
//
//	./staticlint ./...
//
// Проверка конкретного пакета:
//
//	./staticlint ./internal/handler
//
// С выводом подробной информации:
//
//	./staticlint -v ./...
//
// # Интеграция с CI/CD
//
// Добавьте в .github/workflows/statictest.yml:
//
//   - name: Run staticlint
//     run: |
//     go build -o staticlint cmd/staticlint/main.go
//     ./staticlint ./...
package main

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/quickfix"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
)

func main() {
	// Собираем все анализаторы в один список
	checks := []*analysis.Analyzer{
		// 1. Стандартные анализаторы
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		unusedresult.Analyzer,

		// 4. Собственный анализатор
		LayeringAnalyzer,
	}

	// 2. Добавляем все SA анализаторы из staticcheck
	for _, v := range staticcheck.Analyzers {
		checks = append(checks, v.Analyzer)
	}

	// 3. ST1003 и QF1001
	for _, v := range stylecheck.Analyzers {
		if v.Analyzer.Name == "ST1003" {
			checks = append(checks, v.Analyzer)
		}
	}
	for _, v := range quickfix.Analyzers {
		if v.Analyzer.Name == "QF1001" {
			checks = append(checks, v.Analyzer)
		}
	}

	// Запускаем multichecker
	multichecker.Main(checks...)
}
