// Package seed содержит справочник стран и SQL для его загрузки.
// Сидинг идемпотентен: конфликт по iso_code молча пропускает строку,
// существующие записи никогда не перезаписываются.
package seed

import (
	"fmt"
	"strings"
	"time"
)

// Country — одна строка справочника стран.
type Country struct {
	Name    string
	ISOCode string
}

// Countries — фиксированный список для сидинга. Ключ уникальности —
// двухбуквенный ISO-код; имена уникальными быть не обязаны.
var Countries = []Country{
	{"Argentina", "AR"},
	{"Belgium", "BE"},
	{"Brazil", "BR"},
	{"Egypt", "EG"},
	{"France", "FR"},
	{"Germany", "DE"},
	{"Greece", "GR"},
	{"Hungary", "HU"},
	{"India", "IN"},
	{"Israel", "IL"},
	{"Italy", "IT"},
	{"Mexico", "MX"},
	{"Morocco", "MA"},
	{"Netherlands", "NL"},
	{"Spain", "ES"},
	{"Thailand", "TH"},
	{"Turkey", "TR"},
	{"United Arab Emirates", "AE"},
	{"United Kingdom", "GB"},
	{"United States", "US"},
}

// InsertStatement собирает один multi-row INSERT по всему списку.
// Таблица countries и уникальный констрейнт на iso_code должны существовать
// заранее — без констрейнта ON CONFLICT отклоняется самим движком.
func InsertStatement(rows []Country, createdAt time.Time) (string, []any) {
	var b strings.Builder
	args := make([]any, 0, len(rows)*3)

	b.WriteString("INSERT INTO countries (name, iso_code, created_at) VALUES ")
	for i, c := range rows {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "($%d, $%d, $%d)", i*3+1, i*3+2, i*3+3)
		args = append(args, c.Name, c.ISOCode, createdAt)
	}
	b.WriteString(" ON CONFLICT (iso_code) DO NOTHING")

	return b.String(), args
}

// VerifyStatement собирает контрольный SELECT строго по тем же ISO-кодам,
// отсортированный по имени. Данные не изменяет.
func VerifyStatement(rows []Country) (string, []any) {
	ph := make([]string, len(rows))
	args := make([]any, len(rows))
	for i, c := range rows {
		ph[i] = fmt.Sprintf("$%d", i+1)
		args[i] = c.ISOCode
	}

	query := "SELECT name, iso_code FROM countries WHERE iso_code IN (" +
		strings.Join(ph, ", ") + ") ORDER BY name"
	return query, args
}

// Missing возвращает ISO-коды из Countries, отсутствующие в present.
func Missing(present []Country) []string {
	have := make(map[string]bool, len(present))
	for _, c := range present {
		have[c.ISOCode] = true
	}

	var missing []string
	for _, c := range Countries {
		if !have[c.ISOCode] {
			missing = append(missing, c.ISOCode)
		}
	}
	return missing
}
