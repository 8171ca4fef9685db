// Package testhelpers поднимает in-memory SQLite под боевые SQL-стейтменты.
// SQLite ≥3.24 поддерживает тот же ON CONFLICT (col) DO NOTHING, что и
// PostgreSQL; плейсхолдеры $N (стиль lib/pq) переписываются оберткой драйвера
// в позиционные ? — аргументы у нас всегда идут по возрастанию номеров.
package testhelpers

import (
	"database/sql"
	"database/sql/driver"
	"regexp"
	"sync"
	"testing"

	_ "modernc.org/sqlite"
)

var (
	registerOnce sync.Once
	placeholders = regexp.MustCompile(`\$\d+`)
)

type pgArgsDriver struct {
	d driver.Driver
}

func (p pgArgsDriver) Open(name string) (driver.Conn, error) {
	c, err := p.d.Open(name)
	if err != nil {
		return nil, err
	}
	return pgArgsConn{c}, nil
}

type pgArgsConn struct {
	driver.Conn
}

func (c pgArgsConn) Prepare(query string) (driver.Stmt, error) {
	return c.Conn.Prepare(placeholders.ReplaceAllString(query, "?"))
}

func register() {
	base, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		panic(err)
	}
	d := base.Driver()
	_ = base.Close()
	sql.Register("sqlite-pgargs", pgArgsDriver{d})
}

// NewTestDB открывает in-memory базу с таблицей countries в том виде,
// в каком ее гарантирует внешняя схема: уникальный констрейнт на iso_code
// обязателен, без него ON CONFLICT отклоняется движком.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	registerOnce.Do(register)

	db, err := sql.Open("sqlite-pgargs", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// одно соединение, иначе каждый коннект видит свою ":memory:" базу
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE countries (
		name TEXT NOT NULL,
		iso_code TEXT NOT NULL UNIQUE,
		created_at TIMESTAMP NOT NULL
	)`); err != nil {
		t.Fatalf("create countries: %v", err)
	}
	return db
}
