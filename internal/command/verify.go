package command

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/psds-microservice/country-seeder/internal/seed"
)

// Verify выполняет контрольную выборку по списку сидинга: только строки
// с ISO-кодами из списка, в алфавитном порядке имен. Read-only.
func Verify(ctx context.Context, db *sql.DB) ([]seed.Country, error) {
	query, args := seed.VerifyStatement(seed.Countries)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select countries: %w", err)
	}
	defer rows.Close()

	var out []seed.Country
	for rows.Next() {
		var c seed.Country
		if err := rows.Scan(&c.Name, &c.ISOCode); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate countries: %w", err)
	}
	return out, nil
}
