package command

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/psds-microservice/country-seeder/internal/seed"
	"go.uber.org/zap"
)

// Seed вставляет справочник стран одним стейтментом (движок применяет его
// атомарно либо отклоняет целиком). Возвращает число реально вставленных строк;
// строки с уже существующим iso_code пропускаются без ошибки.
func Seed(ctx context.Context, db *sql.DB, logger *zap.Logger) (int64, error) {
	query, args := seed.InsertStatement(seed.Countries, time.Now().UTC())

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert countries: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	logger.Info("Countries seeded",
		zap.Int64("inserted", inserted),
		zap.Int64("skipped", int64(len(seed.Countries))-inserted))
	return inserted, nil
}
