package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	apperrors "github.com/SalmanuRidwan/Trivia-API/internal/pkg/errors"
)

// Коды ошибок Postgres, которые означают некорректные входные данные
var validationCodes = map[string]struct{}{
	"23514": {}, // check_violation
	"22P02": {}, // invalid_text_representation
	"22001": {}, // string_data_right_truncation
	"22003": {}, // numeric_value_out_of_range
}

// translateError переводит ошибки драйвера в ошибки приложения.
// Поддерживаются оба драйвера: pgx/v5 (gorm) и lib/pq.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}

	var code string
	var pgErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgErr):
		code = pgErr.Code
	case errors.As(err, &pqErr):
		code = string(pqErr.Code)
	}

	if _, ok := validationCodes[code]; ok {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if code == "23505" {
		return fmt.Errorf("%w: %v", apperrors.ErrConflict, err)
	}
	return err
}
