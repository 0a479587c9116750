package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintHelpers(t *testing.T) {
	fk := errors.Wrap(&pgconn.PgError{Code: "23503", ConstraintName: "fk_store_flavors_flavor"}, "upsert")

	assert.True(t, isForeignKeyConstraintViolation(fk))
	assert.Equal(t, "fk_store_flavors_flavor", pgConstraintName(fk))
	assert.False(t, isUniqueConstraintViolation(fk))

	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: "23514"}))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.False(t, isNotNullConstraintViolation(errors.New("null value somewhere")))
	assert.Empty(t, pgConstraintName(errors.New("plain")))
}
