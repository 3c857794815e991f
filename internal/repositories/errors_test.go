package repositories

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(assert.AnError))
	assert.False(t, IsUniqueViolation(nil))
}

func TestUniqueConstraint(t *testing.T) {
	constraint, ok := UniqueConstraint(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
	assert.True(t, ok)
	assert.Equal(t, "users_email_key", constraint)

	_, ok = UniqueConstraint(&pgconn.PgError{Code: "23503", ConstraintName: "fk"})
	assert.False(t, ok)

	_, ok = UniqueConstraint(assert.AnError)
	assert.False(t, ok)
}
