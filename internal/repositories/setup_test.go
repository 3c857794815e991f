package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Trkcnl/twacktwack/internal/migrations"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	err = migrations.Up(context.Background(), db.DB)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

// exerciseTypeID resolves a seeded catalog exercise type by name.
func exerciseTypeID(t *testing.T, db *sqlx.DB, name string) int64 {
	t.Helper()

	var id int64
	err := db.Get(&id, "SELECT id FROM exercise_types WHERE name = $1 AND is_custom = FALSE", name)
	assert.NoError(t, err)
	return id
}

// measurementTypeID resolves a seeded measurement type by name.
func measurementTypeID(t *testing.T, db *sqlx.DB, name string) int64 {
	t.Helper()

	var id int64
	err := db.Get(&id, "SELECT id FROM measurement_types WHERE name = $1", name)
	assert.NoError(t, err)
	return id
}
