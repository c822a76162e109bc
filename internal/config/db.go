package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DBConfig holds database connection parameters
type DBConfig struct {
	DSN string
}

// ConnectDB establishes a connection to the PostgreSQL database
func ConnectDB(cfg DBConfig) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	// Retry connecting to the database a few times
	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(context.Background(), cfg.DSN)
		if err == nil {
			err = pool.Ping(context.Background())
			if err == nil {
				log.Println("Successfully connected to PostgreSQL!")
				return pool, nil
			}
			pool.Close()
		}
		log.Printf("Failed to connect to database (attempt %d/%d): %v. Retrying in %v...", i+1, maxRetries, err, retryInterval)
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// users.role_id has no foreign key: deleting a role never cascades to or blocks on its users.
const authSchema = `
	CREATE TABLE IF NOT EXISTS roles (
		id SERIAL PRIMARY KEY,
		name VARCHAR(50) NOT NULL
	);

	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(100) UNIQUE NOT NULL,
		email VARCHAR(120) NOT NULL,
		password TEXT NOT NULL,
		role_id INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_users_role_id ON users(role_id);
`

// tipo, estado and username are free-form and carry no length bound.
const solicitudesSchema = `
	CREATE TABLE IF NOT EXISTS solicitudes (
		id BIGSERIAL PRIMARY KEY,
		tipo TEXT NOT NULL,
		usuario_id INTEGER NOT NULL,
		estado TEXT NOT NULL DEFAULT 'pendiente',
		fecha TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
		detalle TEXT NOT NULL DEFAULT '',
		username TEXT NOT NULL,
		certificado JSONB
	);

	CREATE INDEX IF NOT EXISTS idx_solicitudes_usuario_id ON solicitudes(usuario_id);
`

// AutoMigrateAuth creates the auth service tables if they don't exist
func AutoMigrateAuth(db *pgxpool.Pool) error {
	return migrate(db, "auth", authSchema)
}

// AutoMigrateSolicitudes creates the solicitudes service tables if they don't exist
func AutoMigrateSolicitudes(db *pgxpool.Pool) error {
	return migrate(db, "solicitudes", solicitudesSchema)
}

func migrate(db *pgxpool.Pool, name, sql string) error {
	_, err := db.Exec(context.Background(), sql)
	if err != nil {
		return fmt.Errorf("unable to apply %s migrations: %w", name, err)
	}

	log.Printf("AutoMigrate (%s) applied successfully", name)
	return nil
}
