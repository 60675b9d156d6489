package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
)

const pingTimeout = 5 * time.Second

// DBService represents a service that interacts with a database.
type DBService struct {
	DB     *sql.DB
	driver string
	log    *logrus.Logger
}

// NewDBService opens a Postgres connection through the pgx stdlib driver and pings it.
func NewDBService(connStr string, logger *logrus.Logger) (*DBService, error) {
	if connStr == "" {
		return nil, fmt.Errorf("missing DB_CONNECTION_STRING in environment variables")
	}

	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("could not open db connection: %w", err)
	}

	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not connect to the database: %w", err)
	}

	logger.Info("Connected to postgres")
	return &DBService{DB: db, driver: "postgres", log: logger}, nil
}

// Health checks the health of the database connection by pinging the database.
// It returns a map with keys indicating various health statistics.
func (s *DBService) Health() map[string]string {
	return health(s.DB, s.driver)
}

// Close closes the database connection.
func (s *DBService) Close() error {
	s.log.Info("Closing database connection")
	return s.DB.Close()
}

func health(db *sql.DB, driver string) map[string]string {
	stats := make(map[string]string)
	stats["driver"] = driver

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	dbStats := db.Stats()
	stats["status"] = "up"
	stats["message"] = "It's healthy"
	stats["open_connections"] = fmt.Sprintf("%d", dbStats.OpenConnections)
	stats["in_use"] = fmt.Sprintf("%d", dbStats.InUse)
	stats["idle"] = fmt.Sprintf("%d", dbStats.Idle)
	return stats
}
