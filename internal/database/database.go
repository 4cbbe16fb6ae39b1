package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/emilythestrangee/board-game-reviews/backend/internal/config"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/logger"
)

// Service owns the gorm pool the store runs on.
type Service interface {
	// Health reports "status" ("up" or "down") plus pool counters for /health.
	Health() map[string]string
	Close() error
	GetDB() *gorm.DB
}

type service struct {
	db   *gorm.DB
	name string
	log  *zap.Logger
}

// New opens the gorm connection pool. When cfg.Migrate is set the schema is
// created before the pool is handed out.
func New(cfg config.DatabaseConfig, log *zap.Logger) (Service, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DriverName: "pgx",
		DSN:        cfg.DSN(),
	}), &gorm.Config{
		Logger:                 logger.NewGormLogger(log),
		SkipDefaultTransaction: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	log.Info("database connected", zap.String("database", cfg.Name))

	if cfg.Migrate {
		if err := db.Exec(Schema).Error; err != nil {
			return nil, fmt.Errorf("error creating tables: %w", err)
		}
		log.Info("database tables created/verified")
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &service{db: db, name: cfg.Name, log: log}, nil
}

func (s *service) GetDB() *gorm.DB {
	return s.db
}

// Health pings PostgreSQL with a 10s budget. A failed ping yields status
// "down" and the error; otherwise the open, in-use and idle connection counts.
func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats := map[string]string{"database": s.name}

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		s.log.Warn("database health check failed", zap.Error(err))
		stats["status"] = "down"
		stats["error"] = err.Error()
		return stats
	}

	pool := sqlDB.Stats()
	stats["status"] = "up"
	stats["open_connections"] = strconv.Itoa(pool.OpenConnections)
	stats["in_use"] = strconv.Itoa(pool.InUse)
	stats["idle"] = strconv.Itoa(pool.Idle)
	return stats
}

func (s *service) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	s.log.Info("disconnected from database", zap.String("database", s.name))
	return sqlDB.Close()
}
