package store

import (
	"io"
	"log"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.New(log.New(io.Discard, "", log.LstdFlags), logger.Config{LogLevel: logger.Silent}),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return New(gormDB), mock
}

func expectExists(mock sqlmock.Sqlmock, table, column string, arg any, found bool) {
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM ` + table + ` WHERE ` + column + ` = \$1\)`).
		WithArgs(arg).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(found))
}
