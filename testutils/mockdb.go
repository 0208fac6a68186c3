package testutils

import (
	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"studentflow/studentflow/database"
)

// SetupMockDB sets up a sqlmock-backed database connection for tests that
// assert on the SQL the store issues.
func SetupMockDB() (*database.Database, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		panic(err)
	}

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		panic(err)
	}

	mockDB := &database.Database{DB: gormDB}

	close := func() {
		db.Close()
	}

	return mockDB, mock, close
}

// SetupTestDB opens an in-memory sqlite database with migrations applied,
// for tests that exercise real persistence behavior.
func SetupTestDB() (*database.Database, func()) {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}
	if err := database.RunMigrations(gormDB); err != nil {
		panic(err)
	}

	db := &database.Database{DB: gormDB}
	close := func() {
		sqlDB, err := gormDB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	return db, close
}
