package gorm

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"weather-query-api/configs"
	"weather-query-api/internal/domain/entity"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Open connects to the configured store and migrates the schema.
func Open(config configs.DBConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(config)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("fail to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if config.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	}
	if config.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	}

	if err = db.AutoMigrate(&entity.WeatherQuery{}); err != nil {
		return nil, fmt.Errorf("fail to migrate database: %w", err)
	}
	return db, nil
}

func dialectorFor(config configs.DBConfig) (gorm.Dialector, error) {
	switch config.Driver {
	case "", DriverPostgres:
		dsn := config.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
				config.Host, config.Username, config.Password, config.Database, config.Port, config.Schema)
		}
		return postgres.Open(dsn), nil
	case DriverMySQL:
		dsn := config.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				config.Username, config.Password, config.Host, config.Port, config.Database)
		}
		return mysql.Open(dsn), nil
	case DriverSQLite:
		dsn := config.DSN
		if dsn == "" {
			dsn = config.Database + ".db"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}
}
