package database

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/expki/go-dataminer/config"
	_ "github.com/expki/go-dataminer/env"
	"github.com/expki/go-dataminer/logger"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

// Database is the store for fetched catalog pages and the products parsed from them.
type Database struct {
	*gorm.DB
}

func New(cfg config.Database) (db *Database, err error) {
	// get dialectors from config
	readwrite, readonly := cfg.GetDialectors()
	if len(readwrite) == 0 {
		return nil, errors.New("no writable database configured")
	}
	return open(readwrite, readonly, cfg.LogLevel)
}

// Open connects to a single dialector, mainly for tests and tools that bring their own driver.
func Open(dialector gorm.Dialector, level config.LogLevel) (db *Database, err error) {
	return open([]gorm.Dialector{dialector}, nil, level)
}

func open(readwrite, readonly []gorm.Dialector, level config.LogLevel) (db *Database, err error) {
	// open primary database connection
	conn, err := gorm.Open(readwrite[0], &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		Logger: gormlogger.New(log.New(os.Stderr, "\r\n", log.LstdFlags), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level.Gorm(),
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to connect database"), err)
	}
	err = conn.Clauses(dbresolver.Write).AutoMigrate(
		&Page{},
		&Product{},
	)
	if err != nil {
		return nil, errors.Join(errors.New("failed to migrate database"), err)
	}

	// add resolver connections
	if len(readonly)+len(readwrite) > 1 {
		err = conn.Use(dbresolver.Register(dbresolver.Config{
			Sources:           readwrite,
			Replicas:          readonly,
			Policy:            dbresolver.StrictRoundRobinPolicy(),
			TraceResolverMode: true,
		}))
		if err != nil {
			logger.Sugar().Errorf("failed to register database resolver: %v", err)
			return nil, err
		}
	}
	return &Database{DB: conn}, nil
}

// Close releases the underlying connection pool.
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
