package database

import (
	"FlowHub/config"
	"FlowHub/pkg/log"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) (*gorm.DB, error) {
	db, err := Open(conf.Database.Driver, conf.Database.Dsn(), conf.Debug())
	if err != nil {
		log.L.Error("failed to connect database", zap.String("driver", conf.Database.Driver), zap.Error(err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if conf.Database.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.Database.MaxOpenConns)
	}
	if conf.Database.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.Database.MaxIdleConns)
	}
	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))
	return db, nil
}

// Open 按驱动名打开连接，sqlite 用于本地开发和测试
func Open(driver, dsn string, debug bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverMySQL, "":
		dialector = mysql.Open(dsn)
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	gormConf := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent), TranslateError: true}
	if debug {
		gormConf.Logger = logger.Default.LogMode(logger.Info)
	}
	return gorm.Open(dialector, gormConf)
}
