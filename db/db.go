package db

import (
	"dressa_storefront/models"
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options 对应 DB_* 环境变量；sqlite 时 Name 就是文件路径
type Options struct {
	Type     string // postgres / mysql / sqlite
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func Open(opt Options) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch opt.Type {
	case "postgres", "postgresql":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			opt.Host, opt.User, opt.Password, opt.Name, opt.Port,
		)
		dialector = postgres.Open(dsn)
	case "mysql", "mariadb":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			opt.User, opt.Password, opt.Host, opt.Port, opt.Name,
		)
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(opt.Name)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", opt.Type)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", opt.Type, err)
	}
	if opt.Type == "sqlite" {
		// 单连接：:memory: 库不跨连接共享，文件库也避免写锁竞争
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	if err := Migrate(conn); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return conn, nil
}

// ConnectDB 启动时用，失败直接退出
func ConnectDB(opt Options) *gorm.DB {
	conn, err := Open(opt)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	log.Printf("Database connected (%s)", opt.Type)
	return conn
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.KVEntry{})
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
