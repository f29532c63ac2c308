package db

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func Connect(dsn string) *gorm.DB {
	// TranslateError surfaces duplicate-key violations as gorm.ErrDuplicatedKey,
	// which the store layer maps onto its domain errors.
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, _ := gdb.DB()
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("database ping failed: %v", err)
	}

	log.Println("database connected")
	return gdb
}

func AutoMigrate(gdb *gorm.DB, models ...any) {
	if err := gdb.AutoMigrate(models...); err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}
}
