// Package database manages the sqlite database connection, schema migration
// and initial seeding for the multidiary blog.
package database

import (
	"io/fs"
	"log"
	"os"
	"path"
	"time"

	"github.com/fabre752/multidiary/config"
	"github.com/fabre752/multidiary/database/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

const (
	defaultAdminLogin    = "admin"
	defaultAdminPassword = "admin"
	adminRoleId          = 2
)

func initModels() error {
	models := []any{
		&model.Role{},
		&model.User{},
		&model.Post{},
		&model.Comment{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initRoles seeds the role table. Registration hard-codes role id 1, so a
// fresh database must contain it before the first user is created.
func initRoles() error {
	empty, err := isTableEmpty("roles")
	if err != nil {
		log.Printf("Error checking if roles table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}
	roles := []model.Role{
		{Id: model.DefaultRoleId, Name: "normal"},
		{Id: adminRoleId, Name: "admin"},
	}
	return db.Create(&roles).Error
}

func initUser() error {
	empty, err := isTableEmpty("users")
	if err != nil {
		log.Printf("Error checking if users table is empty: %v", err)
		return err
	}
	if empty {
		user := &model.User{
			Login:        defaultAdminLogin,
			Password:     defaultAdminPassword,
			CreationDate: time.Now().UTC(),
			RoleId:       adminRoleId,
		}
		return db.Create(user).Error
	}
	return nil
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	if err := initRoles(); err != nil {
		return err
	}
	if err := initUser(); err != nil {
		return err
	}

	return nil
}

func CloseDB() error {
	if db != nil {
		if err := Checkpoint(); err != nil {
			log.Printf("error executing checkpoint: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}

func Checkpoint() error {
	// Update WAL
	err := db.Exec("PRAGMA wal_checkpoint;").Error
	if err != nil {
		return err
	}
	return nil
}
