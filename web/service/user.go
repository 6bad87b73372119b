package service

import (
	"errors"
	"time"

	"github.com/fabre752/multidiary/database"
	"github.com/fabre752/multidiary/database/model"
	"github.com/fabre752/multidiary/logger"

	"gorm.io/gorm"
)

// UserService handles registration, credential checks and user lookups.
type UserService struct{}

// GetUserByLogin fetches the single user with the given login name.
// Returns gorm.ErrRecordNotFound when no such user exists.
func (s *UserService) GetUserByLogin(login string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("login = ?", login).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetFirstUser returns the first user row, the bootstrap admin on a fresh
// database.
func (s *UserService) GetFirstUser() (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser validates submitted credentials. Passwords are stored and
// compared as plain strings, an inherited weakness of this application.
func (s *UserService) CheckUser(login string, password string) (*model.User, error) {
	user, err := s.GetUserByLogin(login)
	if err != nil {
		if !database.IsNotFound(err) {
			logger.Warning("check user err:", err)
		}
		return nil, err
	}

	if user.Password != password {
		return nil, ErrWrongPassword
	}
	return user, nil
}

// Register creates a user with the default role and the current time.
// A taken login name is rejected before the insert so the unique index on
// login stays a backstop rather than the primary signal.
func (s *UserService) Register(login string, password string) (*model.User, error) {
	db := database.GetDB()

	err := db.Model(model.User{}).
		Where("login = ?", login).
		First(&model.User{}).
		Error
	if err == nil {
		return nil, ErrLoginTaken
	} else if !database.IsNotFound(err) {
		return nil, err
	}

	user := &model.User{
		Login:        login,
		Password:     password,
		CreationDate: time.Now().UTC(),
		RoleId:       model.DefaultRoleId,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateFirstUser replaces the bootstrap admin credentials.
func (s *UserService) UpdateFirstUser(login string, password string) error {
	if login == "" {
		return errors.New("login can not be empty")
	} else if password == "" {
		return errors.New("password can not be empty")
	}

	db := database.GetDB()
	user := &model.User{}
	err := db.Model(model.User{}).First(user).Error
	if err != nil {
		return err
	}
	user.Login = login
	user.Password = password
	return db.Save(user).Error
}

// incrementUserCounter bumps one of the denormalized activity counters.
func incrementUserCounter(db *gorm.DB, userId int, column string) error {
	return db.Model(model.User{}).
		Where("id = ?", userId).
		UpdateColumn(column, gorm.Expr(column+" + 1")).
		Error
}
