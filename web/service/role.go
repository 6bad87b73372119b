package service

import (
	"github.com/fabre752/multidiary/database"
	"github.com/fabre752/multidiary/database/model"
)

// RoleService resolves role rows for profile display.
type RoleService struct{}

// GetRole fetches a role by id. Returns gorm.ErrRecordNotFound when the
// user's role reference does not resolve.
func (s *RoleService) GetRole(id int) (*model.Role, error) {
	db := database.GetDB()

	role := &model.Role{}
	err := db.Model(model.Role{}).
		Where("id = ?", id).
		First(role).
		Error
	if err != nil {
		return nil, err
	}
	return role, nil
}
