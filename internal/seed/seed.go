package seed

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"movievault/internal/authz"
	"movievault/internal/models"
)

// FirstSetup seeds the four fixed roles and a bootstrap super_admin account.
// Roles are reference data: they are created once and never mutated
// afterwards.
func FirstSetup(db *gorm.DB) error {
	roles := []models.Role{
		{Name: string(authz.RoleSuperAdmin), Description: "Full access"},
		{Name: string(authz.RoleAdmin), Description: "Admin access"},
		{Name: string(authz.RoleEditor), Description: "Edit access"},
		{Name: string(authz.RoleViewer), Description: "View only"},
	}
	var superAdminRole models.Role
	for i := range roles {
		if err := db.Where("name = ?", roles[i].Name).FirstOrCreate(&roles[i]).Error; err != nil {
			return err
		}
		if roles[i].Name == string(authz.RoleSuperAdmin) {
			superAdminRole = roles[i]
		}
	}

	const bootstrapUser = "root"
	const bootstrapPass = "changeme123" // change after first login

	passHash, err := bcrypt.GenerateFromPassword([]byte(bootstrapPass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Username:       bootstrapUser,
		HashedPassword: string(passHash),
		RoleID:         superAdminRole.ID,
	}
	if err := db.Where("username = ?", bootstrapUser).FirstOrCreate(&admin).Error; err != nil {
		return err
	}

	log.Printf("seed ok | user=%s | roles=[super_admin,admin,editor,viewer]", bootstrapUser)
	return nil
}
