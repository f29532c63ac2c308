package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"movievault/internal/authz"
	"movievault/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// keep the single in-memory database alive across the pool
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Movie{},
		&models.MovieAssignment{},
		&models.MovieFile{},
	))

	roles := []models.Role{
		{Name: string(authz.RoleSuperAdmin), Description: "Full access"},
		{Name: string(authz.RoleAdmin), Description: "Admin access"},
		{Name: string(authz.RoleEditor), Description: "Edit access"},
		{Name: string(authz.RoleViewer), Description: "View only"},
	}
	for i := range roles {
		require.NoError(t, gdb.Create(&roles[i]).Error)
	}
	return gdb
}

func createUser(t *testing.T, gdb *gorm.DB, username string, role authz.Role) *models.User {
	t.Helper()
	var roleRow models.Role
	require.NoError(t, gdb.Where("name = ?", string(role)).First(&roleRow).Error)
	u := models.User{Username: username, HashedPassword: "x", RoleID: roleRow.ID}
	require.NoError(t, gdb.Create(&u).Error)
	u.Role = &roleRow
	return &u
}

func identOf(u *models.User) authz.Identity {
	return authz.Identity{UserID: u.ID, Role: authz.Role(u.Role.Name)}
}

func ctx() context.Context { return context.Background() }
