package workflows

import (
	"path/filepath"
	"testing"

	dbpkg "roleplay/db"
	"roleplay/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	conn.LogMode(false)
	conn.DB().SetMaxOpenConns(1)
	dbpkg.AutoMigrate(conn)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func createTestUser(t *testing.T, conn *gorm.DB, email, username, password string) *models.User {
	t.Helper()
	user, err := CreateUser(conn, CreateUserInput{
		Email:    email,
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

func createTestGroup(t *testing.T, conn *gorm.DB, masterID int64) *models.Group {
	t.Helper()
	group, err := CreateGroup(conn, CreateGroupInput{
		Name:        "test",
		Description: "test",
		Schedule:    "test",
		Location:    "test",
		Chronic:     "test",
		MasterID:    masterID,
	})
	require.NoError(t, err)
	return group
}
