package database

import (
	"testing"

	"github.com/Librity/gympoint-back-end/internal/domain/plans"
	"github.com/Librity/gympoint-back-end/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestSeedPlanCatalog(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Seed(db))

	var catalog []plans.Plan
	require.NoError(t, db.Order("duration ASC").Find(&catalog).Error)
	require.Len(t, catalog, 3)

	assert.Equal(t, "Silver", catalog[0].Title)
	assert.Equal(t, 1, catalog[0].Duration)
	assert.Equal(t, 129.99, catalog[0].Price)
	assert.Equal(t, "Gold", catalog[1].Title)
	assert.Equal(t, 3, catalog[1].Duration)
	assert.Equal(t, "Diamond", catalog[2].Title)
	assert.Equal(t, 6, catalog[2].Duration)

	// Seeding twice must not duplicate the catalog.
	require.NoError(t, Seed(db))
	var count int64
	require.NoError(t, db.Model(&plans.Plan{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestSeedAdminUser(t *testing.T) {
	db := openTestDB(t)

	t.Setenv("ADMIN_EMAIL", "admin@gympoint.com")
	t.Setenv("ADMIN_PASSWORD", "correct horse")

	require.NoError(t, Seed(db))

	var admin users.User
	require.NoError(t, db.Where("email = ?", "admin@gympoint.com").First(&admin).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("correct horse")))

	require.NoError(t, Seed(db))
	var count int64
	require.NoError(t, db.Model(&users.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
