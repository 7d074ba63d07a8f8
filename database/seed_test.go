package database

import (
	"testing"

	"learnhub/config"
	"learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDb(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: bcrypt.MinCost}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Course{}, &models.Lesson{}, &models.Enrollment{}))
	return db
}

func TestSeedBootstrapsEmptyDatabase(t *testing.T) {
	db := setupSeedDb(t)

	require.NoError(t, Seed(db))

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "admin@example.com", users[0].Email)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte("admin123")))

	var courses []models.Course
	require.NoError(t, db.Preload("Lessons").Find(&courses).Error)
	require.Len(t, courses, 4)
	for _, course := range courses {
		assert.Len(t, course.Lessons, 2)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupSeedDb(t)

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var userCount, courseCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Course{}).Count(&courseCount).Error)
	assert.EqualValues(t, 1, userCount)
	assert.EqualValues(t, 4, courseCount)
}

func TestSeedSkipsNonEmptyUserTable(t *testing.T) {
	db := setupSeedDb(t)

	existing := models.User{Name: "Someone", Email: "someone@example.com", Password: "hash", Role: models.RoleUser}
	require.NoError(t, db.Create(&existing).Error)

	require.NoError(t, Seed(db))

	var courseCount int64
	require.NoError(t, db.Model(&models.Course{}).Count(&courseCount).Error)
	assert.Zero(t, courseCount)
}
