package mysql

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"forum-admin/internal/model"
)

// newTestDB opens an isolated in-memory database with the tool's schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// a pooled second connection would see its own empty :memory: database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestUserRepositoryCreateAndFindByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := &UserRepository{DB: db}

	user := &model.User{Name: "Ana", Email: "ana@x.com", Password: "hash", Role: model.RoleModerator}
	require.NoError(t, repo.Create(user))
	require.NotZero(t, user.ID)

	got, err := repo.FindByEmail("ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "Ana", got.Name)

	_, err = repo.FindByEmail("nobody@x.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepositoryListByRole(t *testing.T) {
	db := newTestDB(t)
	repo := &UserRepository{DB: db}

	require.NoError(t, repo.Create(&model.User{Name: "Ana", Email: "ana@x.com", Password: "h", Role: model.RoleModerator}))
	require.NoError(t, repo.Create(&model.User{Name: "Bob", Email: "bob@x.com", Password: "h", Role: model.RoleMember}))
	require.NoError(t, repo.Create(&model.User{Name: "Cleo", Email: "cleo@x.com", Password: "h", Role: model.RoleModerator}))

	mods, err := repo.ListByRole(model.RoleModerator)
	require.NoError(t, err)
	require.Len(t, mods, 2)
	assert.Equal(t, "Ana", mods[0].Name)
	assert.Equal(t, "Cleo", mods[1].Name)
}

func TestCommunityRepositoryListNamesAndFindByName(t *testing.T) {
	db := newTestDB(t)
	repo := &CommunityRepository{DB: db}

	require.NoError(t, db.Create(&model.Community{Name: "Rust"}).Error)
	require.NoError(t, db.Create(&model.Community{Name: "Go"}).Error)

	names, err := repo.ListNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Rust", "Go"}, names)

	got, err := repo.FindByName("Rust")
	require.NoError(t, err)
	assert.Equal(t, "Rust", got.Name)

	_, err = repo.FindByName("Zig")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAddModeratorInsertsMemberAndModerator(t *testing.T) {
	db := newTestDB(t)
	repo := &CommunityMemberRepository{DB: db}

	require.NoError(t, repo.AddModerator(7, 3))

	isMod, err := repo.IsModerator(7, 3)
	require.NoError(t, err)
	assert.True(t, isMod)

	isMember, err := repo.IsMember(7, 3)
	require.NoError(t, err)
	assert.True(t, isMember)
}

func TestAddModeratorIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := &CommunityMemberRepository{DB: db}

	require.NoError(t, repo.AddModerator(7, 3))
	require.NoError(t, repo.AddModerator(7, 3))

	var count int64
	require.NoError(t, db.Model(&model.CommunityMember{}).
		Where("community_id = ? AND user_id = ?", 7, 3).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddModeratorUpgradesExistingMember(t *testing.T) {
	db := newTestDB(t)
	repo := &CommunityMemberRepository{DB: db}

	require.NoError(t, db.Create(&model.CommunityMember{CommunityID: 7, UserID: 3, Role: model.RoleMember}).Error)

	require.NoError(t, repo.AddModerator(7, 3))

	var row model.CommunityMember
	require.NoError(t, db.Where("community_id = ? AND user_id = ?", 7, 3).First(&row).Error)
	assert.Equal(t, model.RoleModerator, row.Role)

	var count int64
	require.NoError(t, db.Model(&model.CommunityMember{}).
		Where("community_id = ? AND user_id = ?", 7, 3).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
