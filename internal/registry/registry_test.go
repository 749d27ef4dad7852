package registry

import (
	"testing"

	"televault/media-bot/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Media{}))

	return New(db)
}

func TestInsertAndFind(t *testing.T) {
	reg := newTestRegistry(t)

	thumb := "TH001"
	m := &model.Media{
		FileID:   "PH001",
		ThumbID:  &thumb,
		FileType: model.KindPhoto,
		PublicID: "abcd1234",
	}

	require.NoError(t, reg.Insert(m))
	assert.NotZero(t, m.ID, "insert must fill in the surrogate key")

	byFile, err := reg.FindByFileID("PH001")
	require.NoError(t, err)
	assert.Equal(t, "abcd1234", byFile.PublicID)

	byPublic, err := reg.FindByPublicID("abcd1234")
	require.NoError(t, err)
	assert.Equal(t, "PH001", byPublic.FileID)
	assert.Equal(t, model.KindPhoto, byPublic.FileType)
	require.NotNil(t, byPublic.ThumbID)
	assert.Equal(t, "TH001", *byPublic.ThumbID)
}

func TestFindMissing(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.FindByFileID("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = reg.FindByPublicID("zz999999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInsertDuplicateFileID(t *testing.T) {
	reg := newTestRegistry(t)

	require.NoError(t, reg.Insert(&model.Media{FileID: "PH001", FileType: model.KindPhoto, PublicID: "aaaa1111"}))

	err := reg.Insert(&model.Media{FileID: "PH001", FileType: model.KindPhoto, PublicID: "bbbb2222"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestInsertDuplicatePublicID(t *testing.T) {
	reg := newTestRegistry(t)

	require.NoError(t, reg.Insert(&model.Media{FileID: "PH001", FileType: model.KindPhoto, PublicID: "aaaa1111"}))

	err := reg.Insert(&model.Media{FileID: "PH002", FileType: model.KindPhoto, PublicID: "aaaa1111"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDeleteIsIdempotent(t *testing.T) {
	reg := newTestRegistry(t)

	require.NoError(t, reg.Insert(&model.Media{FileID: "VD001", FileType: model.KindVideo, PublicID: "vvvv1111"}))

	removed, err := reg.Delete("vvvv1111")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = reg.Delete("vvvv1111")
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = reg.FindByPublicID("vvvv1111")
	assert.ErrorIs(t, err, ErrNotFound)
}
