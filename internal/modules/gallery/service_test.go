package gallery

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/onetree-africa/core/internal/database"
	"github.com/onetree-africa/core/internal/models"
	"github.com/onetree-africa/core/internal/modules/storage/upload"
	"github.com/onetree-africa/core/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var pngPayload = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

func testService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	uploads := upload.NewServiceWith(
		upload.NewLocalStorage(t.TempDir()),
		5*1024*1024,
		[]string{"image/jpeg", "image/png", "image/gif", "image/webp"},
	)
	return NewService(db, uploads), db
}

func testImage() *upload.Incoming {
	return &upload.Incoming{Payload: pngPayload, Name: "shot.png", ContentType: "image/png"}
}

func TestCreateGalleryImage(t *testing.T) {
	svc, _ := testService(t)

	g, err := svc.Create(context.Background(), &CreateGalleryDTO{
		Alt:     "Students planting trees",
		Caption: "Annual planting event",
	}, testImage())
	require.NoError(t, err)
	assert.NotEmpty(t, g.ID)
	assert.NotEmpty(t, g.Src)
}

func TestCreateGalleryImageRequiresFile(t *testing.T) {
	svc, db := testService(t)

	_, err := svc.Create(context.Background(), &CreateGalleryDTO{
		Alt:     "alt",
		Caption: "caption",
	}, nil)
	assert.True(t, apperr.Is(err, apperr.ValidationFailed))

	var count int64
	require.NoError(t, db.Model(&models.GalleryModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateGalleryImageRequiresMetadata(t *testing.T) {
	svc, _ := testService(t)

	_, err := svc.Create(context.Background(), &CreateGalleryDTO{Alt: "alt only"}, testImage())
	assert.True(t, apperr.Is(err, apperr.ValidationFailed))
}

func TestUpdateGalleryMetadataPreservesSrc(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	g, err := svc.Create(ctx, &CreateGalleryDTO{Alt: "before", Caption: "before"}, testImage())
	require.NoError(t, err)

	alt := "after"
	updated, err := svc.Update(ctx, g.ID, &UpdateGalleryDTO{Alt: &alt}, nil)
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Alt)
	assert.Equal(t, "before", updated.Caption)
	assert.Equal(t, g.Src, updated.Src)
}

func TestUpdateGalleryNewFileReplacesSrc(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	g, err := svc.Create(ctx, &CreateGalleryDTO{Alt: "a", Caption: "c"}, testImage())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, g.ID, &UpdateGalleryDTO{}, testImage())
	require.NoError(t, err)
	assert.NotEqual(t, g.Src, updated.Src)
}

func TestDeleteGalleryNotFound(t *testing.T) {
	svc, _ := testService(t)
	err := svc.Delete("missing-id")
	assert.True(t, apperr.Is(err, apperr.NotFound))
}
