package news

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

var jpegPayload = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

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
	return &upload.Incoming{Payload: jpegPayload, Name: "cover.jpg", ContentType: "image/jpeg"}
}

func TestCreateNews(t *testing.T) {
	svc, _ := testService(t)

	n, err := svc.Create(context.Background(), &CreateNewsDTO{
		Title:   "Involve local communities in conservation",
		Excerpt: "Community-driven conservation across Kenya.",
		Link:    "https://example.org/article",
	}, testImage())
	require.NoError(t, err)
	assert.NotEmpty(t, n.ID)
	assert.NotEmpty(t, n.Image)
	assert.Equal(t, models.DefaultNewsColor, n.Color)
}

func TestCreateNewsKeepsExplicitColor(t *testing.T) {
	svc, _ := testService(t)

	n, err := svc.Create(context.Background(), &CreateNewsDTO{
		Title:   "Colored",
		Excerpt: "e",
		Link:    "https://example.org",
		Color:   "bg-cyan-500",
	}, testImage())
	require.NoError(t, err)
	assert.Equal(t, "bg-cyan-500", n.Color)
}

func TestCreateNewsAllowsDuplicateTitles(t *testing.T) {
	svc, db := testService(t)
	ctx := context.Background()

	// Titles carry no uniqueness rule; two outlets may run the same headline.
	for i := 0; i < 2; i++ {
		_, err := svc.Create(ctx, &CreateNewsDTO{
			Title:   "Same Title",
			Excerpt: "e",
			Link:    "https://example.org",
		}, testImage())
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&models.NewsModel{}).Where("title = ?", "Same Title").Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestCreateNewsWithoutImagePersistsNothing(t *testing.T) {
	svc, db := testService(t)

	_, err := svc.Create(context.Background(), &CreateNewsDTO{
		Title:   "No image",
		Excerpt: "e",
		Link:    "https://example.org",
	}, nil)
	assert.True(t, apperr.Is(err, apperr.ValidationFailed))

	var count int64
	require.NoError(t, db.Model(&models.NewsModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateNewsMissingFields(t *testing.T) {
	svc, _ := testService(t)

	_, err := svc.Create(context.Background(), &CreateNewsDTO{Title: "only title"}, testImage())
	assert.True(t, apperr.Is(err, apperr.ValidationFailed))
}

func TestUpdateNewsPreservesImageWithoutFile(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	n, err := svc.Create(ctx, &CreateNewsDTO{
		Title:   "Original",
		Excerpt: "e",
		Link:    "https://example.org",
	}, testImage())
	require.NoError(t, err)

	title := "Renamed"
	updated, err := svc.Update(ctx, n.ID, &UpdateNewsDTO{Title: &title}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, n.Image, updated.Image)
}

func TestUpdateNewsReplacesImageWithFile(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	n, err := svc.Create(ctx, &CreateNewsDTO{
		Title:   "With image",
		Excerpt: "e",
		Link:    "https://example.org",
	}, testImage())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, n.ID, &UpdateNewsDTO{}, testImage())
	require.NoError(t, err)
	assert.NotEqual(t, n.Image, updated.Image)
}

func TestDeleteNewsNotFound(t *testing.T) {
	svc, _ := testService(t)
	err := svc.Delete("missing-id")
	assert.True(t, apperr.Is(err, apperr.NotFound))
}
