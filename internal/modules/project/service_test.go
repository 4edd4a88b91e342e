package project

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/onetree-africa/core/internal/database"
	"github.com/onetree-africa/core/internal/modules/storage/upload"
	"github.com/onetree-africa/core/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var jpegPayload = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func testService(t *testing.T, maxImages int) *Service {
	t.Helper()
	uploads := upload.NewServiceWith(
		upload.NewLocalStorage(t.TempDir()),
		5*1024*1024,
		[]string{"image/jpeg", "image/png", "image/gif", "image/webp"},
	)
	return NewService(testDB(t), uploads, maxImages)
}

func TestCreateProject(t *testing.T) {
	svc := testService(t, 3)

	p, err := svc.Create(&CreateProjectDTO{Name: "Kapkong High School", Trees: 1600})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Kapkong High School", p.Name)
	assert.Equal(t, 1600, p.Trees)
	assert.Empty(t, p.Images)
}

func TestCreateProjectValidation(t *testing.T) {
	svc := testService(t, 3)

	_, err := svc.Create(&CreateProjectDTO{Name: "   ", Trees: 10})
	assert.True(t, apperr.Is(err, apperr.ValidationFailed))

	_, err = svc.Create(&CreateProjectDTO{Name: "Negative", Trees: -1})
	assert.True(t, apperr.Is(err, apperr.ValidationFailed))
}

func TestCreateProjectDuplicateName(t *testing.T) {
	svc := testService(t, 3)

	_, err := svc.Create(&CreateProjectDTO{Name: "Moi Girls High School", Trees: 1200})
	require.NoError(t, err)

	_, err = svc.Create(&CreateProjectDTO{Name: "Moi Girls High School", Trees: 500})
	assert.True(t, apperr.Is(err, apperr.ValidationFailed))
}

func TestUpdateProjectMergesFields(t *testing.T) {
	svc := testService(t, 3)

	p, err := svc.Create(&CreateProjectDTO{Name: "University of Eldoret", Trees: 2000})
	require.NoError(t, err)

	trees := 2100
	updated, err := svc.Update(p.ID, &UpdateProjectDTO{Trees: &trees})
	require.NoError(t, err)
	assert.Equal(t, 2100, updated.Trees)
	assert.Equal(t, "University of Eldoret", updated.Name)
}

func TestUpdateProjectNotFound(t *testing.T) {
	svc := testService(t, 3)

	name := "anything"
	_, err := svc.Update("missing-id", &UpdateProjectDTO{Name: &name})
	assert.True(t, apperr.Is(err, apperr.NotFound))
}

func TestDeleteProjectFreesName(t *testing.T) {
	svc := testService(t, 3)

	p, err := svc.Create(&CreateProjectDTO{Name: "Reused Name", Trees: 10})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(p.ID))

	_, err = svc.Create(&CreateProjectDTO{Name: "Reused Name", Trees: 20})
	assert.NoError(t, err)
}

func TestDeleteProjectNotFound(t *testing.T) {
	svc := testService(t, 3)
	err := svc.Delete("missing-id")
	assert.True(t, apperr.Is(err, apperr.NotFound))
}

func TestAddImageCeiling(t *testing.T) {
	svc := testService(t, 3)
	ctx := context.Background()

	p, err := svc.Create(&CreateProjectDTO{Name: "Kesses Secondary School", Trees: 600})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		p, err = svc.AddImage(ctx, p.ID, jpegPayload, "photo.jpg", "image/jpeg")
		require.NoError(t, err)
	}
	assert.Len(t, p.Images, 3)

	_, err = svc.AddImage(ctx, p.ID, jpegPayload, "photo.jpg", "image/jpeg")
	assert.True(t, apperr.Is(err, apperr.ImageLimitExceeded))

	// The failed attempt must not have changed the stored list.
	got, err := svc.GetByID(p.ID)
	require.NoError(t, err)
	assert.Len(t, got.Images, 3)
}

func TestAddImageRejectedUploadLeavesProjectUntouched(t *testing.T) {
	svc := testService(t, 3)

	p, err := svc.Create(&CreateProjectDTO{Name: "Kitale National Polytechnic", Trees: 700})
	require.NoError(t, err)

	_, err = svc.AddImage(context.Background(), p.ID, []byte("%PDF-1.4"), "doc.pdf", "application/pdf")
	assert.True(t, apperr.Is(err, apperr.UnsupportedFileType))

	got, err := svc.GetByID(p.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Images)
}

func TestRemoveImageAt(t *testing.T) {
	svc := testService(t, 3)
	ctx := context.Background()

	p, err := svc.Create(&CreateProjectDTO{Name: "ACK Ziwa High School", Trees: 500})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		p, err = svc.AddImage(ctx, p.ID, jpegPayload, "photo.jpg", "image/jpeg")
		require.NoError(t, err)
	}
	first, third := p.Images[0], p.Images[2]

	p, err = svc.RemoveImageAt(p.ID, 1)
	require.NoError(t, err)
	require.Len(t, p.Images, 2)
	assert.Equal(t, first, p.Images[0])
	assert.Equal(t, third, p.Images[1])
}

func TestRemoveImageAtOutOfRange(t *testing.T) {
	svc := testService(t, 3)

	p, err := svc.Create(&CreateProjectDTO{Name: "Empty Project", Trees: 0})
	require.NoError(t, err)

	_, err = svc.RemoveImageAt(p.ID, 0)
	assert.True(t, apperr.Is(err, apperr.IndexOutOfRange))

	_, err = svc.RemoveImageAt(p.ID, -1)
	assert.True(t, apperr.Is(err, apperr.IndexOutOfRange))
}

func TestListPublicOrdersByUpdatedAt(t *testing.T) {
	svc := testService(t, 3)

	a, err := svc.Create(&CreateProjectDTO{Name: "First", Trees: 1})
	require.NoError(t, err)
	_, err = svc.Create(&CreateProjectDTO{Name: "Second", Trees: 2})
	require.NoError(t, err)

	// Touching the older project moves it back to the front.
	trees := 5
	_, err = svc.Update(a.ID, &UpdateProjectDTO{Trees: &trees})
	require.NoError(t, err)

	items, err := svc.ListPublic()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, a.ID, items[0].ID)
}
