package imam

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/makkamasjid/masjid-management-backend/internal/auditlog"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite test database")

	require.NoError(t, db.AutoMigrate(&Imam{}, &auditlog.AuditLog{}))
	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	db := setupTestDB(t)
	auditSvc := auditlog.NewService(auditlog.NewRepository(db))
	return NewService(NewRepository(db), auditSvc), db
}

func sampleRequest() *CreateImamRequest {
	salary := 25000.0
	return &CreateImamRequest{
		Name:            "Maulana Yusuf",
		Phone:           "9876501234",
		Qualification:   "Alim Fazil",
		ExperienceYears: 8,
		AppointmentDate: "2024-06-01",
		Salary:          &salary,
	}
}

func TestCreateImam(t *testing.T) {
	svc, _ := newTestService(t)

	i, err := svc.CreateImam(context.Background(), sampleRequest(), "127.0.0.1")
	require.NoError(t, err)

	assert.NotEmpty(t, i.ID)
	assert.True(t, i.IsActive)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), i.AppointmentDate)
}

func TestCreateImamRejectedWhileOneIsActive(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateImam(ctx, sampleRequest(), "127.0.0.1")
	require.NoError(t, err)

	second := sampleRequest()
	second.Name = "Maulana Ibrahim"
	_, err = svc.CreateImam(ctx, second, "127.0.0.1")
	assert.ErrorIs(t, err, ErrActiveImamExist)
}

func TestCreateImamAllowedAfterDeactivation(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateImam(ctx, sampleRequest(), "127.0.0.1")
	require.NoError(t, err)

	require.NoError(t, db.Model(&Imam{}).Where("id = ?", first.ID).
		Update("is_active", false).Error)

	second, err := svc.CreateImam(ctx, sampleRequest(), "127.0.0.1")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateImamBadDateFormat(t *testing.T) {
	svc, _ := newTestService(t)

	req := sampleRequest()
	req.AppointmentDate = "01-06-2024"
	_, err := svc.CreateImam(context.Background(), req, "127.0.0.1")
	assert.ErrorIs(t, err, ErrBadDateFormat)
}

func TestGetActiveImamEmptyRegistry(t *testing.T) {
	svc, _ := newTestService(t)

	i, err := svc.GetActiveImam(context.Background())
	require.NoError(t, err)
	assert.Nil(t, i, "empty registry is a nil result, not an error")
}

func TestGetActiveImamSkipsInactive(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateImam(ctx, sampleRequest(), "127.0.0.1")
	require.NoError(t, err)

	require.NoError(t, db.Model(&Imam{}).Where("id = ?", created.ID).
		Update("is_active", false).Error)

	i, err := svc.GetActiveImam(ctx)
	require.NoError(t, err)
	assert.Nil(t, i)
}

func TestUpdateImamPreservesActiveFlag(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateImam(ctx, sampleRequest(), "127.0.0.1")
	require.NoError(t, err)

	require.NoError(t, db.Model(&Imam{}).Where("id = ?", created.ID).
		Update("is_active", false).Error)

	req := sampleRequest()
	req.Name = "Maulana Ibrahim"
	updated, err := svc.UpdateImam(ctx, created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Maulana Ibrahim", updated.Name)
	assert.False(t, updated.IsActive, "update must not flip the stored active flag")
}

func TestUpdateImamNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateImam(context.Background(), "no-such-id", sampleRequest())
	assert.ErrorIs(t, err, ErrImamNotFound)
}

func TestUpdateImamBadDateFormat(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateImam(ctx, sampleRequest(), "127.0.0.1")
	require.NoError(t, err)

	req := sampleRequest()
	req.AppointmentDate = "June 1, 2024"
	_, err = svc.UpdateImam(ctx, created.ID, req)
	assert.ErrorIs(t, err, ErrBadDateFormat)
}
