package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workfair-app/workfair-backend/internal/dtos"
	"github.com/workfair-app/workfair-backend/internal/models"
)

func seedEmployerAccount(t *testing.T, svc *EmployerService, id string) {
	t.Helper()
	require.NoError(t, svc.DB.Create(&models.SignupUser{ID: id, Role: "employer", Name: "Boss"}).Error)
}

func TestUpsertProfileCreatesThenUpdates(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployerService(db)
	seedEmployerAccount(t, svc, "employer-1")

	created, err := svc.UpsertProfile(&dtos.EmployerProfileRequest{
		UserID: "employer-1", BusinessType: "business", CompanyName: "Seoul Mart", Address: "서울시 마포구",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	updated, err := svc.UpsertProfile(&dtos.EmployerProfileRequest{
		UserID: "employer-1", BusinessType: "individual", CompanyName: "Busan Mart", Address: "부산시 해운대구",
	})
	require.NoError(t, err)

	// Same row, replaced fields.
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Busan Mart", updated.CompanyName)

	var count int64
	require.NoError(t, db.Model(&models.EmployerProfile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpsertProfileRejectsNonEmployer(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployerService(db)
	require.NoError(t, db.Create(&models.SignupUser{ID: "signup-1", Role: "job_seeker", Name: "Not A Boss"}).Error)

	_, err := svc.UpsertProfile(&dtos.EmployerProfileRequest{
		UserID: "signup-1", BusinessType: "business", CompanyName: "X", Address: "Y",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpsertProfile(&dtos.EmployerProfileRequest{
		UserID: "nobody", BusinessType: "business", CompanyName: "X", Address: "Y",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateStoreKeepsSingleMain(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployerService(db)
	seedEmployerAccount(t, svc, "employer-1")

	first, err := svc.CreateStore(&dtos.StoreCreateRequest{
		UserID: "employer-1", IsMain: true, StoreName: "First", Address: "A",
	})
	require.NoError(t, err)

	second, err := svc.CreateStore(&dtos.StoreCreateRequest{
		UserID: "employer-1", IsMain: true, StoreName: "Second", Address: "B",
	})
	require.NoError(t, err)

	var mains []models.Store
	require.NoError(t, db.Where("user_id = ? AND is_main = ?", "employer-1", true).Find(&mains).Error)
	require.Len(t, mains, 1)
	assert.Equal(t, second.ID, mains[0].ID)

	var reloaded models.Store
	require.NoError(t, db.First(&reloaded, "id = ?", first.ID).Error)
	assert.False(t, reloaded.IsMain)
}

func TestSetMainStoreIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployerService(db)
	seedEmployerAccount(t, svc, "employer-1")

	a, err := svc.CreateStore(&dtos.StoreCreateRequest{UserID: "employer-1", IsMain: true, StoreName: "A", Address: "A"})
	require.NoError(t, err)
	b, err := svc.CreateStore(&dtos.StoreCreateRequest{UserID: "employer-1", StoreName: "B", Address: "B"})
	require.NoError(t, err)

	_, err = svc.SetMainStore("employer-1", b.ID)
	require.NoError(t, err)
	_, err = svc.SetMainStore("employer-1", b.ID)
	require.NoError(t, err)

	var mains []models.Store
	require.NoError(t, db.Where("user_id = ? AND is_main = ?", "employer-1", true).Find(&mains).Error)
	require.Len(t, mains, 1)
	assert.Equal(t, b.ID, mains[0].ID)

	_, err = svc.SetMainStore("employer-1", a.ID)
	require.NoError(t, err)
	stores, err := svc.ListStores("employer-1")
	require.NoError(t, err)
	require.Len(t, stores, 2)
	// Main store is listed first.
	assert.Equal(t, a.ID, stores[0].ID)
	assert.True(t, stores[0].IsMain)
}

func TestSetMainStoreWrongOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployerService(db)
	seedEmployerAccount(t, svc, "employer-1")

	store, err := svc.CreateStore(&dtos.StoreCreateRequest{UserID: "employer-1", StoreName: "A", Address: "A"})
	require.NoError(t, err)

	_, err = svc.SetMainStore("someone-else", store.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
