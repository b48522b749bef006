package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workfair-app/workfair-backend/internal/models"
)

func TestResolveOwnedJobsStorePath(t *testing.T) {
	db := newTestDB(t)
	resolver := NewOwnershipResolver(db)

	require.NoError(t, db.Create(&models.Store{ID: "store-1", UserID: "employer-1"}).Error)
	require.NoError(t, db.Create(&models.Store{ID: "store-2", UserID: "employer-1"}).Error)
	require.NoError(t, db.Create(&models.Job{ID: "job-1", EmployerID: "emp-x", StoreID: strPtr("store-1")}).Error)
	require.NoError(t, db.Create(&models.Job{ID: "job-2", EmployerID: "emp-x", StoreID: strPtr("store-2")}).Error)
	require.NoError(t, db.Create(&models.Job{ID: "job-3", EmployerID: "emp-x", StoreID: strPtr("store-other")}).Error)

	owned, err := resolver.ResolveOwnedJobs("employer-1")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"store-1", "store-2"}, owned.StoreIDs)
	assert.ElementsMatch(t, []string{"job-1", "job-2"}, owned.JobIDs)
	assert.Empty(t, owned.EmployerID)
}

func TestResolveOwnedJobsDirectPath(t *testing.T) {
	db := newTestDB(t)
	resolver := NewOwnershipResolver(db)

	require.NoError(t, db.Create(&models.Job{ID: "job-1", EmployerID: "employer-1"}).Error)
	require.NoError(t, db.Create(&models.Job{ID: "job-2", EmployerID: "someone-else"}).Error)

	owned, err := resolver.ResolveOwnedJobs("employer-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"job-1"}, owned.JobIDs)
}

func TestResolveOwnedJobsProfilePath(t *testing.T) {
	db := newTestDB(t)
	resolver := NewOwnershipResolver(db)

	require.NoError(t, db.Create(&models.EmployerProfile{ID: "profile-1", UserID: "employer-1"}).Error)
	require.NoError(t, db.Create(&models.Employer{ID: "emp-legacy", BusinessNo: "profile-1"}).Error)
	require.NoError(t, db.Create(&models.Job{ID: "job-1", EmployerID: "emp-legacy"}).Error)

	owned, err := resolver.ResolveOwnedJobs("employer-1")
	require.NoError(t, err)

	assert.Equal(t, "emp-legacy", owned.EmployerID)
	assert.Equal(t, []string{"job-1"}, owned.JobIDs)
}

func TestResolveOwnedJobsUnionDeduplicates(t *testing.T) {
	db := newTestDB(t)
	resolver := NewOwnershipResolver(db)

	// One posting reachable through all three paths at once.
	require.NoError(t, db.Create(&models.Store{ID: "store-1", UserID: "employer-1"}).Error)
	require.NoError(t, db.Create(&models.EmployerProfile{ID: "profile-1", UserID: "employer-1"}).Error)
	require.NoError(t, db.Create(&models.Employer{ID: "emp-legacy", BusinessNo: "profile-1"}).Error)
	require.NoError(t, db.Create(&models.Job{ID: "job-store", EmployerID: "emp-legacy", StoreID: strPtr("store-1")}).Error)
	require.NoError(t, db.Create(&models.Job{ID: "job-direct", EmployerID: "employer-1"}).Error)
	require.NoError(t, db.Create(&models.Job{ID: "job-legacy", EmployerID: "emp-legacy"}).Error)

	owned, err := resolver.ResolveOwnedJobs("employer-1")
	require.NoError(t, err)

	assert.Len(t, owned.JobIDs, 3)
	assert.ElementsMatch(t, []string{"job-store", "job-direct", "job-legacy"}, owned.JobIDs)
}

func TestResolveOwnedJobsNothingOwned(t *testing.T) {
	db := newTestDB(t)
	resolver := NewOwnershipResolver(db)

	require.NoError(t, db.Create(&models.Job{ID: "job-1", EmployerID: "someone-else"}).Error)

	owned, err := resolver.ResolveOwnedJobs("employer-1")
	require.NoError(t, err)

	assert.Empty(t, owned.JobIDs)
	assert.Empty(t, owned.StoreIDs)
	assert.Empty(t, owned.EmployerID)
}
