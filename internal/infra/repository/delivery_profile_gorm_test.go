package repository

import (
	"testing"

	"sebetamart/internal/domain/model"
	repo "sebetamart/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryProfileGormRepository_UpsertAndToggle(t *testing.T) {
	gdb := newTestDB(t)
	r := NewDeliveryProfileGormRepository(gdb)
	courier := seedUser(t, gdb, "courier@example.com", model.RoleDelivery)

	_, err := r.FindByUserID(ctx, courier.ID)
	require.ErrorIs(t, err, repo.ErrNotFound)

	p := &model.DeliveryProfile{UserID: courier.ID, VehicleType: "motorbike"}
	require.NoError(t, r.Upsert(ctx, p))
	assert.Equal(t, model.AvailabilityOffline, p.AvailabilityStatus)

	ok, err := r.SetAvailability(ctx, courier.ID, model.AvailabilityOffline, model.AvailabilityOnline)
	require.NoError(t, err)
	assert.True(t, ok)

	// stale "from" must not write
	ok, err = r.SetAvailability(ctx, courier.ID, model.AvailabilityOffline, model.AvailabilityOnline)
	require.NoError(t, err)
	assert.False(t, ok)

	// vehicle update keeps the current availability
	p2 := &model.DeliveryProfile{UserID: courier.ID, VehicleType: "bicycle", PlateNumber: "AA-123"}
	require.NoError(t, r.Upsert(ctx, p2))
	assert.Equal(t, "bicycle", p2.VehicleType)
	assert.Equal(t, model.AvailabilityOnline, p2.AvailabilityStatus)
	assert.Equal(t, p.ID, p2.ID)
}

func TestUserGormRepository_ListDeliveryPersons(t *testing.T) {
	gdb := newTestDB(t)
	users := NewUserGormRepository(gdb)
	profiles := NewDeliveryProfileGormRepository(gdb)

	online := seedUser(t, gdb, "on@example.com", model.RoleDelivery)
	seedUser(t, gdb, "bare@example.com", model.RoleDelivery)
	seedUser(t, gdb, "buyer@example.com", model.RoleBuyer)

	require.NoError(t, profiles.Upsert(ctx, &model.DeliveryProfile{UserID: online.ID, VehicleType: "car"}))
	_, err := profiles.SetAvailability(ctx, online.ID, model.AvailabilityOffline, model.AvailabilityOnline)
	require.NoError(t, err)

	all, err := users.ListDeliveryPersons(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, online.ID, all[0].ID)
	require.NotNil(t, all[0].VehicleType)
	assert.Equal(t, "car", *all[0].VehicleType)
	assert.Nil(t, all[1].AvailabilityStatus)

	onlineOnly, err := users.ListDeliveryPersons(ctx, string(model.AvailabilityOnline))
	require.NoError(t, err)
	require.Len(t, onlineOnly, 1)
	assert.Equal(t, online.ID, onlineOnly[0].ID)
}

func TestUserGormRepository_CreateDuplicateAndTokenVersion(t *testing.T) {
	gdb := newTestDB(t)
	users := NewUserGormRepository(gdb)

	u := &model.User{Name: "Abebe", Email: "abebe@example.com", PasswordHash: "x", Role: model.RoleBuyer, IsActive: true}
	require.NoError(t, users.Create(ctx, u))

	dup := &model.User{Name: "Other", Email: "abebe@example.com", PasswordHash: "x", Role: model.RoleBuyer, IsActive: true}
	assert.ErrorIs(t, users.Create(ctx, dup), repo.ErrConflict)

	require.NoError(t, users.IncrementTokenVersion(ctx, u.ID))
	got, err := users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TokenVersion)

	assert.ErrorIs(t, users.IncrementTokenVersion(ctx, 999), repo.ErrNotFound)
}
