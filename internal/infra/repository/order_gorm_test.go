package repository

import (
	"testing"

	"sebetamart/internal/domain/model"
	repo "sebetamart/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	buyer    model.User
	seller   model.Seller
	product  model.Product
	courierA model.User
	courierB model.User
}

func newOrderFixture(t *testing.T, r *OrderGormRepository) orderFixture {
	t.Helper()
	gdb := r.db
	buyer := seedUser(t, gdb, "buyer@example.com", model.RoleBuyer)
	owner := seedUser(t, gdb, "owner@example.com", model.RoleSeller)
	seller := seedSeller(t, gdb, owner.ID, "Bole Fresh")
	return orderFixture{
		buyer:    buyer,
		seller:   seller,
		product:  seedProduct(t, gdb, seller.ID, "Teff flour", 250, 10),
		courierA: seedUser(t, gdb, "a@example.com", model.RoleDelivery),
		courierB: seedUser(t, gdb, "b@example.com", model.RoleDelivery),
	}
}

func TestOrderGormRepository_AssignDeliveryPerson(t *testing.T) {
	r := NewOrderGormRepository(newTestDB(t))
	f := newOrderFixture(t, r)

	t.Run("unpaid order is not written", func(t *testing.T) {
		o := seedOrder(t, r.db, model.Order{BuyerID: f.buyer.ID, ProductID: f.product.ID, SellerID: f.seller.ID})

		ok, err := r.AssignDeliveryPerson(ctx, o.ID, f.courierA.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := r.FindByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Nil(t, got.DeliveryPersonID)
		assert.Equal(t, model.OrderStatusPending, got.Status)
	})

	t.Run("first assignment wins", func(t *testing.T) {
		o := seedOrder(t, r.db, model.Order{
			BuyerID: f.buyer.ID, ProductID: f.product.ID, SellerID: f.seller.ID,
			PaymentStatus: model.PaymentStatusConfirmed,
		})

		ok, err := r.AssignDeliveryPerson(ctx, o.ID, f.courierA.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = r.AssignDeliveryPerson(ctx, o.ID, f.courierB.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := r.FindByID(ctx, o.ID)
		require.NoError(t, err)
		require.NotNil(t, got.DeliveryPersonID)
		assert.Equal(t, f.courierA.ID, *got.DeliveryPersonID)
		assert.Equal(t, model.OrderStatusAssignedForDelivery, got.Status)
		require.NotNil(t, got.Product)
		assert.Equal(t, "Teff flour", got.Product.Name)
	})
}

func TestOrderGormRepository_ConfirmPayment(t *testing.T) {
	r := NewOrderGormRepository(newTestDB(t))
	f := newOrderFixture(t, r)
	o := seedOrder(t, r.db, model.Order{BuyerID: f.buyer.ID, ProductID: f.product.ID, SellerID: f.seller.ID})

	ok, err := r.ConfirmPayment(ctx, o.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.ConfirmPayment(ctx, o.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := r.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusConfirmed, got.PaymentStatus)
}

func TestOrderGormRepository_MarkDelivered(t *testing.T) {
	r := NewOrderGormRepository(newTestDB(t))
	f := newOrderFixture(t, r)
	courier := f.courierA.ID
	o := seedOrder(t, r.db, model.Order{
		BuyerID: f.buyer.ID, ProductID: f.product.ID, SellerID: f.seller.ID,
		PaymentStatus: model.PaymentStatusConfirmed, Status: model.OrderStatusAssignedForDelivery,
		DeliveryPersonID: &courier,
	})

	ok, err := r.MarkDelivered(ctx, o.ID, f.courierB.ID)
	require.NoError(t, err)
	assert.False(t, ok, "only the assigned courier can deliver")

	ok, err = r.MarkDelivered(ctx, o.ID, courier)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.MarkDelivered(ctx, o.ID, courier)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOrderGormRepository_Cancel(t *testing.T) {
	r := NewOrderGormRepository(newTestDB(t))
	f := newOrderFixture(t, r)

	unpaid := seedOrder(t, r.db, model.Order{BuyerID: f.buyer.ID, ProductID: f.product.ID, SellerID: f.seller.ID})
	paid := seedOrder(t, r.db, model.Order{
		BuyerID: f.buyer.ID, ProductID: f.product.ID, SellerID: f.seller.ID,
		PaymentStatus: model.PaymentStatusConfirmed,
	})

	ok, err := r.Cancel(ctx, unpaid.ID, f.courierA.ID)
	require.NoError(t, err)
	assert.False(t, ok, "other users cannot cancel")

	ok, err = r.Cancel(ctx, paid.ID, f.buyer.ID)
	require.NoError(t, err)
	assert.False(t, ok, "paid orders cannot be cancelled")

	ok, err = r.Cancel(ctx, unpaid.ID, f.buyer.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOrderGormRepository_ListsAndStats(t *testing.T) {
	r := NewOrderGormRepository(newTestDB(t))
	f := newOrderFixture(t, r)
	courier := f.courierA.ID

	seedOrder(t, r.db, model.Order{BuyerID: f.buyer.ID, ProductID: f.product.ID, SellerID: f.seller.ID, TotalPrice: 250})
	ready := seedOrder(t, r.db, model.Order{
		BuyerID: f.buyer.ID, ProductID: f.product.ID, SellerID: f.seller.ID, TotalPrice: 500,
		PaymentStatus: model.PaymentStatusConfirmed,
	})
	seedOrder(t, r.db, model.Order{
		BuyerID: f.buyer.ID, ProductID: f.product.ID, SellerID: f.seller.ID, TotalPrice: 750,
		PaymentStatus: model.PaymentStatusConfirmed, Status: model.OrderStatusAssignedForDelivery,
		DeliveryPersonID: &courier,
	})

	byBuyer, err := r.ListByBuyerID(ctx, f.buyer.ID)
	require.NoError(t, err)
	assert.Len(t, byBuyer, 3)

	readyList, err := r.ListReadyForDelivery(ctx, f.seller.ID)
	require.NoError(t, err)
	require.Len(t, readyList, 1)
	assert.Equal(t, ready.ID, readyList[0].ID)

	byCourier, err := r.ListByDeliveryPersonID(ctx, courier)
	require.NoError(t, err)
	assert.Len(t, byCourier, 1)

	stats, err := r.SellerStats(ctx, f.seller.ID)
	require.NoError(t, err)
	assert.Equal(t, repo.SellerOrderStats{
		OrderCount:            3,
		PendingCount:          2,
		ReadyForDeliveryCount: 1,
		Revenue:               1250,
	}, stats)

	items, total, err := r.ListAdmin(ctx, repo.AdminOrderListFilter{Page: 1, Limit: 2, PaymentStatus: string(model.PaymentStatusConfirmed)})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, items, 2)
}

func TestOrderGormRepository_FindByID_NotFound(t *testing.T) {
	r := NewOrderGormRepository(newTestDB(t))

	_, err := r.FindByID(ctx, 42)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
