package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"sebetamart/internal/domain/model"
	repo "sebetamart/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderUCDeps struct {
	orders    *orderRepoMock
	sellers   *sellerRepoMock
	users     *userRepoMock
	subcities *subcityRepoMock
	products  *productRepoMock
	inventory *inventoryRepoMock
}

func newOrderUC() (*OrderUsecase, orderUCDeps) {
	d := orderUCDeps{
		orders:    new(orderRepoMock),
		sellers:   new(sellerRepoMock),
		users:     new(userRepoMock),
		subcities: new(subcityRepoMock),
		products:  new(productRepoMock),
		inventory: new(inventoryRepoMock),
	}
	tx := &txManagerMock{repos: &txReposMock{orders: d.orders, products: d.products, inventory: d.inventory}}
	return NewOrderUsecase(tx, d.orders, d.sellers, d.users, d.subcities), d
}

var (
	sellerActor = Actor{UserID: 10, Role: model.RoleSeller}
	adminActor  = Actor{UserID: 1, Role: model.RoleAdmin}
	buyerActor  = Actor{UserID: 20, Role: model.RoleBuyer}
)

func paidOrder() model.Order {
	return model.Order{
		ID:            42,
		BuyerID:       buyerActor.UserID,
		SellerID:      3,
		ProductID:     5,
		Quantity:      1,
		PaymentStatus: model.PaymentStatusConfirmed,
		Status:        model.OrderStatusPending,
	}
}

func assignedTo(o model.Order, id int64) model.Order {
	o.DeliveryPersonID = &id
	o.Status = model.OrderStatusAssignedForDelivery
	return o
}

func TestOrderUsecase_AssignDelivery(t *testing.T) {
	courier := &model.User{ID: 7, Role: model.RoleDelivery, IsActive: true}

	tests := []struct {
		name       string
		actor      Actor
		deliveryID int64
		setup      func(d orderUCDeps)
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing delivery person id",
			actor:      sellerActor,
			deliveryID: 0,
			setup:      func(d orderUCDeps) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    MsgDeliveryPersonRequired,
		},
		{
			name:       "order does not exist",
			actor:      adminActor,
			deliveryID: 7,
			setup: func(d orderUCDeps) {
				d.orders.On("FindByID", mock.Anything, int64(42)).Return(model.Order{}, repo.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantMsg:    MsgOrderNotFound,
		},
		{
			name:       "order of another shop",
			actor:      sellerActor,
			deliveryID: 7,
			setup: func(d orderUCDeps) {
				d.orders.On("FindByID", mock.Anything, int64(42)).Return(paidOrder(), nil)
				d.sellers.On("FindByUserID", mock.Anything, sellerActor.UserID).Return(&model.Seller{ID: 99}, nil)
			},
			wantStatus: http.StatusNotFound,
			wantMsg:    MsgOrderNotFound,
		},
		{
			name:       "payment before delivery person lookup",
			actor:      sellerActor,
			deliveryID: 12345,
			setup: func(d orderUCDeps) {
				o := paidOrder()
				o.PaymentStatus = model.PaymentStatusUnpaid
				d.orders.On("FindByID", mock.Anything, int64(42)).Return(o, nil)
				d.sellers.On("FindByUserID", mock.Anything, sellerActor.UserID).Return(&model.Seller{ID: 3}, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    MsgPaymentNotConfirmed,
		},
		{
			name:       "already assigned",
			actor:      sellerActor,
			deliveryID: 8,
			setup: func(d orderUCDeps) {
				d.orders.On("FindByID", mock.Anything, int64(42)).Return(assignedTo(paidOrder(), 7), nil)
				d.sellers.On("FindByUserID", mock.Anything, sellerActor.UserID).Return(&model.Seller{ID: 3}, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    MsgDeliveryAlreadyAssigned,
		},
		{
			name:       "target is not a delivery user",
			actor:      adminActor,
			deliveryID: 20,
			setup: func(d orderUCDeps) {
				d.orders.On("FindByID", mock.Anything, int64(42)).Return(paidOrder(), nil)
				d.users.On("FindByID", mock.Anything, int64(20)).Return(&model.User{ID: 20, Role: model.RoleBuyer}, nil)
			},
			wantStatus: http.StatusNotFound,
			wantMsg:    MsgDeliveryPersonNotFound,
		},
		{
			name:       "target does not exist",
			actor:      adminActor,
			deliveryID: 404,
			setup: func(d orderUCDeps) {
				d.orders.On("FindByID", mock.Anything, int64(42)).Return(paidOrder(), nil)
				d.users.On("FindByID", mock.Anything, int64(404)).Return(nil, repo.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantMsg:    MsgDeliveryPersonNotFound,
		},
		{
			name:       "lost the race to a concurrent assignment",
			actor:      sellerActor,
			deliveryID: 7,
			setup: func(d orderUCDeps) {
				d.orders.On("FindByID", mock.Anything, int64(42)).Return(paidOrder(), nil).Once()
				d.orders.On("FindByID", mock.Anything, int64(42)).Return(assignedTo(paidOrder(), 8), nil).Once()
				d.sellers.On("FindByUserID", mock.Anything, sellerActor.UserID).Return(&model.Seller{ID: 3}, nil)
				d.users.On("FindByID", mock.Anything, int64(7)).Return(courier, nil)
				d.orders.On("AssignDeliveryPerson", mock.Anything, int64(42), int64(7)).Return(false, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    MsgDeliveryAlreadyAssigned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, d := newOrderUC()
			tt.setup(d)

			_, err := uc.AssignDelivery(context.Background(), tt.actor, 42, tt.deliveryID)
			require.Error(t, err)
			status, msg := httpStatus(err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)

			d.orders.AssertExpectations(t)
			d.users.AssertExpectations(t)
		})
	}
}

func TestOrderUsecase_AssignDelivery_Success(t *testing.T) {
	uc, d := newOrderUC()
	courier := &model.User{ID: 7, Role: model.RoleDelivery, IsActive: true}

	d.orders.On("FindByID", mock.Anything, int64(42)).Return(paidOrder(), nil).Once()
	d.orders.On("FindByID", mock.Anything, int64(42)).Return(assignedTo(paidOrder(), 7), nil).Once()
	d.sellers.On("FindByUserID", mock.Anything, sellerActor.UserID).Return(&model.Seller{ID: 3}, nil)
	d.users.On("FindByID", mock.Anything, int64(7)).Return(courier, nil)
	d.orders.On("AssignDeliveryPerson", mock.Anything, int64(42), int64(7)).Return(true, nil)

	o, err := uc.AssignDelivery(context.Background(), sellerActor, 42, 7)
	require.NoError(t, err)
	require.NotNil(t, o.DeliveryPersonID)
	assert.Equal(t, int64(7), *o.DeliveryPersonID)
	assert.Equal(t, model.OrderStatusAssignedForDelivery, o.Status)

	d.orders.AssertExpectations(t)
}

func TestOrderUsecase_AssignDelivery_RepositoryFailureIsInternal(t *testing.T) {
	uc, d := newOrderUC()
	d.orders.On("FindByID", mock.Anything, int64(42)).Return(model.Order{}, errors.New("db down"))

	_, err := uc.AssignDelivery(context.Background(), adminActor, 42, 7)
	require.Error(t, err)
	_, ok := AsHTTPError(err)
	assert.False(t, ok)
}

func TestOrderUsecase_PlaceOrder(t *testing.T) {
	product := model.Product{ID: 5, SellerID: 3, Name: "Teff", Price: 250, Stock: 4, IsActive: true}

	t.Run("reserves stock and prices the order", func(t *testing.T) {
		uc, d := newOrderUC()
		d.products.On("FindByID", mock.Anything, int64(5)).Return(product, nil)
		d.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(5), int64(2)).Return(true, nil)
		d.orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
			return o.TotalPrice == 500 && o.SellerID == 3 && o.BuyerID == buyerActor.UserID &&
				o.PaymentStatus == model.PaymentStatusUnpaid && o.Status == model.OrderStatusPending &&
				o.DeliveryPersonID == nil
		})).Return(model.Order{ID: 1, TotalPrice: 500}, nil)

		o, err := uc.PlaceOrder(context.Background(), buyerActor, PlaceOrderInput{
			ProductID: 5, Quantity: 2, ShippingAddress: "Bole, house 12",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), o.ID)
		require.NotNil(t, o.Product)
		assert.EqualValues(t, 2, o.Product.Stock)
		d.orders.AssertExpectations(t)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		uc, d := newOrderUC()
		d.products.On("FindByID", mock.Anything, int64(5)).Return(product, nil)
		d.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(5), int64(9)).Return(false, nil)

		_, err := uc.PlaceOrder(context.Background(), buyerActor, PlaceOrderInput{
			ProductID: 5, Quantity: 9, ShippingAddress: "Bole",
		})
		status, msg := httpStatus(err)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, MsgInsufficientStock, msg)
		d.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("inactive product", func(t *testing.T) {
		uc, d := newOrderUC()
		inactive := product
		inactive.IsActive = false
		d.products.On("FindByID", mock.Anything, int64(5)).Return(inactive, nil)

		_, err := uc.PlaceOrder(context.Background(), buyerActor, PlaceOrderInput{
			ProductID: 5, Quantity: 1, ShippingAddress: "Bole",
		})
		status, _ := httpStatus(err)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("unknown subcity", func(t *testing.T) {
		uc, d := newOrderUC()
		sub := int64(77)
		d.subcities.On("FindByID", mock.Anything, sub).Return(model.Subcity{}, repo.ErrNotFound)

		_, err := uc.PlaceOrder(context.Background(), buyerActor, PlaceOrderInput{
			ProductID: 5, Quantity: 1, ShippingAddress: "Bole", SubcityID: &sub,
		})
		status, msg := httpStatus(err)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, MsgSubcityNotFound, msg)
	})
}

func TestOrderUsecase_ConfirmPayment(t *testing.T) {
	unpaid := paidOrder()
	unpaid.PaymentStatus = model.PaymentStatusUnpaid

	t.Run("confirms", func(t *testing.T) {
		uc, d := newOrderUC()
		d.orders.On("FindByID", mock.Anything, int64(42)).Return(unpaid, nil).Once()
		d.orders.On("FindByID", mock.Anything, int64(42)).Return(paidOrder(), nil).Once()
		d.orders.On("ConfirmPayment", mock.Anything, int64(42)).Return(true, nil)

		o, err := uc.ConfirmPayment(context.Background(), adminActor, 42)
		require.NoError(t, err)
		assert.Equal(t, model.PaymentStatusConfirmed, o.PaymentStatus)
	})

	t.Run("already confirmed", func(t *testing.T) {
		uc, d := newOrderUC()
		d.orders.On("FindByID", mock.Anything, int64(42)).Return(paidOrder(), nil)

		_, err := uc.ConfirmPayment(context.Background(), adminActor, 42)
		_, msg := httpStatus(err)
		assert.Equal(t, MsgPaymentAlreadyConfirmed, msg)
		d.orders.AssertNotCalled(t, "ConfirmPayment", mock.Anything, mock.Anything)
	})
}

func TestOrderUsecase_MarkDelivered(t *testing.T) {
	courier := Actor{UserID: 7, Role: model.RoleDelivery}

	t.Run("not assigned to caller", func(t *testing.T) {
		uc, d := newOrderUC()
		d.orders.On("FindByID", mock.Anything, int64(42)).Return(assignedTo(paidOrder(), 8), nil)

		_, err := uc.MarkDelivered(context.Background(), courier, 42)
		status, _ := httpStatus(err)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("delivers", func(t *testing.T) {
		uc, d := newOrderUC()
		delivered := assignedTo(paidOrder(), 7)
		delivered.Status = model.OrderStatusDelivered
		d.orders.On("FindByID", mock.Anything, int64(42)).Return(assignedTo(paidOrder(), 7), nil).Once()
		d.orders.On("FindByID", mock.Anything, int64(42)).Return(delivered, nil).Once()
		d.orders.On("MarkDelivered", mock.Anything, int64(42), int64(7)).Return(true, nil)

		o, err := uc.MarkDelivered(context.Background(), courier, 42)
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusDelivered, o.Status)
	})
}

func TestOrderUsecase_Cancel(t *testing.T) {
	unpaid := paidOrder()
	unpaid.PaymentStatus = model.PaymentStatusUnpaid
	unpaid.Quantity = 3

	t.Run("returns stock", func(t *testing.T) {
		uc, d := newOrderUC()
		d.orders.On("FindByID", mock.Anything, int64(42)).Return(unpaid, nil)
		d.orders.On("Cancel", mock.Anything, int64(42), buyerActor.UserID).Return(true, nil)
		d.inventory.On("IncreaseStock", mock.Anything, int64(5), int64(3)).Return(nil)

		o, err := uc.Cancel(context.Background(), buyerActor, 42)
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusCancelled, o.Status)
		d.inventory.AssertExpectations(t)
	})

	t.Run("paid orders stay", func(t *testing.T) {
		uc, d := newOrderUC()
		d.orders.On("FindByID", mock.Anything, int64(42)).Return(paidOrder(), nil)
		d.orders.On("Cancel", mock.Anything, int64(42), buyerActor.UserID).Return(false, nil)

		_, err := uc.Cancel(context.Background(), buyerActor, 42)
		_, msg := httpStatus(err)
		assert.Equal(t, MsgOrderNotCancellable, msg)
		d.inventory.AssertNotCalled(t, "IncreaseStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("someone else's order", func(t *testing.T) {
		uc, d := newOrderUC()
		d.orders.On("FindByID", mock.Anything, int64(42)).Return(unpaid, nil)

		_, err := uc.Cancel(context.Background(), Actor{UserID: 999, Role: model.RoleBuyer}, 42)
		status, _ := httpStatus(err)
		assert.Equal(t, http.StatusNotFound, status)
	})
}
