package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"sebetamart/internal/domain/model"
	repo "sebetamart/internal/repository"
)

type OrderUsecase struct {
	tx        repo.TransactionManager
	orders    repo.OrderRepository
	sellers   repo.SellerRepository
	users     repo.UserRepository
	subcities repo.SubcityRepository
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	sellers repo.SellerRepository,
	users repo.UserRepository,
	subcities repo.SubcityRepository,
) *OrderUsecase {
	return &OrderUsecase{
		tx:        tx,
		orders:    orders,
		sellers:   sellers,
		users:     users,
		subcities: subcities,
	}
}

type PlaceOrderInput struct {
	ProductID       int64
	Quantity        int64
	ShippingAddress string
	SubcityID       *int64
}

// PlaceOrder reserves stock and creates an unpaid pending order in one transaction.
func (u *OrderUsecase) PlaceOrder(ctx context.Context, actor Actor, in PlaceOrderInput) (model.Order, error) {
	if in.Quantity < 1 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "quantity must be 1 or more.")
	}
	addr := strings.TrimSpace(in.ShippingAddress)
	if addr == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "shipping_address is required.")
	}
	if in.SubcityID != nil {
		if err := ensureSubcity(ctx, u.subcities, *in.SubcityID); err != nil {
			return model.Order{}, err
		}
	}

	var out model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByID(ctx, in.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, MsgProductNotFound)
		}
		if err != nil {
			return internal("find product", err)
		}
		if !p.IsActive {
			return NewHTTPError(http.StatusNotFound, MsgProductNotFound)
		}

		ok, err := r.Inventory().DecreaseStockIfEnough(ctx, p.ID, in.Quantity)
		if err != nil {
			return internal("decrease stock", err)
		}
		if !ok {
			return NewHTTPError(http.StatusBadRequest, MsgInsufficientStock)
		}

		o, err := r.Orders().Create(ctx, model.Order{
			BuyerID:         actor.UserID,
			ProductID:       p.ID,
			SellerID:        p.SellerID,
			Quantity:        in.Quantity,
			TotalPrice:      p.Price * in.Quantity,
			ShippingAddress: addr,
			SubcityID:       in.SubcityID,
			PaymentStatus:   model.PaymentStatusUnpaid,
			Status:          model.OrderStatusPending,
		})
		if err != nil {
			return internal("create order", err)
		}
		p.Stock -= in.Quantity
		o.Product = &p
		out = o
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	return out, nil
}

func (u *OrderUsecase) ListForBuyer(ctx context.Context, actor Actor) ([]model.Order, error) {
	orders, err := u.orders.ListByBuyerID(ctx, actor.UserID)
	if err != nil {
		return nil, internal("list buyer orders", err)
	}
	return orders, nil
}

func (u *OrderUsecase) ListForSeller(ctx context.Context, actor Actor) ([]model.Order, error) {
	seller, err := findSellerOf(ctx, u.sellers, actor)
	if err != nil {
		return nil, err
	}
	orders, err := u.orders.ListBySellerID(ctx, seller.ID)
	if err != nil {
		return nil, internal("list seller orders", err)
	}
	return orders, nil
}

// ListReadyForDelivery returns paid orders still waiting for a delivery person.
func (u *OrderUsecase) ListReadyForDelivery(ctx context.Context, actor Actor) ([]model.Order, error) {
	seller, err := findSellerOf(ctx, u.sellers, actor)
	if err != nil {
		return nil, err
	}
	orders, err := u.orders.ListReadyForDelivery(ctx, seller.ID)
	if err != nil {
		return nil, internal("list ready orders", err)
	}
	return orders, nil
}

func (u *OrderUsecase) ListForDeliveryPerson(ctx context.Context, actor Actor) ([]model.Order, error) {
	orders, err := u.orders.ListByDeliveryPersonID(ctx, actor.UserID)
	if err != nil {
		return nil, internal("list delivery orders", err)
	}
	return orders, nil
}

// ConfirmPayment is the manual unpaid -> payment_confirmed step done by the shop.
func (u *OrderUsecase) ConfirmPayment(ctx context.Context, actor Actor, orderID int64) (model.Order, error) {
	o, err := u.managedOrder(ctx, actor, orderID)
	if err != nil {
		return model.Order{}, err
	}
	if err := confirmPrecondition(o); err != nil {
		return model.Order{}, err
	}

	ok, err := u.orders.ConfirmPayment(ctx, orderID)
	if err != nil {
		return model.Order{}, internal("confirm payment", err)
	}
	if !ok {
		if o, err = u.reload(ctx, orderID); err != nil {
			return model.Order{}, err
		}
		if err := confirmPrecondition(o); err != nil {
			return model.Order{}, err
		}
		return model.Order{}, NewHTTPError(http.StatusBadRequest, MsgPaymentAlreadyConfirmed)
	}
	return u.reload(ctx, orderID)
}

func confirmPrecondition(o model.Order) error {
	if o.PaymentStatus == model.PaymentStatusConfirmed {
		return NewHTTPError(http.StatusBadRequest, MsgPaymentAlreadyConfirmed)
	}
	if o.Status != model.OrderStatusPending {
		return NewHTTPError(http.StatusBadRequest, MsgOrderNotPending)
	}
	return nil
}

// AssignDelivery links a paid, unassigned order to a delivery-role user.
// Checks run in a fixed order and the first failure wins. The write itself
// is conditional, so of two concurrent assignments only one can succeed.
func (u *OrderUsecase) AssignDelivery(ctx context.Context, actor Actor, orderID int64, deliveryPersonID int64) (model.Order, error) {
	if deliveryPersonID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, MsgDeliveryPersonRequired)
	}

	o, err := u.managedOrder(ctx, actor, orderID)
	if err != nil {
		return model.Order{}, err
	}
	if err := assignPrecondition(o); err != nil {
		return model.Order{}, err
	}

	dp, err := u.users.FindByID(ctx, deliveryPersonID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, MsgDeliveryPersonNotFound)
	}
	if err != nil {
		return model.Order{}, internal("find delivery person", err)
	}
	if dp.Role != model.RoleDelivery {
		return model.Order{}, NewHTTPError(http.StatusNotFound, MsgDeliveryPersonNotFound)
	}

	ok, err := u.orders.AssignDeliveryPerson(ctx, orderID, deliveryPersonID)
	if err != nil {
		return model.Order{}, internal("assign delivery person", err)
	}
	if !ok {
		// someone changed the order between our read and the write
		if o, err = u.reload(ctx, orderID); err != nil {
			return model.Order{}, err
		}
		if err := assignPrecondition(o); err != nil {
			return model.Order{}, err
		}
		return model.Order{}, NewHTTPError(http.StatusBadRequest, MsgDeliveryAlreadyAssigned)
	}

	return u.reload(ctx, orderID)
}

func assignPrecondition(o model.Order) error {
	if o.PaymentStatus != model.PaymentStatusConfirmed {
		return NewHTTPError(http.StatusBadRequest, MsgPaymentNotConfirmed)
	}
	if o.DeliveryPersonID != nil {
		return NewHTTPError(http.StatusBadRequest, MsgDeliveryAlreadyAssigned)
	}
	return nil
}

// MarkDelivered closes an order assigned to the calling delivery person.
func (u *OrderUsecase) MarkDelivered(ctx context.Context, actor Actor, orderID int64) (model.Order, error) {
	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, MsgOrderNotFound)
	}
	if err != nil {
		return model.Order{}, internal("find order", err)
	}
	if o.DeliveryPersonID == nil || *o.DeliveryPersonID != actor.UserID {
		return model.Order{}, NewHTTPError(http.StatusNotFound, MsgOrderNotFound)
	}
	if err := deliverPrecondition(o); err != nil {
		return model.Order{}, err
	}

	ok, err := u.orders.MarkDelivered(ctx, orderID, actor.UserID)
	if err != nil {
		return model.Order{}, internal("mark delivered", err)
	}
	if !ok {
		if o, err = u.reload(ctx, orderID); err != nil {
			return model.Order{}, err
		}
		if err := deliverPrecondition(o); err != nil {
			return model.Order{}, err
		}
		return model.Order{}, NewHTTPError(http.StatusBadRequest, MsgOrderAlreadyDelivered)
	}
	return u.reload(ctx, orderID)
}

func deliverPrecondition(o model.Order) error {
	switch o.Status {
	case model.OrderStatusAssignedForDelivery:
		return nil
	case model.OrderStatusDelivered:
		return NewHTTPError(http.StatusBadRequest, MsgOrderAlreadyDelivered)
	default:
		return NewHTTPError(http.StatusBadRequest, MsgOrderNotOutForDelivery)
	}
}

// Cancel lets the buyer drop an order before payment and returns the stock.
func (u *OrderUsecase) Cancel(ctx context.Context, actor Actor, orderID int64) (model.Order, error) {
	var out model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, MsgOrderNotFound)
		}
		if err != nil {
			return internal("find order", err)
		}
		if o.BuyerID != actor.UserID {
			return NewHTTPError(http.StatusNotFound, MsgOrderNotFound)
		}

		ok, err := r.Orders().Cancel(ctx, orderID, actor.UserID)
		if err != nil {
			return internal("cancel order", err)
		}
		if !ok {
			return NewHTTPError(http.StatusBadRequest, MsgOrderNotCancellable)
		}

		if err := r.Inventory().IncreaseStock(ctx, o.ProductID, o.Quantity); err != nil && !errors.Is(err, repo.ErrNotFound) {
			return internal("restore stock", err)
		}

		o.Status = model.OrderStatusCancelled
		out = o
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	return out, nil
}

// managedOrder loads an order the actor may manage: admins see every order,
// sellers only the orders of their own shop. Anything else is "not found".
func (u *OrderUsecase) managedOrder(ctx context.Context, actor Actor, orderID int64) (model.Order, error) {
	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, MsgOrderNotFound)
	}
	if err != nil {
		return model.Order{}, internal("find order", err)
	}
	if actor.IsAdmin() {
		return o, nil
	}

	seller, err := u.sellers.FindByUserID(ctx, actor.UserID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, MsgOrderNotFound)
	}
	if err != nil {
		return model.Order{}, internal("find seller profile", err)
	}
	if o.SellerID != seller.ID {
		return model.Order{}, NewHTTPError(http.StatusNotFound, MsgOrderNotFound)
	}
	return o, nil
}

func (u *OrderUsecase) reload(ctx context.Context, orderID int64) (model.Order, error) {
	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, MsgOrderNotFound)
	}
	if err != nil {
		return model.Order{}, internal("find order", err)
	}
	return o, nil
}
