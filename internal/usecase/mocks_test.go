package usecase

import (
	"context"
	"mime/multipart"

	"sebetamart/internal/domain/model"
	repo "sebetamart/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos
// =====================

type txManagerMock struct {
	repos repo.TxRepos
}

func (m *txManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}

type txReposMock struct {
	orders    repo.OrderRepository
	products  repo.ProductRepository
	inventory repo.InventoryRepository
}

func (r *txReposMock) Orders() repo.OrderRepository        { return r.orders }
func (r *txReposMock) Products() repo.ProductRepository    { return r.products }
func (r *txReposMock) Inventory() repo.InventoryRepository { return r.inventory }

// =====================
// Repository mocks
// =====================

type orderRepoMock struct{ mock.Mock }

func (m *orderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *orderRepoMock) Create(ctx context.Context, order model.Order) (model.Order, error) {
	args := m.Called(ctx, order)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *orderRepoMock) ListByBuyerID(ctx context.Context, buyerID int64) ([]model.Order, error) {
	args := m.Called(ctx, buyerID)
	o, _ := args.Get(0).([]model.Order)
	return o, args.Error(1)
}

func (m *orderRepoMock) ListBySellerID(ctx context.Context, sellerID int64) ([]model.Order, error) {
	args := m.Called(ctx, sellerID)
	o, _ := args.Get(0).([]model.Order)
	return o, args.Error(1)
}

func (m *orderRepoMock) ListReadyForDelivery(ctx context.Context, sellerID int64) ([]model.Order, error) {
	args := m.Called(ctx, sellerID)
	o, _ := args.Get(0).([]model.Order)
	return o, args.Error(1)
}

func (m *orderRepoMock) ListByDeliveryPersonID(ctx context.Context, deliveryPersonID int64) ([]model.Order, error) {
	args := m.Called(ctx, deliveryPersonID)
	o, _ := args.Get(0).([]model.Order)
	return o, args.Error(1)
}

func (m *orderRepoMock) ListAdmin(ctx context.Context, f repo.AdminOrderListFilter) ([]model.Order, int64, error) {
	args := m.Called(ctx, f)
	o, _ := args.Get(0).([]model.Order)
	return o, args.Get(1).(int64), args.Error(2)
}

func (m *orderRepoMock) SellerStats(ctx context.Context, sellerID int64) (repo.SellerOrderStats, error) {
	args := m.Called(ctx, sellerID)
	return args.Get(0).(repo.SellerOrderStats), args.Error(1)
}

func (m *orderRepoMock) ConfirmPayment(ctx context.Context, orderID int64) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *orderRepoMock) AssignDeliveryPerson(ctx context.Context, orderID int64, deliveryPersonID int64) (bool, error) {
	args := m.Called(ctx, orderID, deliveryPersonID)
	return args.Bool(0), args.Error(1)
}

func (m *orderRepoMock) MarkDelivered(ctx context.Context, orderID int64, deliveryPersonID int64) (bool, error) {
	args := m.Called(ctx, orderID, deliveryPersonID)
	return args.Bool(0), args.Error(1)
}

func (m *orderRepoMock) Cancel(ctx context.Context, orderID int64, buyerID int64) (bool, error) {
	args := m.Called(ctx, orderID, buyerID)
	return args.Bool(0), args.Error(1)
}

type userRepoMock struct{ mock.Mock }

func (m *userRepoMock) Create(ctx context.Context, user *model.User) error {
	panic("not used in usecase tests")
}

func (m *userRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *userRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	panic("not used in usecase tests")
}

func (m *userRepoMock) Update(ctx context.Context, user *model.User) error {
	panic("not used in usecase tests")
}

func (m *userRepoMock) IncrementTokenVersion(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *userRepoMock) SetActive(ctx context.Context, userID int64, active bool) error {
	return m.Called(ctx, userID, active).Error(0)
}

func (m *userRepoMock) List(ctx context.Context, f repo.UserListFilter) ([]model.User, error) {
	args := m.Called(ctx, f)
	u, _ := args.Get(0).([]model.User)
	return u, args.Error(1)
}

func (m *userRepoMock) ListDeliveryPersons(ctx context.Context, availability string) ([]repo.DeliveryPerson, error) {
	args := m.Called(ctx, availability)
	p, _ := args.Get(0).([]repo.DeliveryPerson)
	return p, args.Error(1)
}

type sellerRepoMock struct{ mock.Mock }

func (m *sellerRepoMock) Create(ctx context.Context, seller *model.Seller) error {
	return m.Called(ctx, seller).Error(0)
}

func (m *sellerRepoMock) FindByID(ctx context.Context, sellerID int64) (*model.Seller, error) {
	args := m.Called(ctx, sellerID)
	s, _ := args.Get(0).(*model.Seller)
	return s, args.Error(1)
}

func (m *sellerRepoMock) FindByUserID(ctx context.Context, userID int64) (*model.Seller, error) {
	args := m.Called(ctx, userID)
	s, _ := args.Get(0).(*model.Seller)
	return s, args.Error(1)
}

func (m *sellerRepoMock) List(ctx context.Context) ([]model.Seller, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]model.Seller)
	return s, args.Error(1)
}

func (m *sellerRepoMock) SearchByShopName(ctx context.Context, q string, limit int) ([]model.Seller, error) {
	args := m.Called(ctx, q, limit)
	s, _ := args.Get(0).([]model.Seller)
	return s, args.Error(1)
}

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	p, _ := args.Get(0).([]model.Product)
	return p, args.Get(1).(int64), args.Error(2)
}

func (m *productRepoMock) ListBySellerID(ctx context.Context, sellerID int64) ([]model.Product, error) {
	args := m.Called(ctx, sellerID)
	p, _ := args.Get(0).([]model.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) SearchByName(ctx context.Context, q string, limit int) ([]model.Product, error) {
	args := m.Called(ctx, q, limit)
	p, _ := args.Get(0).([]model.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(model.Product)
	return out, args.Error(1)
}

func (m *productRepoMock) Update(ctx context.Context, p model.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *productRepoMock) SoftDelete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type inventoryRepoMock struct{ mock.Mock }

func (m *inventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

func (m *inventoryRepoMock) IncreaseStock(ctx context.Context, productID int64, qty int64) error {
	return m.Called(ctx, productID, qty).Error(0)
}

type deliveryProfileRepoMock struct{ mock.Mock }

func (m *deliveryProfileRepoMock) FindByUserID(ctx context.Context, userID int64) (*model.DeliveryProfile, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*model.DeliveryProfile)
	return p, args.Error(1)
}

func (m *deliveryProfileRepoMock) Upsert(ctx context.Context, profile *model.DeliveryProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *deliveryProfileRepoMock) SetAvailability(ctx context.Context, userID int64, from, to model.AvailabilityStatus) (bool, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Bool(0), args.Error(1)
}

type favoriteRepoMock struct{ mock.Mock }

func (m *favoriteRepoMock) ListByBuyerID(ctx context.Context, buyerID int64) ([]model.Favorite, error) {
	args := m.Called(ctx, buyerID)
	f, _ := args.Get(0).([]model.Favorite)
	return f, args.Error(1)
}

func (m *favoriteRepoMock) Add(ctx context.Context, buyerID, productID int64) (model.Favorite, error) {
	args := m.Called(ctx, buyerID, productID)
	f, _ := args.Get(0).(model.Favorite)
	return f, args.Error(1)
}

func (m *favoriteRepoMock) Remove(ctx context.Context, buyerID, productID int64) error {
	return m.Called(ctx, buyerID, productID).Error(0)
}

type auditLogRepoMock struct{ mock.Mock }

func (m *auditLogRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *auditLogRepoMock) List(ctx context.Context, f repo.AuditLogFilter) ([]model.AuditLog, error) {
	args := m.Called(ctx, f)
	l, _ := args.Get(0).([]model.AuditLog)
	return l, args.Error(1)
}

type subcityRepoMock struct{ mock.Mock }

func (m *subcityRepoMock) List(ctx context.Context) ([]model.Subcity, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]model.Subcity)
	return s, args.Error(1)
}

func (m *subcityRepoMock) FindByID(ctx context.Context, id int64) (model.Subcity, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Subcity)
	return s, args.Error(1)
}

func (m *subcityRepoMock) EnsureSeeded(ctx context.Context, names []string) error {
	return m.Called(ctx, names).Error(0)
}

type imageStoreMock struct{ mock.Mock }

func (m *imageStoreMock) Save(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, fh)
	return args.String(0), args.Error(1)
}

func (m *imageStoreMock) Remove(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

var (
	_ repo.OrderRepository           = (*orderRepoMock)(nil)
	_ repo.UserRepository            = (*userRepoMock)(nil)
	_ repo.SellerRepository          = (*sellerRepoMock)(nil)
	_ repo.ProductRepository         = (*productRepoMock)(nil)
	_ repo.InventoryRepository       = (*inventoryRepoMock)(nil)
	_ repo.DeliveryProfileRepository = (*deliveryProfileRepoMock)(nil)
	_ repo.FavoriteRepository        = (*favoriteRepoMock)(nil)
	_ repo.AuditLogRepository        = (*auditLogRepoMock)(nil)
	_ repo.SubcityRepository         = (*subcityRepoMock)(nil)
	_ repo.ImageStore                = (*imageStoreMock)(nil)
)

// httpStatus unpacks an HTTPError; zero values mean err is not one.
func httpStatus(err error) (int, string) {
	if he, ok := AsHTTPError(err); ok {
		return he.Status, he.Message
	}
	return 0, ""
}
