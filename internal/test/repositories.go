package test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/jayeshsingh-11/creative-cascade/internal/domain/errors"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, name, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, Name: name, PasswordHash: passwordHash, Role: role}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Count returns the number of stored users.
func (s *UserRepositoryStub) Count(ctx context.Context) (int64, error) {
	return int64(len(s.ByID)), s.Err
}

// ProductRepositoryStub allows tests to customize catalog behaviour.
type ProductRepositoryStub struct {
	CreateFn    func(context.Context, *model.Product, *model.ProductFile, []model.ProductImage) (*model.Product, error)
	ListByIDsFn func(context.Context, []int64) ([]model.Product, error)
	ListFn      func(context.Context, repository.ProductFilter) ([]model.Product, int64, error)
	FileFn      func(context.Context, int64) (*model.ProductFile, error)

	Products map[int64]*model.Product
	Files    map[int64]*model.ProductFile
	Images   map[int64][]model.ProductImage
	Deleted  []int64
	Approved map[int64]bool
}

// NewProductRepositoryStub constructs the stub with initialized maps.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{
		Products: make(map[int64]*model.Product),
		Files:    make(map[int64]*model.ProductFile),
		Images:   make(map[int64][]model.ProductImage),
		Approved: make(map[int64]bool),
	}
}

// Create stores the product with a synthetic identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, p *model.Product, file *model.ProductFile, images []model.ProductImage) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, p, file, images)
	}
	created := *p
	created.ID = int64(len(s.Products) + 1)
	s.Products[created.ID] = &created
	if file != nil {
		f := *file
		f.ProductID = created.ID
		s.Files[created.ID] = &f
	}
	s.Images[created.ID] = images
	return &created, nil
}

// GetByID fetches a stored product.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if p, ok := s.Products[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByIDs returns stored products matching the identifiers.
func (s *ProductRepositoryStub) ListByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	if s.ListByIDsFn != nil {
		return s.ListByIDsFn(ctx, ids)
	}
	var result []model.Product
	for _, id := range ids {
		if p, ok := s.Products[id]; ok {
			result = append(result, *p)
		}
	}
	return result, nil
}

// List returns all stored products.
func (s *ProductRepositoryStub) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	var result []model.Product
	for _, p := range s.Products {
		result = append(result, *p)
	}
	return result, int64(len(result)), nil
}

// Delete records the deletion.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id, sellerID int64) error {
	p, ok := s.Products[id]
	if !ok || p.SellerID != sellerID {
		return domainErrors.ErrNotFound
	}
	delete(s.Products, id)
	s.Deleted = append(s.Deleted, id)
	return nil
}

// SetApproved records the approval toggle.
func (s *ProductRepositoryStub) SetApproved(ctx context.Context, id int64, approved bool) error {
	if _, ok := s.Products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	s.Products[id].Approved = approved
	s.Approved[id] = approved
	return nil
}

// FileForProduct returns the stored downloadable file.
func (s *ProductRepositoryStub) FileForProduct(ctx context.Context, productID int64) (*model.ProductFile, error) {
	if s.FileFn != nil {
		return s.FileFn(ctx, productID)
	}
	if f, ok := s.Files[productID]; ok {
		return f, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ImagesForProduct returns stored gallery rows.
func (s *ProductRepositoryStub) ImagesForProduct(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	return s.Images[productID], nil
}

// CountBySeller counts stored products for the seller.
func (s *ProductRepositoryStub) CountBySeller(ctx context.Context, sellerID int64) (int64, error) {
	var n int64
	for _, p := range s.Products {
		if p.SellerID == sellerID {
			n++
		}
	}
	return n, nil
}

// Count returns the stored product count.
func (s *ProductRepositoryStub) Count(ctx context.Context) (int64, error) {
	return int64(len(s.Products)), nil
}

// OrderRepositoryStub allows tests to customize order behaviour.
type OrderRepositoryStub struct {
	CreatePendingFn    func(context.Context, int64, decimal.Decimal, []int64) (*model.Order, error)
	GetForSettlementFn func(context.Context, int64) (*model.Order, []model.OrderLine, error)
	MarkPaidFn         func(context.Context, int64) (bool, error)
	SetPaymentFn       func(context.Context, int64, string, decimal.Decimal, decimal.Decimal) error

	Orders          map[int64]*model.Order
	Lines           map[int64][]model.OrderLine
	ProviderIDs     map[int64]string
	PaymentCalls    []PaymentDetailsCall
	MarkPaidCalls   []int64
	ReapedCutoffs   []time.Time
	ReapedBatchSize []int
	ReapCount       int64
	ReapErr         error
}

// PaymentDetailsCall records a SetPaymentDetails invocation.
type PaymentDetailsCall struct {
	OrderID         int64
	PaymentID       string
	AdminCommission decimal.Decimal
	SellerEarnings  decimal.Decimal
}

// NewOrderRepositoryStub constructs the stub with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		Orders:      make(map[int64]*model.Order),
		Lines:       make(map[int64][]model.OrderLine),
		ProviderIDs: make(map[int64]string),
	}
}

// CreatePending stores the order with a synthetic identifier.
func (s *OrderRepositoryStub) CreatePending(ctx context.Context, buyerID int64, amount decimal.Decimal, productIDs []int64) (*model.Order, error) {
	if s.CreatePendingFn != nil {
		return s.CreatePendingFn(ctx, buyerID, amount, productIDs)
	}
	order := &model.Order{ID: int64(len(s.Orders) + 1), BuyerID: buyerID, Amount: amount, CreatedAt: time.Now()}
	s.Orders[order.ID] = order
	for _, pid := range productIDs {
		s.Lines[order.ID] = append(s.Lines[order.ID], model.OrderLine{OrderID: order.ID, ProductID: pid})
	}
	return order, nil
}

// GetByID returns a stored order.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if o, ok := s.Orders[id]; ok {
		return o, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetForSettlement returns the order with its configured lines.
func (s *OrderRepositoryStub) GetForSettlement(ctx context.Context, id int64) (*model.Order, []model.OrderLine, error) {
	if s.GetForSettlementFn != nil {
		return s.GetForSettlementFn(ctx, id)
	}
	o, ok := s.Orders[id]
	if !ok {
		return nil, nil, domainErrors.ErrNotFound
	}
	return o, s.Lines[id], nil
}

// MarkPaid claims the paid transition once per order.
func (s *OrderRepositoryStub) MarkPaid(ctx context.Context, id int64) (bool, error) {
	s.MarkPaidCalls = append(s.MarkPaidCalls, id)
	if s.MarkPaidFn != nil {
		return s.MarkPaidFn(ctx, id)
	}
	o, ok := s.Orders[id]
	if !ok {
		return false, domainErrors.ErrNotFound
	}
	if o.IsPaid {
		return false, nil
	}
	o.IsPaid = true
	return true, nil
}

// SetProviderOrderID records the provider association.
func (s *OrderRepositoryStub) SetProviderOrderID(ctx context.Context, id int64, providerOrderID string) error {
	s.ProviderIDs[id] = providerOrderID
	if o, ok := s.Orders[id]; ok {
		o.ProviderOrderID = &providerOrderID
	}
	return nil
}

// SetPaymentDetails records the settlement write.
func (s *OrderRepositoryStub) SetPaymentDetails(ctx context.Context, id int64, paymentID string, adminCommission, sellerEarnings decimal.Decimal) error {
	if s.SetPaymentFn != nil {
		return s.SetPaymentFn(ctx, id, paymentID, adminCommission, sellerEarnings)
	}
	s.PaymentCalls = append(s.PaymentCalls, PaymentDetailsCall{
		OrderID:         id,
		PaymentID:       paymentID,
		AdminCommission: adminCommission,
		SellerEarnings:  sellerEarnings,
	})
	return nil
}

// ListByBuyer returns stored orders for the buyer.
func (s *OrderRepositoryStub) ListByBuyer(ctx context.Context, buyerID int64) ([]model.Order, error) {
	var result []model.Order
	for _, o := range s.Orders {
		if o.BuyerID == buyerID {
			result = append(result, *o)
		}
	}
	return result, nil
}

// DeleteStalePending records the sweep invocation.
func (s *OrderRepositoryStub) DeleteStalePending(ctx context.Context, olderThan time.Time, limit int) (int64, error) {
	s.ReapedCutoffs = append(s.ReapedCutoffs, olderThan)
	s.ReapedBatchSize = append(s.ReapedBatchSize, limit)
	return s.ReapCount, s.ReapErr
}

// Count returns the stored order count.
func (s *OrderRepositoryStub) Count(ctx context.Context) (int64, error) {
	return int64(len(s.Orders)), nil
}

// CountPaid returns the stored paid order count.
func (s *OrderRepositoryStub) CountPaid(ctx context.Context) (int64, error) {
	var n int64
	for _, o := range s.Orders {
		if o.IsPaid {
			n++
		}
	}
	return n, nil
}

// WalletRepositoryStub accumulates wallet credits in memory.
type WalletRepositoryStub struct {
	mu       sync.Mutex
	CreditFn func(context.Context, int64, decimal.Decimal) error
	Balances map[int64]decimal.Decimal
	Credits  []WalletCredit
	GetErr   error
}

// WalletCredit records one Credit invocation.
type WalletCredit struct {
	SellerID int64
	Amount   decimal.Decimal
}

// NewWalletRepositoryStub constructs the stub with an initialized map.
func NewWalletRepositoryStub() *WalletRepositoryStub {
	return &WalletRepositoryStub{Balances: make(map[int64]decimal.Decimal)}
}

// Credit increments the in-memory balance.
func (s *WalletRepositoryStub) Credit(ctx context.Context, sellerID int64, amount decimal.Decimal) error {
	if s.CreditFn != nil {
		return s.CreditFn(ctx, sellerID, amount)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Balances[sellerID] = s.Balances[sellerID].Add(amount)
	s.Credits = append(s.Credits, WalletCredit{SellerID: sellerID, Amount: amount})
	return nil
}

// Get returns the stored wallet or not found.
func (s *WalletRepositoryStub) Get(ctx context.Context, sellerID int64) (*model.SellerWallet, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	balance, ok := s.Balances[sellerID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &model.SellerWallet{SellerID: sellerID, Balance: balance}, nil
}

// EntitlementRepositoryStub stores grants in memory.
type EntitlementRepositoryStub struct {
	GrantFn func(context.Context, int64, int64) error
	Grants  map[[2]int64]bool
	Order   [][2]int64
}

// NewEntitlementRepositoryStub constructs the stub with an initialized map.
func NewEntitlementRepositoryStub() *EntitlementRepositoryStub {
	return &EntitlementRepositoryStub{Grants: make(map[[2]int64]bool)}
}

// Grant upserts the (buyer, product) pair.
func (s *EntitlementRepositoryStub) Grant(ctx context.Context, buyerID, productID int64) error {
	if s.GrantFn != nil {
		return s.GrantFn(ctx, buyerID, productID)
	}
	key := [2]int64{buyerID, productID}
	if !s.Grants[key] {
		s.Grants[key] = true
		s.Order = append(s.Order, key)
	}
	return nil
}

// Exists reports whether the pair was granted.
func (s *EntitlementRepositoryStub) Exists(ctx context.Context, buyerID, productID int64) (bool, error) {
	return s.Grants[[2]int64{buyerID, productID}], nil
}

// ListByBuyer returns grants for the buyer in insertion order.
func (s *EntitlementRepositoryStub) ListByBuyer(ctx context.Context, buyerID int64) ([]model.Entitlement, error) {
	var result []model.Entitlement
	for i, key := range s.Order {
		if key[0] == buyerID {
			result = append(result, model.Entitlement{ID: int64(i + 1), BuyerID: key[0], ProductID: key[1]})
		}
	}
	return result, nil
}

// InvoiceRepositoryStub stores invoices keyed by order.
type InvoiceRepositoryStub struct {
	CreateFn func(context.Context, *model.Invoice) (*model.Invoice, error)
	ByOrder  map[int64]*model.Invoice
	ByNumber map[string]*model.Invoice
}

// NewInvoiceRepositoryStub constructs the stub with initialized maps.
func NewInvoiceRepositoryStub() *InvoiceRepositoryStub {
	return &InvoiceRepositoryStub{
		ByOrder:  make(map[int64]*model.Invoice),
		ByNumber: make(map[string]*model.Invoice),
	}
}

// Create inserts the invoice, enforcing number uniqueness like the real
// table does.
func (s *InvoiceRepositoryStub) Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, inv)
	}
	if _, exists := s.ByNumber[inv.Number]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	created := *inv
	created.ID = int64(len(s.ByOrder) + 1)
	s.ByOrder[created.OrderID] = &created
	s.ByNumber[created.Number] = &created
	return &created, nil
}

// GetByOrder returns the stored invoice or not found.
func (s *InvoiceRepositoryStub) GetByOrder(ctx context.Context, orderID int64) (*model.Invoice, error) {
	if inv, ok := s.ByOrder[orderID]; ok {
		return inv, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ReportingRepositoryStub returns canned dashboard aggregates.
type ReportingRepositoryStub struct {
	Seller   *model.SellerStats
	Platform *model.PlatformStats
	Err      error
}

// SellerStats returns the configured aggregate.
func (s *ReportingRepositoryStub) SellerStats(ctx context.Context, sellerID int64) (*model.SellerStats, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Seller == nil {
		return &model.SellerStats{}, nil
	}
	return s.Seller, nil
}

// PlatformStats returns the configured aggregate.
func (s *ReportingRepositoryStub) PlatformStats(ctx context.Context) (*model.PlatformStats, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Platform == nil {
		return &model.PlatformStats{}, nil
	}
	return s.Platform, nil
}

// RepositoryFactoryStub aggregates the stub repositories behind the factory
// contract.
type RepositoryFactoryStub struct {
	UsersStub        *UserRepositoryStub
	ProductsStub     *ProductRepositoryStub
	OrdersStub       *OrderRepositoryStub
	WalletsStub      *WalletRepositoryStub
	EntitlementsStub *EntitlementRepositoryStub
	InvoicesStub     *InvoiceRepositoryStub
	ReportingStub    *ReportingRepositoryStub
}

// NewRepositoryFactoryStub constructs a factory with fresh stubs.
func NewRepositoryFactoryStub() *RepositoryFactoryStub {
	return &RepositoryFactoryStub{
		UsersStub:        NewUserRepositoryStub(),
		ProductsStub:     NewProductRepositoryStub(),
		OrdersStub:       NewOrderRepositoryStub(),
		WalletsStub:      NewWalletRepositoryStub(),
		EntitlementsStub: NewEntitlementRepositoryStub(),
		InvoicesStub:     NewInvoiceRepositoryStub(),
		ReportingStub:    &ReportingRepositoryStub{},
	}
}

func (f *RepositoryFactoryStub) Users() repository.UserRepository { return f.UsersStub }

func (f *RepositoryFactoryStub) Products() repository.ProductRepository { return f.ProductsStub }

func (f *RepositoryFactoryStub) Orders() repository.OrderRepository { return f.OrdersStub }

func (f *RepositoryFactoryStub) Wallets() repository.WalletRepository { return f.WalletsStub }

func (f *RepositoryFactoryStub) Entitlements() repository.EntitlementRepository {
	return f.EntitlementsStub
}

func (f *RepositoryFactoryStub) Invoices() repository.InvoiceRepository { return f.InvoicesStub }

func (f *RepositoryFactoryStub) Reporting() repository.ReportingRepository { return f.ReportingStub }
