package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"

	domainErrors "github.com/jayeshsingh-11/creative-cascade/internal/domain/errors"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/repository"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func expectSchema(mock pgxmockv3.PgxPoolIface) {
	tableStatements := []string{
		"CREATE TABLE IF NOT EXISTS users",
		"CREATE TABLE IF NOT EXISTS products",
		"CREATE TABLE IF NOT EXISTS product_files",
		"CREATE TABLE IF NOT EXISTS product_images",
		"CREATE TABLE IF NOT EXISTS orders",
		"CREATE TABLE IF NOT EXISTS order_products",
		"CREATE TABLE IF NOT EXISTS purchased_products",
		"CREATE TABLE IF NOT EXISTS seller_wallets",
		"CREATE TABLE IF NOT EXISTS invoices",
	}
	for _, stmt := range tableStatements {
		mock.ExpectExec(stmt).WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	}
	indexStatements := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_seller",
		"CREATE INDEX IF NOT EXISTS idx_products_category",
		"CREATE INDEX IF NOT EXISTS idx_orders_buyer",
		"CREATE INDEX IF NOT EXISTS idx_orders_pending",
	}
	for _, stmt := range indexStatements {
		mock.ExpectExec(stmt).WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	}
}

func orderColumns() []string {
	return []string{"id", "buyer_id", "amount", "is_paid", "provider_order_id", "payment_id",
		"admin_commission", "seller_earnings", "created_at"}
}

func TestInitSchema(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	expectSchema(mock)

	if err := storage.initSchema(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnError(errors.New("boom"))
	if err := storage.initSchema(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestStorageClose(t *testing.T) {
	storage := &Storage{}
	storage.Close()

	storage, mock := newMockStorage(t)
	mock.ExpectClose()
	storage.Close()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
	mock.Close()
}

func TestRepositoryFactories(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	if _, ok := storage.Users().(*userRepository); !ok {
		t.Fatalf("unexpected user repo type")
	}
	if _, ok := storage.Products().(*productRepository); !ok {
		t.Fatalf("unexpected product repo type")
	}
	if _, ok := storage.Orders().(*orderRepository); !ok {
		t.Fatalf("unexpected order repo type")
	}
	if _, ok := storage.Wallets().(*walletRepository); !ok {
		t.Fatalf("unexpected wallet repo type")
	}
	if _, ok := storage.Entitlements().(*entitlementRepository); !ok {
		t.Fatalf("unexpected entitlement repo type")
	}
	if _, ok := storage.Invoices().(*invoiceRepository); !ok {
		t.Fatalf("unexpected invoice repo type")
	}
	if _, ok := storage.Reporting().(*reportingRepository); !ok {
		t.Fatalf("unexpected reporting repo type")
	}
	var _ repository.Factory = storage
}

func TestWithinTransaction(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	t.Run("commit", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit()
		if err := storage.WithinTransaction(context.Background(), func(pgx.Tx) error { return nil }); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rollback on callback error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectRollback()
		if err := storage.WithinTransaction(context.Background(), func(pgx.Tx) error { return context.Canceled }); err != context.Canceled {
			t.Fatalf("expected canceled, got %v", err)
		}
	})

	t.Run("commit error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("commit fail"))
		if err := storage.WithinTransaction(context.Background(), func(pgx.Tx) error { return nil }); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("begin error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("begin fail"))
		if err := storage.WithinTransaction(context.Background(), func(pgx.Tx) error { return nil }); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestHealthCheck(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectPing()
	if err := storage.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderCreatePending(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO orders \(buyer_id, amount\) VALUES \(\$1, \$2\) RETURNING id, created_at`).
		WithArgs(int64(7), pgxmockv3.AnyArg()).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))
	mock.ExpectExec(`INSERT INTO order_products \(order_id, product_id\) VALUES \(\$1, \$2\)`).
		WithArgs(int64(1), int64(10)).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO order_products \(order_id, product_id\) VALUES \(\$1, \$2\)`).
		WithArgs(int64(1), int64(11)).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectCommit()

	order, err := storage.Orders().CreatePending(context.Background(), 7, decimal.NewFromInt(51), []int64{10, 11})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != 1 || order.BuyerID != 7 {
		t.Fatalf("unexpected order: %+v", order)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderCreatePendingRollsBackOnLineFailure(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(int64(7), pgxmockv3.AnyArg()).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(1), time.Now()))
	mock.ExpectExec(`INSERT INTO order_products`).
		WithArgs(int64(1), int64(10)).
		WillReturnError(errors.New("constraint"))
	mock.ExpectRollback()

	if _, err := storage.Orders().CreatePending(context.Background(), 7, decimal.NewFromInt(50), []int64{10}); err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderMarkPaidClaim(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	t.Run("first claim wins", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET is_paid=TRUE WHERE id=\$1 AND NOT is_paid`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
		claimed, err := storage.Orders().MarkPaid(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !claimed {
			t.Fatal("expected claim to win")
		}
	})

	t.Run("repeat claim loses", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET is_paid=TRUE WHERE id=\$1 AND NOT is_paid`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
		claimed, err := storage.Orders().MarkPaid(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claimed {
			t.Fatal("expected claim to lose on already paid order")
		}
	})

	t.Run("exec error", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET is_paid=TRUE`).
			WithArgs(int64(1)).
			WillReturnError(errors.New("down"))
		if _, err := storage.Orders().MarkPaid(context.Background(), 1); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestOrderGetByID(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	t.Run("found with nullable payment columns", func(t *testing.T) {
		rows := pgxmockv3.NewRows(orderColumns()).
			AddRow(int64(1), int64(7), decimal.NewFromInt(51), false, nil, nil,
				decimal.NullDecimal{}, decimal.NullDecimal{}, time.Now())
		mock.ExpectQuery(`SELECT id, buyer_id, amount, is_paid`).WithArgs(int64(1)).WillReturnRows(rows)

		order, err := storage.Orders().GetByID(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.IsPaid || order.AdminCommission != nil || order.SellerEarnings != nil {
			t.Fatalf("unexpected order: %+v", order)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, buyer_id, amount, is_paid`).
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)
		if _, err := storage.Orders().GetByID(context.Background(), 99); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestOrderGetForSettlement(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	orderRows := pgxmockv3.NewRows(orderColumns()).
		AddRow(int64(1), int64(7), decimal.NewFromInt(51), false, nil, nil,
			decimal.NullDecimal{}, decimal.NullDecimal{}, time.Now())
	mock.ExpectQuery(`SELECT id, buyer_id, amount, is_paid`).WithArgs(int64(1)).WillReturnRows(orderRows)

	lineRows := pgxmockv3.NewRows([]string{"order_id", "product_id", "name", "category", "price", "seller_id"}).
		AddRow(int64(1), int64(10), "Sample Pack", "audio", decimal.NewFromInt(49), int64(3)).
		AddRow(int64(1), int64(11), "Sticker", "art", decimal.NewFromInt(1), int64(4))
	mock.ExpectQuery(`FROM order_products op`).WithArgs(int64(1)).WillReturnRows(lineRows)

	order, lines, err := storage.Orders().GetForSettlement(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != 1 {
		t.Fatalf("unexpected order: %+v", order)
	}
	if len(lines) != 2 || lines[0].SellerID != 3 || lines[1].Name != "Sticker" {
		t.Fatalf("unexpected lines: %+v", lines)
	}
}

func TestOrderSetPaymentDetails(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec(`UPDATE orders SET payment_id=\$1, admin_commission=\$2, seller_earnings=\$3 WHERE id=\$4`).
		WithArgs("pay_42", pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), int64(1)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))

	err := storage.Orders().SetPaymentDetails(context.Background(), 1, "pay_42",
		decimal.RequireFromString("5.00"), decimal.RequireFromString("45.00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderDeleteStalePending(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	cutoff := time.Now().Add(-time.Hour)
	mock.ExpectExec(`DELETE FROM orders`).
		WithArgs(cutoff, 100).
		WillReturnResult(pgxmockv3.NewResult("DELETE", 3))

	removed, err := storage.Orders().DeleteStalePending(context.Background(), cutoff, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 3 {
		t.Fatalf("expected 3 removed, got %d", removed)
	}
}

func TestWalletCreditUpserts(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO seller_wallets \(seller_id, balance, updated_at\)`).
		WithArgs(int64(3), pgxmockv3.AnyArg()).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))

	if err := storage.Wallets().Credit(context.Background(), 3, decimal.RequireFromString("44.10")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestWalletGet(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	t.Run("found", func(t *testing.T) {
		rows := pgxmockv3.NewRows([]string{"seller_id", "balance", "updated_at"}).
			AddRow(int64(3), decimal.RequireFromString("44.10"), time.Now())
		mock.ExpectQuery(`SELECT seller_id, balance, updated_at FROM seller_wallets`).
			WithArgs(int64(3)).
			WillReturnRows(rows)

		wallet, err := storage.Wallets().Get(context.Background(), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wallet.Balance.String() != "44.1" {
			t.Fatalf("unexpected balance: %s", wallet.Balance)
		}
	})

	t.Run("missing wallet", func(t *testing.T) {
		mock.ExpectQuery(`SELECT seller_id, balance, updated_at FROM seller_wallets`).
			WithArgs(int64(8)).
			WillReturnError(pgx.ErrNoRows)
		if _, err := storage.Wallets().Get(context.Background(), 8); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestEntitlementGrantIsIdempotent(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO purchased_products`).
		WithArgs(int64(7), int64(10)).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	if err := storage.Entitlements().Grant(context.Background(), 7, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Conflict path inserts nothing and still succeeds.
	mock.ExpectExec(`INSERT INTO purchased_products`).
		WithArgs(int64(7), int64(10)).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 0))
	if err := storage.Entitlements().Grant(context.Background(), 7, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEntitlementExists(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	rows := pgxmockv3.NewRows([]string{"exists"}).AddRow(true)
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs(int64(7), int64(10)).WillReturnRows(rows)

	owned, err := storage.Entitlements().Exists(context.Background(), 7, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !owned {
		t.Fatal("expected entitlement to exist")
	}
}

func TestInvoiceCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	inv := &model.Invoice{
		OrderID:         1,
		Number:          "CC-20250601-0042",
		Amount:          decimal.NewFromInt(51),
		Fee:             decimal.NewFromInt(1),
		AdminCommission: decimal.RequireFromString("5.00"),
		SellerEarnings:  decimal.RequireFromString("45.00"),
		PaymentID:       "pay_42",
	}

	t.Run("success", func(t *testing.T) {
		rows := pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(5), time.Now())
		mock.ExpectQuery(`INSERT INTO invoices`).
			WithArgs(inv.OrderID, inv.Number, pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
				pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), inv.PaymentID).
			WillReturnRows(rows)

		created, err := storage.Invoices().Create(context.Background(), inv)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != 5 || created.Number != inv.Number {
			t.Fatalf("unexpected invoice: %+v", created)
		}
	})

	t.Run("duplicate number", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO invoices`).
			WithArgs(inv.OrderID, inv.Number, pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
				pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), inv.PaymentID).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "invoices_number_key"})

		if _, err := storage.Invoices().Create(context.Background(), inv); !errors.Is(err, domainErrors.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})
}

func TestInvoiceGetByOrder(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	t.Run("found", func(t *testing.T) {
		rows := pgxmockv3.NewRows([]string{"id", "order_id", "number", "amount", "fee",
			"admin_commission", "seller_earnings", "payment_id", "created_at"}).
			AddRow(int64(5), int64(1), "CC-20250601-0042", decimal.NewFromInt(51), decimal.NewFromInt(1),
				decimal.RequireFromString("5.00"), decimal.RequireFromString("45.00"), "pay_42", time.Now())
		mock.ExpectQuery(`FROM invoices WHERE order_id`).WithArgs(int64(1)).WillReturnRows(rows)

		inv, err := storage.Invoices().GetByOrder(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Number != "CC-20250601-0042" {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
	})

	t.Run("missing invoice", func(t *testing.T) {
		mock.ExpectQuery(`FROM invoices WHERE order_id`).WithArgs(int64(2)).WillReturnError(pgx.ErrNoRows)
		if _, err := storage.Invoices().GetByOrder(context.Background(), 2); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
