package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Products() ProductRepository
	Orders() OrderRepository
	Wallets() WalletRepository
	Entitlements() EntitlementRepository
	Invoices() InvoiceRepository
	Reporting() ReportingRepository
}
