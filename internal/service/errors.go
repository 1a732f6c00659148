package service

import "errors"

// Sentinel errors surfaced to callers. Handlers map them to HTTP status codes;
// anything not in this list is treated as an internal store failure and never
// shown to clients verbatim.
var (
	// Auth
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Not found
	ErrProductNotFound  = errors.New("product not found")
	ErrSaleNotFound     = errors.New("sale not found")
	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrUserNotFound     = errors.New("user not found")

	// Conflicts
	ErrDuplicateBarcode  = errors.New("a product with this barcode already exists")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateSupplier = errors.New("a supplier with this name already exists")
	ErrDuplicateInvoice  = errors.New("invoice number already in use")
	ErrInsufficientStock = errors.New("requested quantity exceeds available stock")
	// ErrStockConflict is the commit-time variant of ErrInsufficientStock:
	// stock changed between cart validation and commit.
	ErrStockConflict       = errors.New("stock changed during checkout, sale aborted")
	ErrInsufficientPayment = errors.New("paid amount does not cover the total")
	// Card and transfer payments carry no change drawer; they must match
	// the total exactly.
	ErrInexactPayment = errors.New("non-cash payments must match the total exactly")
	ErrEmptyCart      = errors.New("cart is empty")

	// Integrity
	ErrProductReferenced = errors.New("product is referenced by existing sale or purchase items")
)
