package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LineItemRequest struct {
	Name            string          `json:"name"             validate:"required"`
	Quantity        int             `json:"quantity"         validate:"min=0"`
	UnitPrice       decimal.Decimal `json:"unit_price"       validate:"min=0"`
	DiscountPercent decimal.Decimal `json:"discount_percent" validate:"min=0,max=100"`
}

type CreateInvoiceRequest struct {
	DocumentNumber  string            `json:"document_number"  validate:"required"`
	PartyName       string            `json:"party_name"       validate:"required"`
	PartyAddress    string            `json:"party_address"`
	Date            string            `json:"date"             validate:"required,datetime=2006-01-02"`
	Items           []LineItemRequest `json:"items"            validate:"required,min=1,dive"`
	PreviousBalance decimal.Decimal   `json:"previous_balance" validate:"min=0"`
	PaidAmount      decimal.Decimal   `json:"paid_amount"      validate:"min=0"`
}

type CreateReturnRequest struct {
	DocumentNumber         string            `json:"document_number"          validate:"required"`
	OriginalDocumentNumber string            `json:"original_document_number" validate:"required"`
	PartyName              string            `json:"party_name"               validate:"required"`
	Date                   string            `json:"date"                     validate:"required,datetime=2006-01-02"`
	Items                  []LineItemRequest `json:"items"                    validate:"required,min=1,dive"`
	PreviousBalance        decimal.Decimal   `json:"previous_balance"         validate:"min=0"`
}

type CreateSnapshotRequest struct {
	AsOfDate       string          `json:"as_of_date"       validate:"required,datetime=2006-01-02"`
	BankBalance    decimal.Decimal `json:"bank_balance"     validate:"min=0"`
	CustomersOweUs decimal.Decimal `json:"customers_owe_us" validate:"min=0"`
	WeOweCustomers decimal.Decimal `json:"we_owe_customers" validate:"min=0"`
	SuppliersOweUs decimal.Decimal `json:"suppliers_owe_us" validate:"min=0"`
	WeOweSuppliers decimal.Decimal `json:"we_owe_suppliers" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LineItemResponse struct {
	Position        int             `json:"position"`
	Name            string          `json:"name"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Amount          decimal.Decimal `json:"amount"`
	Discount        decimal.Decimal `json:"discount"`
	Net             decimal.Decimal `json:"net"`
}

type InvoiceResponse struct {
	ID              string             `json:"id"`
	DocumentNumber  string             `json:"document_number"`
	PartyName       string             `json:"party_name"`
	PartyAddress    string             `json:"party_address,omitempty"`
	Date            string             `json:"date"`
	Items           []LineItemResponse `json:"items"`
	PreviousBalance decimal.Decimal    `json:"previous_balance"`
	PaidAmount      decimal.Decimal    `json:"paid_amount"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	TotalDiscount   decimal.Decimal    `json:"total_discount"`
	NetAmount       decimal.Decimal    `json:"net_amount"`
	TotalBalance    decimal.Decimal    `json:"total_balance"`
	NetBalance      decimal.Decimal    `json:"net_balance"`
	CreatedAt       string             `json:"created_at"`
}

type ReturnResponse struct {
	ID                     string             `json:"id"`
	DocumentNumber         string             `json:"document_number"`
	OriginalDocumentNumber string             `json:"original_document_number"`
	PartyName              string             `json:"party_name"`
	Date                   string             `json:"date"`
	Items                  []LineItemResponse `json:"items"`
	PreviousBalance        decimal.Decimal    `json:"previous_balance"`
	ReturnAmount           decimal.Decimal    `json:"return_amount"`
	TotalBalance           decimal.Decimal    `json:"total_balance"`
	CreatedAt              string             `json:"created_at"`
}

type SnapshotResponse struct {
	ID               string          `json:"id"`
	AsOfDate         string          `json:"as_of_date"`
	BankBalance      decimal.Decimal `json:"bank_balance"`
	CustomersOweUs   decimal.Decimal `json:"customers_owe_us"`
	WeOweCustomers   decimal.Decimal `json:"we_owe_customers"`
	SuppliersOweUs   decimal.Decimal `json:"suppliers_owe_us"`
	WeOweSuppliers   decimal.Decimal `json:"we_owe_suppliers"`
	TotalReceivables decimal.Decimal `json:"total_receivables"`
	TotalPayables    decimal.Decimal `json:"total_payables"`
	TotalAssets      decimal.Decimal `json:"total_assets"`
	NetWorth         decimal.Decimal `json:"net_worth"`
	CreatedAt        string          `json:"created_at"`
}

type ListResponse[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
