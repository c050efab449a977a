package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentKind identifies which financial document a record produces.
type DocumentKind string

const (
	KindInvoice      DocumentKind = "Invoice"
	KindReturn       DocumentKind = "Return"
	KindBalanceSheet DocumentKind = "BalanceSheet"
)

// FinancialRecord is the document-level aggregate consumed by the ledger and
// the renderer. Implementations are value types: constructed once from
// externally supplied data and never mutated — a correction is a new record.
type FinancialRecord interface {
	Kind() DocumentKind
	// Number is the identifier printed on the document and embedded in the
	// artifact filename (for a BalanceSnapshot it is the as-of date).
	Number() string
}

// LineItem is one priced row of an invoice or return invoice.
// Position is 1-based and equals the printed line number.
type LineItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DocumentID      uuid.UUID       `gorm:"type:uuid;index;not null" json:"-"`
	DocumentType    string          `gorm:"type:varchar(30);not null" json:"-"`
	Position        int             `gorm:"not null" json:"position"`
	Name            string          `gorm:"not null" json:"name"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"discount_percent"`
}

// Invoice is a sale document. Items order is the presentation order.
type Invoice struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentNumber  string    `gorm:"uniqueIndex;not null"`
	PartyName       string    `gorm:"not null"`
	PartyAddress    string
	Date            time.Time       `gorm:"not null"`
	PreviousBalance decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PaidAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Items           []LineItem      `gorm:"polymorphic:Document"`
	CreatedAt       time.Time
}

func (Invoice) Kind() DocumentKind { return KindInvoice }
func (i Invoice) Number() string   { return i.DocumentNumber }

// ReturnInvoice records merchandise coming back; it reduces what the party owes.
type ReturnInvoice struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentNumber         string          `gorm:"uniqueIndex;not null"`
	OriginalDocumentNumber string          `gorm:"not null"`
	PartyName              string          `gorm:"not null"`
	Date                   time.Time       `gorm:"not null"`
	PreviousBalance        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Items                  []LineItem      `gorm:"polymorphic:Document"`
	CreatedAt              time.Time
}

func (ReturnInvoice) Kind() DocumentKind { return KindReturn }
func (r ReturnInvoice) Number() string   { return r.DocumentNumber }

// BalanceSnapshot is a point-in-time picture of the company's position.
// It has no line items; the balance sheet renders key/value sections instead.
type BalanceSnapshot struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AsOfDate       time.Time       `gorm:"not null"`
	BankBalance    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CustomersOweUs decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	WeOweCustomers decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	SuppliersOweUs decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	WeOweSuppliers decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CreatedAt      time.Time
}

func (BalanceSnapshot) Kind() DocumentKind { return KindBalanceSheet }
func (s BalanceSnapshot) Number() string   { return s.AsOfDate.Format("2006-01-02") }
