// Package payment holds the store's payment method registry and renders
// payment information, per-method instructions and the confirmation
// template sent to buyers.
package payment

// Method types, used to pick the right instruction set and icon.
const (
	TypeBankTransfer = "Bank Transfer"
	TypeEWallet      = "E-Wallet"
	TypeQRCode       = "QR Code"
)

// Method is one way a buyer can pay.
type Method struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Account     string `json:"account"`
	AccountName string `json:"account_name"`
}

// Icon returns the emoji used when listing the method.
func (m Method) Icon() string {
	switch m.Type {
	case TypeBankTransfer:
		return "🏦"
	case TypeEWallet:
		return "📱"
	case TypeQRCode:
		return "📱"
	default:
		return "💰"
	}
}

// Info bundles everything the payment responder needs to render messages.
type Info struct {
	StoreName string
	OwnerName string
	Methods   []Method
	Notes     []string
}

// DefaultMethods is the out-of-the-box registry; deployments override it
// from configuration.
func DefaultMethods() []Method {
	return []Method{
		{Name: "BCA", Type: TypeBankTransfer, Account: "1234567890", AccountName: "PT. CONTOH BISNIS"},
		{Name: "DANA", Type: TypeEWallet, Account: "081234567890", AccountName: "NAMA PENERIMA"},
		{Name: "QRIS", Type: TypeQRCode, Account: "qris-static-code-here", AccountName: "MERCHANT NAME"},
	}
}

func DefaultNotes() []string {
	return []string{
		"Konfirmasi pembayaran dengan mengirim bukti transfer",
		"Pembayaran akan diverifikasi dalam 1x24 jam",
		"Untuk pembayaran di atas Rp 1.000.000 harap konfirmasi terlebih dahulu",
	}
}
