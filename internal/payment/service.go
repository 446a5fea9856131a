package payment

import (
	"fmt"
	"strings"
)

// Service renders payment messages from the configured method registry.
type Service struct {
	info Info
}

func NewService(info Info) *Service {
	if len(info.Methods) == 0 {
		info.Methods = DefaultMethods()
	}
	if len(info.Notes) == 0 {
		info.Notes = DefaultNotes()
	}
	return &Service{info: info}
}

// Summary is the full payment-information message sent for the
// "pembayaran" keyword.
func (s *Service) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "💳 *%s - INFO PEMBAYARAN*\n\n", s.info.StoreName)
	b.WriteString("⚡ *Metode Tersedia:*\n\n")

	for _, m := range s.info.Methods {
		fmt.Fprintf(&b, "%s *%s*\n", m.Icon(), m.Name)
		fmt.Fprintf(&b, "   📱 %s\n", m.Account)
		fmt.Fprintf(&b, "   👤 a.n. %s\n\n", m.AccountName)
	}

	b.WriteString("📌 *Catatan:*\n")
	for _, note := range s.info.Notes {
		fmt.Fprintf(&b, "• %s\n", note)
	}

	b.WriteString("\n💡 Detail per metode: ketik *bayar <nama metode>*")
	return b.String()
}

// QuickSummary is the compact follow-up sent shortly after Summary.
func (s *Service) QuickSummary() string {
	var b strings.Builder

	b.WriteString("⚡ *QUICK PAYMENT SUMMARY*\n\n")
	fmt.Fprintf(&b, "🏪 *%s*\n\n", s.info.StoreName)

	for _, m := range s.info.Methods {
		fmt.Fprintf(&b, "%s *%s:* %s\n", m.Icon(), m.Name, m.Account)
	}

	b.WriteString("\n📋 *Cara Bayar:*\n")
	b.WriteString("1️⃣ Transfer sesuai nominal\n")
	b.WriteString("2️⃣ Screenshot bukti\n")
	b.WriteString("3️⃣ Kirim ke admin\n")
	b.WriteString("4️⃣ Tunggu konfirmasi\n\n")

	fmt.Fprintf(&b, "⚠️ *Penting:* Semua rekening a.n. %s", s.info.OwnerName)
	return b.String()
}

// MethodDetail renders the per-method instruction message. The name match
// is a case-insensitive substring; ok is false when nothing matches.
func (s *Service) MethodDetail(name string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}

	for _, m := range s.info.Methods {
		if !strings.Contains(strings.ToLower(m.Name), needle) {
			continue
		}
		return s.renderMethod(m), true
	}
	return "", false
}

func (s *Service) renderMethod(m Method) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s *PEMBAYARAN %s*\n\n", m.Icon(), strings.ToUpper(m.Name))
	fmt.Fprintf(&b, "🏦 *Platform:* %s\n", m.Name)
	fmt.Fprintf(&b, "📋 *Jenis:* %s\n", m.Type)
	fmt.Fprintf(&b, "🔢 *Nomor:* %s\n", m.Account)
	fmt.Fprintf(&b, "👤 *Atas Nama:* %s\n\n", m.AccountName)

	steps := InjectVariables(GetInstructions(m.Type), InstructionVars{
		"method":  m.Name,
		"account": m.Account,
		"amount":  "sesuai tagihan",
	})
	b.WriteString("📝 *Cara Bayar:*\n")
	for i, step := range steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	b.WriteString("\n📞 Konfirmasi: ketik *kontak*\n")
	b.WriteString("🔄 Menu utama: ketik *menu*")
	return b.String()
}

// OrderPayment is the delayed payment-instruction message sent after an
// order is finalized.
func (s *Service) OrderPayment(orderID, amount string) string {
	var b strings.Builder

	b.WriteString("💳 *INSTRUKSI PEMBAYARAN*\n\n")
	fmt.Fprintf(&b, "🆔 *Order ID:* %s\n", orderID)
	fmt.Fprintf(&b, "💰 *Total:* %s\n\n", amount)

	b.WriteString("⚡ *Pilih salah satu metode:*\n\n")
	for _, m := range s.info.Methods {
		fmt.Fprintf(&b, "%s *%s:* %s (a.n. %s)\n", m.Icon(), m.Name, m.Account, m.AccountName)
	}

	steps := InjectVariables(GetInstructions(TypeBankTransfer), InstructionVars{
		"account": s.info.Methods[0].Account,
		"amount":  amount,
	})
	b.WriteString("\n📝 *Langkah pembayaran:*\n")
	for i, step := range steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	fmt.Fprintf(&b, "\n📤 Kirim bukti transfer beserta Order ID *%s* ke admin.", orderID)
	return b.String()
}

// ConfirmationTemplate is a copy-and-edit template buyers send back with
// their transfer proof.
func (s *Service) ConfirmationTemplate() string {
	var b strings.Builder

	b.WriteString("📋 *TEMPLATE KONFIRMASI PEMBAYARAN*\n\n")
	b.WriteString("*KONFIRMASI PEMBAYARAN*\n\n")
	b.WriteString("👤 Nama: [Nama Lengkap]\n")
	b.WriteString("📞 No. HP: [Nomor HP]\n")
	b.WriteString("🛒 Pesanan: [Order ID]\n")
	b.WriteString("💰 Nominal: Rp [Jumlah Transfer]\n")
	b.WriteString("🏦 Via: [Metode Pembayaran]\n")
	b.WriteString("📅 Tanggal: [DD/MM/YYYY]\n\n")

	b.WriteString("📎 *Jangan lupa lampirkan:*\n")
	b.WriteString("• Screenshot bukti transfer\n\n")

	b.WriteString("✅ Copy template di atas, edit sesuai data Anda, lalu kirim ke admin.\n")
	b.WriteString("📞 Kontak admin: ketik *kontak*")
	return b.String()
}
