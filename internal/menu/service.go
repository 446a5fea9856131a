// Package menu renders the static navigation messages: main menu,
// contact card, operational hours, FAQ, bot info and the order guide.
package menu

import (
	"fmt"
	"strings"
	"time"
)

// Config carries the store identity injected into the menu copy.
type Config struct {
	BotName      string
	StoreName    string
	AdminContact string
	OpenTime     string
	CloseTime    string
	Location     *time.Location
}

type Service struct {
	cfg Config
	now func() time.Time
}

func NewService(cfg Config) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Service{cfg: cfg, now: time.Now}
}

// MainMenu is the welcome message plus the numbered option list.
func (s *Service) MainMenu() string {
	var b strings.Builder
	local := s.now().In(s.cfg.Location)

	fmt.Fprintf(&b, "🤖 *SELAMAT DATANG DI %s*\n\n", strings.ToUpper(s.cfg.BotName))
	fmt.Fprintf(&b, "📅 %s | ⏰ %s WIB\n\n",
		local.Format("02/01/2006"), local.Format("15:04"))

	b.WriteString("Halo! 👋 Saya adalah asisten virtual yang siap membantu Anda 24/7. ")
	b.WriteString("Pilih menu di bawah ini untuk mendapatkan informasi yang Anda butuhkan.\n\n")

	b.WriteString("🎯 *PILIH MENU YANG DIINGINKAN:*\n\n")
	b.WriteString("1️⃣ *Katalog Produk*\n   🛍️ Jelajahi produk terbaru dengan harga terbaik\n\n")
	b.WriteString("2️⃣ *Kontak Admin*\n   📞 Hubungi customer service\n\n")
	b.WriteString("3️⃣ *Jam Operasional*\n   ⏰ Jadwal layanan terkini\n\n")
	b.WriteString("4️⃣ *FAQ*\n   ❓ Jawaban untuk pertanyaan umum\n\n")
	b.WriteString("5️⃣ *Kuis Interaktif*\n   🧠 Main kuis berhadiah\n\n")
	b.WriteString("6️⃣ *Polling*\n   📊 Ikut polling dan survei\n\n")

	b.WriteString("💡 Ketik angka pilihan (contoh: *1*) atau keyword-nya langsung.\n")
	b.WriteString("🛒 Mau belanja? Ketik *produk* untuk lihat katalog!")
	return b.String()
}

// ContactInfo is the admin contact card.
func (s *Service) ContactInfo() string {
	var b strings.Builder

	b.WriteString("📞 *KONTAK ADMIN*\n\n")
	fmt.Fprintf(&b, "📱 *WhatsApp Admin:*\n   %s\n\n", s.cfg.AdminContact)

	b.WriteString("⏰ *Jam Layanan:*\n")
	fmt.Fprintf(&b, "   Senin - Jumat: %s - %s WIB\n", s.cfg.OpenTime, s.cfg.CloseTime)
	b.WriteString("   Sabtu, Minggu: Libur\n\n")

	b.WriteString("🔄 Kembali ke menu utama: ketik *menu*")
	return b.String()
}

// OperationalHours is the schedule message.
func (s *Service) OperationalHours() string {
	var b strings.Builder

	b.WriteString("⏰ *JADWAL OPERASIONAL*\n\n")
	b.WriteString("📅 *Hari Kerja:*\n")
	fmt.Fprintf(&b, "   🔹 Senin - Jumat\n      %s - %s WIB\n\n", s.cfg.OpenTime, s.cfg.CloseTime)
	b.WriteString("   🔹 Sabtu, Minggu & Hari Libur\n      ❌ TUTUP\n\n")

	b.WriteString("⚡ *Respon Time:*\n")
	b.WriteString("   • Jam kerja: 5-15 menit\n")
	b.WriteString("   • Luar jam kerja: 1-3 jam\n")
	b.WriteString("   • Weekend: Hari kerja berikutnya\n\n")

	b.WriteString("📱 *Auto-Reply:* Aktif 24/7 untuk informasi dasar\n\n")
	b.WriteString("🔄 Kembali ke menu utama: ketik *menu*")
	return b.String()
}

// FAQ is the frequently-asked-questions message.
func (s *Service) FAQ() string {
	var b strings.Builder

	b.WriteString("❓ *FREQUENTLY ASKED QUESTIONS*\n\n")
	b.WriteString("*Q1: Bagaimana cara memesan?*\n")
	b.WriteString("A: Ketik *produk*, pilih barang, lalu ketik *order <kode produk>*. Panduan lengkap: ketik *cara order*\n\n")
	b.WriteString("*Q2: Apakah ada garansi?*\n")
	b.WriteString("A: Ya, semua produk bergaransi resmi\n\n")
	b.WriteString("*Q3: Metode pembayaran apa saja?*\n")
	b.WriteString("A: Transfer Bank, E-Wallet, QRIS. Ketik *pembayaran*\n\n")
	b.WriteString("*Q4: Berapa lama pengiriman?*\n")
	b.WriteString("A: 1-3 hari kerja untuk area Jabodetabek\n\n")
	b.WriteString("*Q5: Bagaimana cara komplain?*\n")
	b.WriteString("A: Hubungi admin dengan menyertakan Order ID, foto produk, dan deskripsi masalah\n\n")

	b.WriteString("🔄 Kembali ke menu utama: ketik *menu*\n")
	b.WriteString("💬 Pertanyaan lain? Ketik *kontak*")
	return b.String()
}

// BotInfo describes the bot itself.
func (s *Service) BotInfo() string {
	var b strings.Builder

	b.WriteString("🤖 *INFORMASI BOT*\n\n")
	fmt.Fprintf(&b, "📋 *Nama:* %s\n", s.cfg.BotName)
	b.WriteString("📡 *Status:* 🟢 Online\n\n")

	b.WriteString("⚡ *Fitur Utama:*\n")
	b.WriteString("   🔹 Katalog produk & pencarian\n")
	b.WriteString("   🔹 Order langsung via chat\n")
	b.WriteString("   🔹 Kuis & Polling\n")
	b.WriteString("   🔹 Info pembayaran\n")
	b.WriteString("   🔹 Auto-reply di luar jam kerja\n\n")

	b.WriteString("🔄 Menu utama: ketik *menu*")
	return b.String()
}

// OrderGuide walks through the order flow, sent for "cara order".
func (s *Service) OrderGuide() string {
	var b strings.Builder

	b.WriteString("📖 *CARA ORDER*\n\n")
	b.WriteString("1️⃣ Ketik *produk* untuk melihat katalog\n")
	b.WriteString("2️⃣ Catat kode produk yang diinginkan\n")
	b.WriteString("3️⃣ Ketik *order <kode produk>*\n")
	b.WriteString("   Contoh: *order prod_001*\n")
	b.WriteString("4️⃣ Ikuti langkah-langkahnya:\n")
	b.WriteString("   • Pilih varian\n")
	b.WriteString("   • Tentukan jumlah\n")
	b.WriteString("   • Isi data pengiriman\n")
	b.WriteString("   • Konfirmasi pesanan\n")
	b.WriteString("5️⃣ Lakukan pembayaran sesuai instruksi\n\n")

	b.WriteString("💡 Batalkan kapan saja dengan ketik *batal*\n")
	b.WriteString("⏰ Sesi order berlaku 30 menit\n\n")
	b.WriteString("🛍️ Mulai belanja: ketik *produk*")
	return b.String()
}
