package order

import (
	"fmt"
	"strings"

	"tamstore-bot/internal/product"
)

type priceFormatter func(int) string

func orderFormText(p *product.Product, fmtPrice priceFormatter) string {
	var b strings.Builder

	b.WriteString("🛒 *FORM PEMESANAN*\n\n")
	fmt.Fprintf(&b, "🛍️ *Produk:* %s\n", p.Name)
	fmt.Fprintf(&b, "💰 *Harga:* %s\n\n", fmtPrice(p.Price))

	if len(p.Variants) > 0 {
		b.WriteString("🎨 *Pilih Varian:*\n\n")
		for i, v := range p.Variants {
			fmt.Fprintf(&b, "%d. %s\n", i+1, v.Name)
			fmt.Fprintf(&b, "   💰 %s\n", fmtPrice(v.Price))
			if v.Stock > 0 {
				fmt.Fprintf(&b, "   📦 ✅ %d unit — *pilih: ketik %d*\n\n", v.Stock, i+1)
			} else {
				b.WriteString("   📦 ❌ Habis\n\n")
			}
		}
	} else {
		b.WriteString("📦 *Stok tersedia*\n\n")
		b.WriteString("✅ Lanjut order: ketik *lanjut*\n\n")
	}

	b.WriteString("📋 Langkah berikutnya: pilih varian, isi jumlah dan data pengiriman, lalu konfirmasi.\n\n")
	b.WriteString("❌ Batal order: ketik *batal*")
	return b.String()
}

func quantityPromptText(s *Session, ceiling int, fmtPrice priceFormatter) string {
	var b strings.Builder

	b.WriteString("📊 *PILIH JUMLAH*\n\n")
	fmt.Fprintf(&b, "🛍️ *Produk:* %s\n", s.Product.Name)
	if s.SelectedVariant != nil {
		fmt.Fprintf(&b, "🎨 *Varian:* %s\n", s.SelectedVariant.Name)
	}
	fmt.Fprintf(&b, "💰 *Harga:* %s\n\n", fmtPrice(s.UnitPrice()))
	fmt.Fprintf(&b, "🔢 Masukkan jumlah yang diinginkan (1-%d unit).\n", ceiling)
	b.WriteString("💡 Contoh: ketik *2* untuk 2 unit\n\n")
	b.WriteString("❌ Batal: ketik *batal*")
	return b.String()
}

func customerInfoPromptText(s *Session, fmtPrice priceFormatter) string {
	var b strings.Builder

	b.WriteString("📝 *DATA PENGIRIMAN*\n\n")
	b.WriteString("📋 *Ringkasan Pesanan:*\n")
	fmt.Fprintf(&b, "🛍️ %s\n", s.Product.Name)
	if s.SelectedVariant != nil {
		fmt.Fprintf(&b, "🎨 Varian: %s\n", s.SelectedVariant.Name)
	}
	fmt.Fprintf(&b, "🔢 Jumlah: %d unit\n", s.Quantity)
	fmt.Fprintf(&b, "💰 Total: %s\n\n", fmtPrice(s.UnitPrice()*s.Quantity))

	b.WriteString("📮 Kirim data pengiriman dengan format:\n\n")
	b.WriteString("Nama: [Nama lengkap]\n")
	b.WriteString("HP: [Nomor WhatsApp]\n")
	b.WriteString("Alamat: [Alamat lengkap]\n")
	b.WriteString("Kota: [Kota]\n")
	b.WriteString("Kodepos: [Kode pos, opsional]\n\n")
	b.WriteString("❌ Batal: ketik *batal*")
	return b.String()
}

func confirmationText(s *Session, shippingFee int, fmtPrice priceFormatter) string {
	subtotal := s.UnitPrice() * s.Quantity
	total := subtotal + shippingFee

	var b strings.Builder
	b.WriteString("✅ *KONFIRMASI PESANAN*\n\n")
	fmt.Fprintf(&b, "🛍️ *Produk:* %s\n", s.Product.Name)
	if s.SelectedVariant != nil {
		fmt.Fprintf(&b, "🎨 *Varian:* %s\n", s.SelectedVariant.Name)
	}
	fmt.Fprintf(&b, "🔢 *Jumlah:* %d unit\n", s.Quantity)
	fmt.Fprintf(&b, "💰 *Harga satuan:* %s\n\n", fmtPrice(s.UnitPrice()))

	b.WriteString("📮 *Data Pengiriman:*\n")
	fmt.Fprintf(&b, "👤 %s\n", s.CustomerInfo.Name)
	fmt.Fprintf(&b, "📱 %s\n", s.CustomerInfo.Phone)
	fmt.Fprintf(&b, "📍 %s\n", s.CustomerInfo.Address)
	fmt.Fprintf(&b, "🏙️ %s", s.CustomerInfo.City)
	if s.CustomerInfo.PostalCode != "" {
		fmt.Fprintf(&b, " %s", s.CustomerInfo.PostalCode)
	}
	b.WriteString("\n\n💰 *Rincian Biaya:*\n")
	fmt.Fprintf(&b, "• Subtotal: %s\n", fmtPrice(subtotal))
	fmt.Fprintf(&b, "• Ongkir: %s\n", fmtPrice(shippingFee))
	fmt.Fprintf(&b, "• *Total: %s*\n\n", fmtPrice(total))

	b.WriteString("✅ Konfirmasi: ketik *ya* atau *konfirm*\n")
	b.WriteString("✏️ Edit data: ketik *edit*\n")
	b.WriteString("❌ Batal: ketik *batal*")
	return b.String()
}

func successText(o *Order) string {
	var b strings.Builder

	b.WriteString("🎉 *PESANAN BERHASIL DIBUAT!*\n\n")
	fmt.Fprintf(&b, "📋 *Order ID:* %s\n\n", o.OrderID)
	b.WriteString("💳 *Langkah selanjutnya:*\n")
	b.WriteString("1. Lakukan pembayaran (info menyusul)\n")
	fmt.Fprintf(&b, "2. Kirim bukti transfer dengan Order ID %s\n", o.OrderID)
	b.WriteString("3. Admin konfirmasi dalam 1x24 jam\n\n")
	b.WriteString("🙏 Terima kasih telah berbelanja!")
	return b.String()
}

func incompleteInfoText(missing []string) string {
	var b strings.Builder
	b.WriteString("❌ Data tidak lengkap. Harap isi:\n")
	for _, f := range missing {
		fmt.Fprintf(&b, "• %s\n", f)
	}
	b.WriteString("\nSilakan kirim ulang data lengkap.")
	return b.String()
}
