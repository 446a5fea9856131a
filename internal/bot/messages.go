package bot

import (
	"fmt"
	"strings"

	"tamstore-bot/internal/product"
)

const apologyText = "❌ Maaf, terjadi kesalahan. Silakan coba lagi beberapa saat."

func catalogText(result *product.ListResult, fmtPrice func(int) string) string {
	if len(result.Products) == 0 {
		return "😔 Belum ada produk yang tersedia saat ini.\n\n🔄 Menu utama: ketik *menu*"
	}

	var b strings.Builder
	b.WriteString("🛍️ *KATALOG PRODUK*\n\n")

	for _, p := range result.Products {
		if p.Featured {
			fmt.Fprintf(&b, "⭐ *%s*\n", p.Name)
		} else {
			fmt.Fprintf(&b, "📦 *%s*\n", p.Name)
		}
		fmt.Fprintf(&b, "   💰 %s\n", fmtPrice(p.Price))
		if len(p.Variants) > 0 {
			fmt.Fprintf(&b, "   🎨 %d varian\n", len(p.Variants))
		}
		fmt.Fprintf(&b, "   🔍 Detail: ketik *produk %s*\n", p.ID)
		fmt.Fprintf(&b, "   🛒 Order: ketik *order %s*\n\n", p.ID)
	}

	pg := result.Pagination
	fmt.Fprintf(&b, "📄 Halaman %d/%d (%d produk)\n", pg.CurrentPage, pg.TotalPages, pg.TotalProducts)
	if pg.HasNext {
		fmt.Fprintf(&b, "➡️ Halaman berikutnya: ketik *produk %d*\n", pg.CurrentPage+1)
	}
	b.WriteString("\n🔍 Cari produk: ketik *cari <nama>*\n")
	b.WriteString("📂 Kategori: ketik *kategori*\n")
	b.WriteString("📖 Panduan order: ketik *cara order*")
	return b.String()
}

func productDetailText(p *product.Product, fmtPrice func(int) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🛍️ *DETAIL PRODUK*\n\n📦 *%s*\n\n", p.Name)
	fmt.Fprintf(&b, "💰 *Harga: %s*\n\n", fmtPrice(p.Price))
	if p.Description != "" {
		fmt.Fprintf(&b, "📝 *Deskripsi:*\n%s\n\n", p.Description)
	}
	if len(p.Variants) > 0 {
		b.WriteString("🎨 *Varian Tersedia:*\n")
		for i, v := range p.Variants {
			status := "❌ Habis"
			if v.Stock > 0 {
				status = fmt.Sprintf("✅ %d unit", v.Stock)
			}
			fmt.Fprintf(&b, "%d. %s - %s (%s)\n", i+1, v.Name, fmtPrice(v.Price), status)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "🛒 Order: ketik *order %s*\n", p.ID)
	b.WriteString("🔙 Katalog: ketik *produk*")
	return b.String()
}

func categoryListText(cats []product.Category, countFor func(id string) int) string {
	if len(cats) == 0 {
		return "📂 Belum ada kategori produk.\n\n🔙 Katalog: ketik *produk*"
	}

	var b strings.Builder
	b.WriteString("📂 *KATEGORI PRODUK*\n\n")
	for _, c := range cats {
		fmt.Fprintf(&b, "🗂️ *%s*\n", c.Name)
		if c.Description != "" {
			fmt.Fprintf(&b, "   📝 %s\n", c.Description)
		}
		fmt.Fprintf(&b, "   📦 %d produk tersedia\n", countFor(c.ID))
		fmt.Fprintf(&b, "   🔍 Lihat: ketik *kategori %s*\n\n", c.ID)
	}
	b.WriteString("🔙 Kembali ke katalog: ketik *produk*")
	return b.String()
}

func categoryProductsText(c product.Category, result *product.ListResult, fmtPrice func(int) string) string {
	if len(result.Products) == 0 {
		return fmt.Sprintf("📂 Kategori *%s* belum memiliki produk.\n\n"+
			"🔙 Kembali ke kategori: ketik *kategori*", c.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🗂️ *%s*\n\n", strings.ToUpper(c.Name))
	if c.Description != "" {
		fmt.Fprintf(&b, "📝 %s\n\n", c.Description)
	}
	for _, p := range result.Products {
		fmt.Fprintf(&b, "📦 *%s*\n", p.Name)
		fmt.Fprintf(&b, "   💰 %s\n", fmtPrice(p.Price))
		fmt.Fprintf(&b, "   🛒 Order: ketik *order %s*\n\n", p.ID)
	}
	fmt.Fprintf(&b, "📄 %d produk dalam kategori ini\n", result.Pagination.TotalProducts)
	b.WriteString("📂 Kategori lain: ketik *kategori*")
	return b.String()
}

func featuredText(products []product.Product, fmtPrice func(int) string) string {
	if len(products) == 0 {
		return "⭐ Belum ada produk unggulan saat ini.\n\n🔙 Katalog: ketik *produk*"
	}

	var b strings.Builder
	b.WriteString("⭐ *PRODUK UNGGULAN*\n\n")
	for _, p := range products {
		fmt.Fprintf(&b, "⭐ *%s*\n", p.Name)
		fmt.Fprintf(&b, "   💰 %s\n", fmtPrice(p.Price))
		fmt.Fprintf(&b, "   🔍 Detail: ketik *produk %s*\n", p.ID)
		fmt.Fprintf(&b, "   🛒 Order: ketik *order %s*\n\n", p.ID)
	}
	b.WriteString("🔙 Semua produk: ketik *produk*")
	return b.String()
}

func searchResultText(query string, result *product.ListResult, fmtPrice func(int) string) string {
	if len(result.Products) == 0 {
		return fmt.Sprintf("🔍 Tidak ada produk yang cocok dengan *%s*.\n\n"+
			"💡 Coba kata kunci lain atau ketik *produk* untuk lihat semua.", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔍 *HASIL PENCARIAN: %s*\n\n", query)
	for _, p := range result.Products {
		fmt.Fprintf(&b, "📦 *%s*\n", p.Name)
		fmt.Fprintf(&b, "   💰 %s\n", fmtPrice(p.Price))
		fmt.Fprintf(&b, "   🛒 Order: ketik *order %s*\n\n", p.ID)
	}
	fmt.Fprintf(&b, "📄 %d produk ditemukan", result.Pagination.TotalProducts)
	return b.String()
}
