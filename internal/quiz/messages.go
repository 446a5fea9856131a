package quiz

import (
	"fmt"
	"strings"
)

func quizListText(quizzes []Quiz) string {
	var b strings.Builder

	b.WriteString("🧠 *DAFTAR KUIS TERSEDIA*\n\n")
	for i, q := range quizzes {
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, q.Title)
		fmt.Fprintf(&b, "   %s\n", q.Description)
		fmt.Fprintf(&b, "   📝 %d pertanyaan\n\n", len(q.Questions))
	}

	b.WriteString("🎮 *Cara Main:*\n")
	b.WriteString("Ketik: *kuis 1*, *kuis 2*, dst.\n\n")
	b.WriteString("🔄 Menu utama: ketik *menu*")
	return b.String()
}

func pollListText(polls []Poll) string {
	var b strings.Builder

	b.WriteString("📊 *DAFTAR POLLING TERSEDIA*\n\n")
	for i, p := range polls {
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, p.Title)
		fmt.Fprintf(&b, "   %s\n", p.Question)
		fmt.Fprintf(&b, "   🗳️ %d pilihan\n\n", len(p.Options))
	}

	b.WriteString("🗳️ *Cara Ikut:*\n")
	b.WriteString("Ketik: *poll 1*, *poll 2*, dst.\n\n")
	b.WriteString("🔄 Menu utama: ketik *menu*")
	return b.String()
}

func quizIntroText(q *Quiz) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🎯 *%s*\n\n%s\n\n", q.Title, q.Description)
	fmt.Fprintf(&b, "📝 Total Pertanyaan: %d\n", len(q.Questions))
	fmt.Fprintf(&b, "⏱️ Estimasi Waktu: %d menit\n\n", (len(q.Questions)+1)/2)
	b.WriteString("🚀 *Siap memulai?*\nKetik *mulai* untuk memulai kuis!")
	return b.String()
}

func questionText(q *Quiz, index int) string {
	var b strings.Builder
	question := q.Questions[index]

	fmt.Fprintf(&b, "🧠 *PERTANYAAN %d/%d*\n\n", index+1, len(q.Questions))
	fmt.Fprintf(&b, "❓ *%s*\n\n", question.Question)
	for _, opt := range question.Options {
		b.WriteString(opt + "\n")
	}
	b.WriteString("\n💡 Ketik huruf jawaban (A/B/C/D)")
	return b.String()
}

func answerFeedbackText(q Question, answer string, correct bool) string {
	var b strings.Builder

	if correct {
		b.WriteString("✅ *BENAR!*\n\n")
	} else {
		fmt.Fprintf(&b, "❌ *SALAH!*\n\nJawaban yang benar: *%s*\n\n", q.Correct)
	}
	fmt.Fprintf(&b, "💡 *Penjelasan:*\n%s", q.Explanation)
	return b.String()
}

func quizResultText(q *Quiz, score int) string {
	var b strings.Builder
	total := len(q.Questions)
	percentage := score * 100 / total

	b.WriteString("🎉 *KUIS SELESAI!*\n\n")
	b.WriteString("📊 *HASIL ANDA:*\n")
	fmt.Fprintf(&b, "✅ Benar: %d/%d\n", score, total)
	fmt.Fprintf(&b, "📈 Persentase: %d%%\n\n", percentage)

	switch {
	case percentage == 100:
		b.WriteString("🏆 *SEMPURNA!* Anda mendapat skor 100%!\n")
		b.WriteString("🎁 Dapatkan diskon spesial dengan menghubungi admin!\n\n")
	case percentage >= 80:
		b.WriteString("🌟 *EXCELLENT!* Pengetahuan Anda sangat baik!\n\n")
	case percentage >= 60:
		b.WriteString("👍 *GOOD!* Hasil yang cukup baik!\n\n")
	default:
		b.WriteString("💪 *KEEP LEARNING!* Terus belajar dan coba lagi!\n\n")
	}

	b.WriteString("🔄 Coba kuis lain: ketik *kuis*\n")
	b.WriteString("🏠 Menu utama: ketik *menu*")
	return b.String()
}

func pollPromptText(p *Poll) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 *%s*\n\n❓ *%s*\n\n", p.Title, p.Question)
	for i, opt := range p.Options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, opt)
	}
	b.WriteString("\n🗳️ *Cara Vote:*\nKetik nomor pilihan (1, 2, 3, dst.)\n\n")
	b.WriteString("📈 Hasil akan ditampilkan setelah Anda vote!")
	return b.String()
}

func pollResultText(p *Poll, choice string) string {
	var b strings.Builder

	total := 0
	for _, n := range p.Results {
		total += n
	}

	b.WriteString("📊 *HASIL POLLING*\n\n")
	fmt.Fprintf(&b, "🗳️ *%s*\n❓ %s\n\n", p.Title, p.Question)
	fmt.Fprintf(&b, "✅ *Pilihan Anda: %s*\n\n", choice)
	b.WriteString("📈 *STATISTIK VOTING:*\n\n")

	for _, opt := range p.Options {
		votes := p.Results[opt]
		percentage := 0
		if total > 0 {
			percentage = votes * 100 / total
		}
		bar := strings.Repeat("█", percentage/5)
		fmt.Fprintf(&b, "%s\n%s %d%% (%d votes)\n\n", opt, bar, percentage, votes)
	}

	fmt.Fprintf(&b, "👥 Total Partisipan: %d\n", total)
	b.WriteString("🙏 Terima kasih atas partisipasinya!\n\n")
	b.WriteString("🔄 Polling lain: ketik *poll*\n")
	b.WriteString("🏠 Menu utama: ketik *menu*")
	return b.String()
}
