package menu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	svc := NewService(Config{
		BotName:      "TAM Store Bot",
		StoreName:    "TAM Store",
		AdminContact: "+62 812-3456-7890",
		OpenTime:     "08:00",
		CloseTime:    "17:00",
		Location:     loc,
	})
	svc.now = func() time.Time {
		return time.Date(2026, 8, 31, 3, 30, 0, 0, time.UTC) // 10:30 WIB
	}
	return svc
}

func TestMainMenu(t *testing.T) {
	text := newTestService(t).MainMenu()

	assert.Contains(t, text, "SELAMAT DATANG DI TAM STORE BOT")
	assert.Contains(t, text, "31/08/2026")
	assert.Contains(t, text, "10:30 WIB")
	for _, option := range []string{"Katalog Produk", "Kontak Admin", "Jam Operasional", "FAQ", "Kuis", "Polling"} {
		assert.Contains(t, text, option)
	}
}

func TestContactInfo(t *testing.T) {
	text := newTestService(t).ContactInfo()

	assert.Contains(t, text, "+62 812-3456-7890")
	assert.Contains(t, text, "08:00 - 17:00 WIB")
}

func TestOperationalHours(t *testing.T) {
	text := newTestService(t).OperationalHours()

	assert.Contains(t, text, "JADWAL OPERASIONAL")
	assert.Contains(t, text, "Senin - Jumat")
	assert.Contains(t, text, "08:00 - 17:00 WIB")
}

func TestFAQ(t *testing.T) {
	text := newTestService(t).FAQ()

	assert.Contains(t, text, "cara order")
	assert.Contains(t, text, "pembayaran")
}

func TestBotInfo(t *testing.T) {
	text := newTestService(t).BotInfo()

	assert.Contains(t, text, "TAM Store Bot")
	assert.Contains(t, text, "Online")
}

func TestOrderGuide(t *testing.T) {
	text := newTestService(t).OrderGuide()

	assert.Contains(t, text, "order prod_001")
	assert.Contains(t, text, "batal")
}
