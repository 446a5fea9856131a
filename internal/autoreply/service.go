// Package autoreply sends offline notices outside operational hours, at
// most a configured number of times per contact per day, plus the
// per-chat send throttle.
package autoreply

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"tamstore-bot/internal/logger"
)

// Counter is the daily auto-reply ledger, backed by the user store.
type Counter interface {
	IncrementAutoReply(userID string) error
	AutoReplyCount(userID string) int
}

// Config describes the operational-hours window.
type Config struct {
	Enabled    bool
	OpenTime   string // "08:00"
	CloseTime  string // "17:00"
	Location   *time.Location
	WorkDays   []time.Weekday
	MaxPerUser int
	Messages   []string
}

// Service decides whether an inbound message deserves an offline notice.
type Service struct {
	cfg       Config
	counter   Counter
	openMins  int
	closeMins int
	pick      func(n int) int
}

func NewService(cfg Config, counter Counter) (*Service, error) {
	open, err := parseClock(cfg.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("open time: %w", err)
	}
	closeAt, err := parseClock(cfg.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("close time: %w", err)
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if len(cfg.Messages) == 0 {
		cfg.Messages = DefaultMessages(cfg.OpenTime, cfg.CloseTime)
	}

	return &Service{
		cfg:       cfg,
		counter:   counter,
		openMins:  open,
		closeMins: closeAt,
		pick:      rand.Intn,
	}, nil
}

// WithinOperationalHours reports whether t falls on a work day inside
// the open window, evaluated in the store's timezone.
func (s *Service) WithinOperationalHours(t time.Time) bool {
	local := t.In(s.cfg.Location)

	workDay := false
	for _, d := range s.cfg.WorkDays {
		if local.Weekday() == d {
			workDay = true
			break
		}
	}
	if !workDay {
		return false
	}

	mins := local.Hour()*60 + local.Minute()
	return mins >= s.openMins && mins < s.closeMins
}

// Maybe returns an offline notice for the contact, or ok=false when none
// should be sent: the feature is off, the store is open, or the contact
// already hit today's cap.
func (s *Service) Maybe(ctx context.Context, userID string, now time.Time) (string, bool) {
	if !s.cfg.Enabled || s.WithinOperationalHours(now) {
		return "", false
	}
	if s.counter.AutoReplyCount(userID) >= s.cfg.MaxPerUser {
		return "", false
	}

	if err := s.counter.IncrementAutoReply(userID); err != nil {
		logger.FromCtx(ctx).Warn("increment auto-reply counter", zap.Error(err))
	}
	logger.FromCtx(ctx).Info("auto-reply sent")

	return s.cfg.Messages[s.pick(len(s.cfg.Messages))], true
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(v string) (int, error) {
	h, m, ok := strings.Cut(v, ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock %q", v)
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid clock %q", v)
	}
	mins, err := strconv.Atoi(m)
	if err != nil || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("invalid clock %q", v)
	}
	return hours*60 + mins, nil
}

// DefaultMessages is the rotating set of offline notices.
func DefaultMessages(openTime, closeTime string) []string {
	hours := fmt.Sprintf("Senin - Jumat: %s - %s WIB", openTime, closeTime)

	return []string{
		"🤖 *Halo! Terima kasih telah menghubungi kami.*\n\n" +
			"Saat ini admin sedang tidak tersedia atau di luar jam operasional. " +
			"Tim kami akan merespons pesan Anda dalam waktu 1-3 jam kerja.\n\n" +
			"📋 *Sementara menunggu, Anda bisa:*\n" +
			"• Cek menu utama dengan mengetik *menu*\n" +
			"• Lihat info produk dengan mengetik *produk*\n\n" +
			"⏰ *Jam Operasional:*\n" + hours + "\n\n" +
			"Terima kasih atas kesabaran Anda! 🙏",

		"👋 *Selamat datang di layanan WhatsApp kami!*\n\n" +
			"Mohon maaf, admin sedang tidak online saat ini. Pesan Anda akan " +
			"dibalas dalam waktu maksimal 3 jam kerja.\n\n" +
			"🔍 *Tips cepat mendapat jawaban:*\n" +
			"• Ketik *menu* untuk melihat layanan kami\n" +
			"• Cek bagian FAQ untuk solusi instan\n\n" +
			"Kami akan segera membantu Anda! ✨",

		"💬 *Halo! Kami telah menerima pesan Anda.*\n\n" +
			"Admin kami sedang sibuk atau berada di luar jam kerja. Estimasi " +
			"waktu respon adalah 1-2 jam pada hari kerja.\n\n" +
			"📚 *Sambil menunggu, yuk explore:*\n" +
			"• Ketik *menu* untuk navigasi lengkap\n" +
			"• Lihat katalog dengan mengetik *produk*\n\n" +
			"🕐 *Jam Layanan:*\n" + hours + "\n\n" +
			"Terima kasih sudah memilih layanan kami! 🌟",
	}
}
