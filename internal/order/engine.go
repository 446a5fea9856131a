package order

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"tamstore-bot/internal/logger"
	"tamstore-bot/internal/product"
)

// Catalog is the narrow slice of the product service the wizard needs.
type Catalog interface {
	GetProductByID(id string) (*product.Product, error)
	FormatPrice(amount int) string
}

// Recorder receives the finalized order for storage.
type Recorder interface {
	Record(ctx context.Context, o *Order) error
}

// Notifier surfaces payment instructions after an order is finalized.
type Notifier interface {
	NotifyPayment(ctx context.Context, userID string, o *Order)
}

// Scheduler abstracts time.AfterFunc so tests can fire deferred work
// synchronously.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) { time.AfterFunc(d, f) }

// NewScheduler returns the wall-clock Scheduler.
func NewScheduler() Scheduler { return realScheduler{} }

// Config carries the wizard's tunables.
type Config struct {
	MaxQuantity  int           // global per-transaction cap
	ShippingFee  int           // flat fee added at confirmation
	SessionTTL   time.Duration // session expiry
	PaymentDelay time.Duration // delay before the payment-info message
}

func DefaultConfig() Config {
	return Config{
		MaxQuantity:  10,
		ShippingFee:  15000,
		SessionTTL:   30 * time.Minute,
		PaymentDelay: 3 * time.Second,
	}
}

// Engine drives the order wizard. Every method returns the reply text to
// send back to the user; the error identifies which rule rejected the
// input (nil reply text means an internal failure the caller should mask
// with a generic apology).
type Engine struct {
	store    Store
	catalog  Catalog
	recorder Recorder
	notifier Notifier
	sched    Scheduler
	cfg      Config
	now      func() time.Time
}

func NewEngine(store Store, catalog Catalog, recorder Recorder, notifier Notifier, sched Scheduler, cfg Config) *Engine {
	if cfg.MaxQuantity <= 0 {
		cfg.MaxQuantity = DefaultConfig().MaxQuantity
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultConfig().SessionTTL
	}
	return &Engine{
		store:    store,
		catalog:  catalog,
		recorder: recorder,
		notifier: notifier,
		sched:    sched,
		cfg:      cfg,
		now:      time.Now,
	}
}

// HasSession reports whether the user currently owns a session (expired
// or not; expiry is resolved on the next input).
func (e *Engine) HasSession(ctx context.Context, userID string) bool {
	s, err := e.store.Get(ctx, userID)
	return err == nil && s != nil
}

// StartOrder opens a wizard session for productID. A live session blocks
// a new start; the user must cancel or finish first.
func (e *Engine) StartOrder(ctx context.Context, userID, productID string) (string, error) {
	log := logger.FromCtx(ctx).With(zap.String("product_id", productID))

	existing, err := e.store.Get(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if existing != nil {
		if !existing.Expired(e.now(), e.cfg.SessionTTL) {
			return "⚠️ Masih ada pesanan yang sedang berjalan. Selesaikan dulu, atau ketik *batal* untuk membatalkannya.",
				ErrSessionActive
		}
		if err := e.store.Delete(ctx, userID); err != nil {
			return "", fmt.Errorf("drop expired session: %w", err)
		}
	}

	p, err := e.catalog.GetProductByID(productID)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return "❌ Produk tidak ditemukan. Ketik *produk* untuk melihat katalog.", ErrProductNotFound
		}
		return "", fmt.Errorf("load product: %w", err)
	}

	if p.AggregateStock() == 0 {
		return fmt.Sprintf("❌ Maaf, produk *%s* sedang habis stok.\n\n🔙 Lihat produk lain: ketik *produk*", p.Name),
			ErrOutOfStock
	}

	s := &Session{
		UserID:    userID,
		ProductID: productID,
		Product:   *p,
		Step:      StepVariantSelection,
		StartTime: e.now(),
	}
	if err := e.store.Put(ctx, s); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	log.Info("order session started")
	return orderFormText(p, e.catalog.FormatPrice), nil
}

// HandleInput advances the user's session with their next message. The
// expiry check runs before any step handling.
func (e *Engine) HandleInput(ctx context.Context, userID, input string) (string, error) {
	s, err := e.store.Get(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if s == nil {
		return "❌ Tidak ada sesi order aktif. Ketik *produk* untuk mulai berbelanja.", ErrNoActiveSession
	}

	if s.Expired(e.now(), e.cfg.SessionTTL) {
		if err := e.store.Delete(ctx, userID); err != nil {
			return "", fmt.Errorf("drop expired session: %w", err)
		}
		logger.FromCtx(ctx).Info("order session expired", zap.String("product_id", s.ProductID))
		return "⏰ Sesi order telah berakhir. Silakan mulai order baru.", ErrSessionExpired
	}

	switch s.Step {
	case StepVariantSelection:
		return e.handleVariantSelection(ctx, s, input)
	case StepQuantityInput:
		return e.handleQuantityInput(ctx, s, input)
	case StepCustomerInfo:
		return e.handleCustomerInfo(ctx, s, input)
	case StepConfirmation:
		return e.handleConfirmation(ctx, s, input)
	default:
		return "", fmt.Errorf("session in unknown step %q", s.Step)
	}
}

// Cancel ends the user's session from any non-terminal state.
func (e *Engine) Cancel(ctx context.Context, userID string) (string, error) {
	s, err := e.store.Get(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if s == nil {
		return "❌ Tidak ada pesanan aktif untuk dibatalkan.", ErrNoActiveSession
	}
	if err := e.store.Delete(ctx, userID); err != nil {
		return "", fmt.Errorf("delete session: %w", err)
	}
	logger.FromCtx(ctx).Info("order session cancelled", zap.String("product_id", s.ProductID))
	return "❌ Pesanan dibatalkan.\n\n🛍️ Mulai belanja lagi: ketik *produk*", nil
}

func (e *Engine) handleVariantSelection(ctx context.Context, s *Session, input string) (string, error) {
	choice := strings.ToLower(strings.TrimSpace(input))

	if len(s.Product.Variants) == 0 {
		if choice != "lanjut" && choice != "continue" {
			return "❌ Pilihan tidak valid. Ketik *lanjut* untuk melanjutkan order.", ErrInvalidSelection
		}
		s.SelectedVariant = nil
		return e.advanceToQuantity(ctx, s)
	}

	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(s.Product.Variants) {
		return "❌ Pilihan tidak valid. Silakan pilih nomor varian yang tersedia.", ErrInvalidSelection
	}

	v := s.Product.Variants[idx-1]
	if v.Stock <= 0 {
		return "❌ Varian ini sedang habis stok. Silakan pilih varian lain.", ErrVariantOutOfStock
	}

	s.SelectedVariant = &v
	return e.advanceToQuantity(ctx, s)
}

func (e *Engine) advanceToQuantity(ctx context.Context, s *Session) (string, error) {
	s.Step = StepQuantityInput
	if err := e.store.Put(ctx, s); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return quantityPromptText(s, e.quantityCeiling(s), e.catalog.FormatPrice), nil
}

// quantityCeiling is min(variant stock, global cap); the cap itself for
// variantless products.
func (e *Engine) quantityCeiling(s *Session) int {
	ceiling := s.StockCeiling(e.cfg.MaxQuantity)
	if ceiling > e.cfg.MaxQuantity {
		ceiling = e.cfg.MaxQuantity
	}
	return ceiling
}

func (e *Engine) handleQuantityInput(ctx context.Context, s *Session, input string) (string, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || qty < 1 {
		return "❌ Jumlah tidak valid. Masukkan angka minimal 1.", ErrInvalidQuantity
	}
	if qty > e.cfg.MaxQuantity {
		return fmt.Sprintf("❌ Maksimal pembelian %d unit per transaksi. Untuk pembelian dalam jumlah besar, hubungi admin.", e.cfg.MaxQuantity),
			ErrExceedsMaxOrder
	}
	if stock := s.StockCeiling(e.cfg.MaxQuantity); qty > stock {
		return fmt.Sprintf("❌ Jumlah melebihi stok tersedia (%d unit). Silakan kurangi jumlah.", stock),
			ErrExceedsStock
	}

	s.Quantity = qty
	s.Step = StepCustomerInfo
	if err := e.store.Put(ctx, s); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return customerInfoPromptText(s, e.catalog.FormatPrice), nil
}

func (e *Engine) handleCustomerInfo(ctx context.Context, s *Session, input string) (string, error) {
	info, missing := ParseCustomerInfo(input)
	if len(missing) > 0 {
		return incompleteInfoText(missing), &IncompleteInfoError{Missing: missing}
	}

	s.CustomerInfo = info
	s.Step = StepConfirmation
	if err := e.store.Put(ctx, s); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return confirmationText(s, e.cfg.ShippingFee, e.catalog.FormatPrice), nil
}

func (e *Engine) handleConfirmation(ctx context.Context, s *Session, input string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "ya", "konfirm", "confirm":
		return e.finalize(ctx, s)
	case "edit":
		s.Step = StepCustomerInfo
		if err := e.store.Put(ctx, s); err != nil {
			return "", fmt.Errorf("save session: %w", err)
		}
		return customerInfoPromptText(s, e.catalog.FormatPrice), nil
	default:
		return "❌ Pilihan tidak valid. Ketik *ya* untuk konfirmasi, *edit* untuk ubah data, atau *batal* untuk membatalkan.",
			ErrInvalidConfirmation
	}
}

func (e *Engine) finalize(ctx context.Context, s *Session) (string, error) {
	now := e.now()
	subtotal := s.UnitPrice() * s.Quantity

	o := &Order{
		OrderID:      NewOrderID(now),
		UserID:       s.UserID,
		Product:      s.Product,
		Variant:      s.SelectedVariant,
		Quantity:     s.Quantity,
		CustomerInfo: s.CustomerInfo,
		Subtotal:     subtotal,
		ShippingFee:  e.cfg.ShippingFee,
		Total:        subtotal + e.cfg.ShippingFee,
		Status:       StatusPendingPayment,
		CreatedAt:    now,
	}

	if err := e.store.Delete(ctx, s.UserID); err != nil {
		return "", fmt.Errorf("delete session: %w", err)
	}

	log := logger.FromCtx(ctx).With(
		zap.String("order_id", o.OrderID),
		zap.String("product_id", s.ProductID),
		zap.Int("total", o.Total),
	)

	// Recording failures must not undo the conversation; the order is
	// still reported and logged for operator follow-up.
	if err := e.recorder.Record(ctx, o); err != nil {
		log.Error("failed to record order", zap.Error(err))
	}

	// Best-effort deferred payment info; it must not block finalize and
	// may fire after the user moved on.
	userID := s.UserID
	e.sched.AfterFunc(e.cfg.PaymentDelay, func() {
		e.notifier.NotifyPayment(context.Background(), userID, o)
	})

	log.Info("order finalized")
	return successText(o), nil
}
