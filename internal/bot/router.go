package bot

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	"go.uber.org/zap"

	"tamstore-bot/internal/autoreply"
	"tamstore-bot/internal/logger"
	"tamstore-bot/internal/menu"
	"tamstore-bot/internal/order"
	"tamstore-bot/internal/payment"
	"tamstore-bot/internal/product"
	"tamstore-bot/internal/quiz"
	"tamstore-bot/internal/user"
)

// quickSummaryDelay is how long after the payment info the compact
// summary follows.
const quickSummaryDelay = 2 * time.Second

// handleTimeout bounds the processing of one inbound message.
const handleTimeout = 15 * time.Second

// featuredLimit caps the "produk unggulan" listing.
const featuredLimit = 5

// Deps bundles every service the router dispatches to.
type Deps struct {
	Sink     Sink
	Products product.Service
	Engine   *order.Engine
	Quizzes  *quiz.Service
	Payments *payment.Service
	Menus    *menu.Service
	Replies  *autoreply.Service
	Users    user.Repository
	Limiter  *autoreply.Limiter
	Sched    order.Scheduler
}

// Router turns inbound WhatsApp text into replies. Messages from the
// same contact are handled strictly in order; different contacts run
// concurrently.
type Router struct {
	deps Deps

	mu    sync.Mutex
	locks map[string]*userLock

	now func() time.Time
}

// userLock is one contact's handling lock plus the number of in-flight
// messages waiting on it.
type userLock struct {
	mu   sync.Mutex
	refs int
}

func NewRouter(deps Deps) *Router {
	return &Router{
		deps:  deps,
		locks: make(map[string]*userLock),
		now:   time.Now,
	}
}

// HandleEvent is registered with whatsmeow's AddEventHandler.
func (r *Router) HandleEvent(evt interface{}) {
	switch v := evt.(type) {
	case *events.Message:
		r.handleMessageEvent(v)
	case *events.Connected:
		logger.L().Info("connected to whatsapp")
	case *events.Disconnected:
		logger.L().Warn("disconnected from whatsapp")
	case *events.LoggedOut:
		logger.L().Error("logged out from whatsapp, rescan required")
	}
}

func (r *Router) handleMessageEvent(v *events.Message) {
	if v.Info.IsFromMe || v.Info.IsGroup {
		return
	}

	text := v.Message.GetConversation()
	if text == "" && v.Message.ExtendedTextMessage != nil {
		text = v.Message.ExtendedTextMessage.GetText()
	}
	if text == "" {
		return
	}

	sender := types.NewJID(v.Info.Sender.User, v.Info.Sender.Server)

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()
	ctx = logger.WithMessage(ctx, uuid.NewString(), sender.String())

	r.Handle(ctx, sender, text)
}

// Handle processes one inbound text from sender.
func (r *Router) Handle(ctx context.Context, sender types.JID, raw string) {
	body := strings.ToLower(strings.TrimSpace(raw))
	if body == "" {
		return
	}
	userID := sender.String()

	lock := r.lockUser(userID)
	defer r.unlockUser(userID, lock)

	log := logger.FromCtx(ctx)
	log.Info("message received", zap.Int("length", len(raw)))

	// A panic on one message must not take down the whatsmeow event
	// loop; the contact gets the generic apology instead.
	defer func() {
		if rec := recover(); rec != nil {
			log.Error("handler panic", zap.Any("panic", rec))
			r.send(ctx, sender, apologyText)
		}
	}()

	if _, err := r.deps.Users.Touch(userID); err != nil {
		log.Warn("touch user stats", zap.Error(err))
	}

	reply, err := r.dispatch(ctx, sender, userID, strings.TrimSpace(raw), body)
	if err != nil {
		if reply == "" {
			log.Error("dispatch failed", zap.Error(err))
			reply = apologyText
		} else {
			// A corrective reply exists, so this is user input, not a
			// fault.
			log.Info("corrective reply", zap.String("reason", err.Error()))
		}
	}
	if reply != "" {
		r.send(ctx, sender, reply)
	}
}

// lockUser serializes handling per contact. Entries are reference
// counted and removed as soon as the last in-flight message for a
// contact finishes, so the map stays bounded by concurrent work, not
// by every contact ever seen.
func (r *Router) lockUser(userID string) *userLock {
	r.mu.Lock()
	lock, ok := r.locks[userID]
	if !ok {
		lock = &userLock{}
		r.locks[userID] = lock
	}
	lock.refs++
	r.mu.Unlock()

	lock.mu.Lock()
	return lock
}

func (r *Router) unlockUser(userID string, lock *userLock) {
	lock.mu.Unlock()

	r.mu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(r.locks, userID)
	}
	r.mu.Unlock()
}

// dispatch picks the handler for one message. raw keeps the original
// casing for the order wizard (delivery data must not be lowercased).
func (r *Router) dispatch(ctx context.Context, sender types.JID, userID, raw, body string) (string, error) {
	// Order commands come first so "batal" always works.
	switch {
	case body == "batal":
		return r.deps.Engine.Cancel(ctx, userID)
	case body == "cara order":
		return r.deps.Menus.OrderGuide(), nil
	case body == "order":
		return "❌ Sebutkan produknya: ketik *order <id produk>*, contoh *order prod_001*.\n\nKetik *cara order* untuk panduan lengkap.", nil
	case strings.HasPrefix(body, "order "):
		productID := strings.TrimSpace(strings.TrimPrefix(body, "order "))
		return r.deps.Engine.StartOrder(ctx, userID, productID)
	}

	// An active order session swallows everything else, including bare
	// numbers that would otherwise hit the menu.
	if r.deps.Engine.HasSession(ctx, userID) {
		return r.deps.Engine.HandleInput(ctx, userID, raw)
	}

	if reply, handled, err := r.quizCommand(ctx, userID, body); handled {
		return reply, err
	}
	if r.deps.Quizzes.InQuiz(userID) {
		return r.deps.Quizzes.HandleQuizAnswer(ctx, userID, body)
	}
	if r.deps.Quizzes.InPoll(userID) {
		return r.deps.Quizzes.HandlePollVote(ctx, userID, body)
	}

	if reply, handled := r.menuSelection(body); handled {
		return reply, nil
	}

	switch body {
	case "menu", "help", "bantuan":
		return r.deps.Menus.MainMenu(), nil
	case "info":
		return r.deps.Menus.BotInfo(), nil
	case "kontak", "kontak admin":
		return r.deps.Menus.ContactInfo(), nil
	case "jadwal", "jam operasional":
		return r.deps.Menus.OperationalHours(), nil
	case "faq", "pertanyaan":
		return r.deps.Menus.FAQ(), nil
	}

	if reply, handled, err := r.catalogCommand(body); handled {
		return reply, err
	}
	if reply, handled := r.paymentCommand(ctx, sender, body); handled {
		return reply, nil
	}

	if msg, ok := r.deps.Replies.Maybe(ctx, userID, r.now()); ok {
		return msg, nil
	}
	return "", nil
}

// quizCommand handles "kuis", "kuis 2", "poll", "polling 1".
func (r *Router) quizCommand(ctx context.Context, userID, body string) (string, bool, error) {
	fields := strings.Fields(body)
	if len(fields) == 0 || len(fields) > 2 {
		return "", false, nil
	}

	var start func(context.Context, string, int) (string, error)
	var list func() string

	switch fields[0] {
	case "kuis", "quiz":
		start, list = r.deps.Quizzes.StartQuiz, r.deps.Quizzes.QuizList
	case "poll", "polling":
		start, list = r.deps.Quizzes.StartPoll, r.deps.Quizzes.PollList
	default:
		return "", false, nil
	}

	if len(fields) == 1 {
		return list(), true, nil
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return list(), true, nil
	}
	reply, err := start(ctx, userID, n)
	return reply, true, err
}

// menuSelection maps the bare digits 1-6 from the main menu.
func (r *Router) menuSelection(body string) (string, bool) {
	switch body {
	case "1":
		reply, _, err := r.catalogCommand("produk")
		if err != nil {
			return apologyText, true
		}
		return reply, true
	case "2":
		return r.deps.Menus.ContactInfo(), true
	case "3":
		return r.deps.Menus.OperationalHours(), true
	case "4":
		return r.deps.Menus.FAQ(), true
	case "5":
		return r.deps.Quizzes.QuizList(), true
	case "6":
		return r.deps.Quizzes.PollList(), true
	}
	return "", false
}

// catalogCommand handles "produk", "produk 2", "produk <id>",
// "produk unggulan", "kategori [id]" and "cari <term>".
func (r *Router) catalogCommand(body string) (string, bool, error) {
	switch {
	case body == "produk":
		result, err := r.deps.Products.ListProducts(product.ListOptions{Page: 1})
		if err != nil {
			return "", true, err
		}
		return catalogText(result, r.deps.Products.FormatPrice), true, nil

	case body == "produk unggulan":
		featured, err := r.deps.Products.FeaturedProducts(featuredLimit)
		if err != nil {
			return "", true, err
		}
		return featuredText(featured, r.deps.Products.FormatPrice), true, nil

	case strings.HasPrefix(body, "produk "):
		arg := strings.TrimSpace(strings.TrimPrefix(body, "produk "))
		if page, err := strconv.Atoi(arg); err == nil {
			if page < 1 {
				page = 1
			}
			result, err := r.deps.Products.ListProducts(product.ListOptions{Page: page})
			if err != nil {
				return "", true, err
			}
			return catalogText(result, r.deps.Products.FormatPrice), true, nil
		}
		return r.productDetail(arg)

	case body == "kategori":
		return r.categoryList()

	case strings.HasPrefix(body, "kategori "):
		arg := strings.TrimSpace(strings.TrimPrefix(body, "kategori "))
		return r.categoryProducts(arg)

	case strings.HasPrefix(body, "cari "):
		query := strings.TrimSpace(strings.TrimPrefix(body, "cari "))
		result, err := r.deps.Products.SearchProducts(query, 1)
		if err != nil {
			return "", true, err
		}
		return searchResultText(query, result, r.deps.Products.FormatPrice), true, nil
	}
	return "", false, nil
}

func (r *Router) productDetail(id string) (string, bool, error) {
	p, err := r.deps.Products.GetProductByID(id)
	if err != nil {
		return "❌ Produk tidak ditemukan. Ketik *produk* untuk melihat katalog.", true, err
	}
	return productDetailText(p, r.deps.Products.FormatPrice), true, nil
}

func (r *Router) categoryList() (string, bool, error) {
	cats, err := r.deps.Products.Categories()
	if err != nil {
		return "", true, err
	}
	return categoryListText(cats, func(id string) int {
		result, err := r.deps.Products.ListProducts(product.ListOptions{Category: id})
		if err != nil {
			return 0
		}
		return result.Pagination.TotalProducts
	}), true, nil
}

func (r *Router) categoryProducts(id string) (string, bool, error) {
	cats, err := r.deps.Products.Categories()
	if err != nil {
		return "", true, err
	}
	for _, c := range cats {
		if strings.EqualFold(c.ID, id) {
			result, err := r.deps.Products.ListProducts(product.ListOptions{Category: c.ID})
			if err != nil {
				return "", true, err
			}
			return categoryProductsText(c, result, r.deps.Products.FormatPrice), true, nil
		}
	}
	return "❌ Kategori tidak ditemukan. Ketik *kategori* untuk melihat daftar.", true, product.ErrCategoryNotFound
}

var paymentKeywords = []string{"payment", "bayar", "pembayaran", "transfer", "rekening", "qris"}

// paymentCommand handles payment keywords: specific method detail,
// confirmation template, or the general info plus a delayed quick
// summary.
func (r *Router) paymentCommand(ctx context.Context, sender types.JID, body string) (string, bool) {
	if body == "template pembayaran" || body == "konfirmasi pembayaran" {
		return r.deps.Payments.ConfirmationTemplate(), true
	}

	if arg, found := strings.CutPrefix(body, "bayar "); found {
		if detail, ok := r.deps.Payments.MethodDetail(arg); ok {
			return detail, true
		}
	}

	for _, kw := range paymentKeywords {
		if !strings.Contains(body, kw) {
			continue
		}
		r.deps.Sched.AfterFunc(quickSummaryDelay, func() {
			followCtx, cancel := context.WithTimeout(context.Background(), handleTimeout)
			defer cancel()
			r.send(followCtx, sender, r.deps.Payments.QuickSummary())
		})
		return r.deps.Payments.Summary(), true
	}
	return "", false
}

func (r *Router) send(ctx context.Context, to types.JID, text string) {
	log := logger.FromCtx(ctx)

	if !r.deps.Limiter.Allow(to.String()) {
		log.Warn("reply dropped by rate limit")
		return
	}
	if err := r.deps.Sink.Send(ctx, to, text); err != nil {
		log.Error("send reply", zap.Error(err))
	}
}

// PaymentNotifier delivers the delayed payment instructions after an
// order is finalized. It implements order.Notifier.
type PaymentNotifier struct {
	sink     Sink
	payments *payment.Service
	fmtPrice func(int) string
}

func NewPaymentNotifier(sink Sink, payments *payment.Service, fmtPrice func(int) string) *PaymentNotifier {
	return &PaymentNotifier{sink: sink, payments: payments, fmtPrice: fmtPrice}
}

func (n *PaymentNotifier) NotifyPayment(ctx context.Context, userID string, o *order.Order) {
	jid, err := types.ParseJID(userID)
	if err != nil {
		logger.L().Error("parse jid for payment notify", zap.Error(err))
		return
	}

	text := n.payments.OrderPayment(o.OrderID, n.fmtPrice(o.Total))
	if err := n.sink.Send(ctx, jid, text); err != nil {
		logger.L().Error("send payment instructions",
			zap.String("order_id", o.OrderID), zap.Error(err))
	}
}
