package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/store/sqlstore"
	waLog "go.mau.fi/whatsmeow/util/log"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	_ "github.com/mattn/go-sqlite3"
	"github.com/mdp/qrterminal/v3"

	"tamstore-bot/internal/autoreply"
	"tamstore-bot/internal/bot"
	"tamstore-bot/internal/config"
	"tamstore-bot/internal/logger"
	"tamstore-bot/internal/menu"
	"tamstore-bot/internal/order"
	"tamstore-bot/internal/payment"
	"tamstore-bot/internal/product"
	"tamstore-bot/internal/quiz"
	"tamstore-bot/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Data repositories.
	productRepo, err := product.NewFileRepository(cfg.ProductFile)
	if err != nil {
		log.Fatal("load product catalog", zap.Error(err))
	}
	products := product.NewService(productRepo)

	users, err := user.NewFileRepository(cfg.UserFile)
	if err != nil {
		log.Fatal("load user data", zap.Error(err))
	}

	quizRepo, err := quiz.NewFileRepository(cfg.QuizFile)
	if err != nil {
		log.Fatal("load quiz data", zap.Error(err))
	}
	quizzes := quiz.NewService(quizRepo, users)

	payments := payment.NewService(payment.Info{
		StoreName: cfg.StoreName,
		OwnerName: cfg.OwnerName,
	})

	replies, err := autoreply.NewService(autoreply.Config{
		Enabled:    cfg.AutoReplyEnabled,
		OpenTime:   cfg.OpenTime,
		CloseTime:  cfg.CloseTime,
		Location:   cfg.Location,
		WorkDays:   cfg.WorkDays,
		MaxPerUser: cfg.MaxAutoReplyPerUser,
	}, users)
	if err != nil {
		log.Fatal("auto-reply config", zap.Error(err))
	}

	menus := menu.NewService(menu.Config{
		BotName:      cfg.BotName,
		StoreName:    cfg.StoreName,
		AdminContact: cfg.AdminContact,
		OpenTime:     cfg.OpenTime,
		CloseTime:    cfg.CloseTime,
		Location:     cfg.Location,
	})

	// WhatsApp transport.
	dbLog := waLog.Stdout("Database", "WARN", true)
	container, err := sqlstore.New(ctx, "sqlite3", cfg.SessionDBPath, dbLog)
	if err != nil {
		log.Fatal("open device store", zap.Error(err))
	}
	device, err := container.GetFirstDevice(ctx)
	if err != nil {
		log.Fatal("get device", zap.Error(err))
	}
	client := whatsmeow.NewClient(device, waLog.Stdout("Client", "WARN", true))
	sink := bot.NewWhatsmeowSink(client)

	// Order wizard.
	recorder, err := order.NewFileRecorder(cfg.OrderFile)
	if err != nil {
		log.Fatal("open order log", zap.Error(err))
	}

	var sessions order.Store
	switch cfg.SessionBackend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal("connect redis", zap.Error(err))
		}
		sessions = order.NewRedisStore(rdb, cfg.SessionTTL)
	default:
		sessions = order.NewMemoryStore()
	}

	notifier := bot.NewPaymentNotifier(sink, payments, products.FormatPrice)
	engine := order.NewEngine(sessions, products, recorder, notifier, order.NewScheduler(), order.Config{
		MaxQuantity:  cfg.MaxOrderQty,
		ShippingFee:  cfg.ShippingFee,
		SessionTTL:   cfg.SessionTTL,
		PaymentDelay: cfg.PaymentDelay,
	})

	router := bot.NewRouter(bot.Deps{
		Sink:     sink,
		Products: products,
		Engine:   engine,
		Quizzes:  quizzes,
		Payments: payments,
		Menus:    menus,
		Replies:  replies,
		Users:    users,
		Limiter:  autoreply.NewLimiter(rate.Limit(1), 5),
		Sched:    order.NewScheduler(),
	})
	client.AddEventHandler(router.HandleEvent)

	// Maintenance jobs.
	jobs := cron.New(cron.WithLocation(cfg.Location))
	mustSchedule(jobs, "0 0 * * *", func() {
		if err := users.ResetDailyCounters(); err != nil {
			log.Error("reset daily counters", zap.Error(err))
		} else {
			log.Info("daily auto-reply counters reset")
		}
	})
	mustSchedule(jobs, "0 */6 * * *", func() {
		if err := users.Backup(cfg.BackupDir, 7); err != nil {
			log.Error("backup user data", zap.Error(err))
		} else {
			log.Info("user data backed up")
		}
	})
	mustSchedule(jobs, "@hourly", func() {
		if n := quizzes.CleanupStale(); n > 0 {
			log.Info("stale quiz sessions cleaned", zap.Int("count", n))
		}
	})
	jobs.Start()
	defer jobs.Stop()

	if err := connect(ctx, client); err != nil {
		log.Fatal("connect whatsapp", zap.Error(err))
	}
	log.Info("bot running", zap.String("store", cfg.StoreName))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	log.Info("shutting down")
	client.Disconnect()
}

// connect logs in, printing a QR code on first run.
func connect(ctx context.Context, client *whatsmeow.Client) error {
	if client.Store.ID != nil {
		return client.Connect()
	}

	qrChan, err := client.GetQRChannel(ctx)
	if err != nil {
		return err
	}
	if err := client.Connect(); err != nil {
		return err
	}

	fmt.Println("Scan QR code berikut dengan WhatsApp:")
	for evt := range qrChan {
		switch evt.Event {
		case "code":
			qrterminal.GenerateHalfBlock(evt.Code, qrterminal.L, os.Stdout)
		case "success":
			return nil
		default:
			logger.L().Info("login event", zap.String("event", evt.Event))
		}
	}
	return nil
}

func mustSchedule(jobs *cron.Cron, spec string, fn func()) {
	if _, err := jobs.AddFunc(spec, fn); err != nil {
		logger.L().Fatal("schedule job", zap.String("spec", spec), zap.Error(err))
	}
}
