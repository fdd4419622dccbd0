package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "lendledger/internal/adapter/http"
	idemp "lendledger/internal/adapter/middleware"
	"lendledger/internal/adapter/repository/gormrepo"
	"lendledger/internal/adapter/repository/memory"
	"lendledger/internal/config"
	domain "lendledger/internal/domain/loan"
	"lendledger/internal/infrastructure/cache"
	"lendledger/internal/infrastructure/db"
	"lendledger/internal/notify"
	loanuc "lendledger/internal/usecase/loan"
	"lendledger/internal/usecase/preview"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	repo, err := openLedger(cfg)
	if err != nil {
		log.Fatal(err)
	}

	var notifier notify.Notifier = notify.NewLogNotifier()
	if cfg.AMQPURL != "" {
		pub, err := notify.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			log.Fatal(err)
		}
		defer pub.Close()
		notifier = pub
	}

	loans := loanuc.NewUsecase(repo, notifier)
	previews := preview.NewUsecase()

	h := httpadp.NewHandler()
	lh := httpadp.NewLoanHandler(loans)
	ph := httpadp.NewPaymentHandler(loans)
	pvh := httpadp.NewPreviewHandler(previews)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	// Idempotency guards the ledger-mutating routes only; the preview
	// calculator stays open so a form can call it on every input change.
	var idm []echo.MiddlewareFunc
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatal(err)
		}
		idm = append(idm, idemp.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}

	// routes
	e.GET("/health", h.Health)
	e.POST("/loans/preview", pvh.PreviewLoan)
	e.POST("/loans", lh.CreateLoan, idm...)
	e.GET("/loans", lh.ListLoans)
	e.GET("/loans/stats", lh.Stats)
	e.GET("/loans/:loan_id", lh.GetLoan)
	e.POST("/loans/:loan_id/payments", ph.RecordPayment, idm...)
	e.GET("/loans/:loan_id/payments", ph.ListPayments)
	e.POST("/loans/:loan_id/overdue", lh.MarkOverdue, idm...)
	e.POST("/loans/:loan_id/reminders", lh.Remind, idm...)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s (ledger=%s)", addr, cfg.LedgerBackend)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

func openLedger(cfg *config.Config) (domain.Repository, error) {
	switch cfg.LedgerBackend {
	case config.BackendSQLite:
		gdb, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := gormrepo.Migrate(gdb); err != nil {
			return nil, err
		}
		return gormrepo.NewLoanRepository(gdb), nil
	case config.BackendMySQL:
		gdb, err := db.OpenMySQL(cfg.MySQLDSN())
		if err != nil {
			return nil, err
		}
		if err := gormrepo.Migrate(gdb); err != nil {
			return nil, err
		}
		return gormrepo.NewLoanRepository(gdb), nil
	default:
		return memory.NewLedger(), nil
	}
}
