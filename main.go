package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/algobasket/hissabbook-admin/app/echoServer"
	authctrl "github.com/algobasket/hissabbook-admin/app/echoServer/controller/auth"
	bookctrl "github.com/algobasket/hissabbook-admin/app/echoServer/controller/book"
	bizctrl "github.com/algobasket/hissabbook-admin/app/echoServer/controller/business"
	dashctrl "github.com/algobasket/hissabbook-admin/app/echoServer/controller/dashboard"
	payoutctrl "github.com/algobasket/hissabbook-admin/app/echoServer/controller/payout"
	txnctrl "github.com/algobasket/hissabbook-admin/app/echoServer/controller/txn"
	userctrl "github.com/algobasket/hissabbook-admin/app/echoServer/controller/user"
	"github.com/algobasket/hissabbook-admin/app/echoServer/ctlx"
	"github.com/algobasket/hissabbook-admin/app/echoServer/validation"
	"github.com/algobasket/hissabbook-admin/app/echoServer/view"
	"github.com/algobasket/hissabbook-admin/config"
	"github.com/algobasket/hissabbook-admin/repository/audit"
	"github.com/algobasket/hissabbook-admin/repository/ledger"
	"github.com/algobasket/hissabbook-admin/repository/notify"
	authsvc "github.com/algobasket/hissabbook-admin/service/auth"
	booksvc "github.com/algobasket/hissabbook-admin/service/book"
	bizsvc "github.com/algobasket/hissabbook-admin/service/business"
	dashsvc "github.com/algobasket/hissabbook-admin/service/dashboard"
	payoutsvc "github.com/algobasket/hissabbook-admin/service/payout"
	reportsvc "github.com/algobasket/hissabbook-admin/service/report"
	"github.com/algobasket/hissabbook-admin/service/session"
	txnsvc "github.com/algobasket/hissabbook-admin/service/transaction"
	usersvc "github.com/algobasket/hissabbook-admin/service/user"
	"github.com/algobasket/hissabbook-admin/util/database"
	"github.com/algobasket/hissabbook-admin/util/httpx"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// audit trail: optional, the console runs fine without a database
	var au audit.Repo = audit.New(nil)
	if cfg.DatabaseURL != "" {
		pool, err := database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("audit db connect failed", "err", err)
			os.Exit(1)
		}
		defer pool.Close()
		au = audit.New(pool)
	} else {
		log.Warn("DATABASE_URL not set, audit trail disabled")
	}

	// payout notifications: also optional
	var nt notify.Notifier
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		var err error
		nt, err = notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Error("telegram init failed", "err", err)
			os.Exit(1)
		}
	}

	// backend API client
	api := ledger.New(cfg.BackendURL, httpx.Client(), log)

	// session cookie codec
	codec := session.NewCodec(cfg.SessionSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)

	// services
	as := authsvc.New(api, au, log)
	ds := dashsvc.New(api)
	ps := payoutsvc.New(api, au, nt, log)
	us := usersvc.New(api, au, log)
	bs := bizsvc.New(api, au, log)
	cs := booksvc.New(api, au, log)
	ts := txnsvc.New(api)
	rs := reportsvc.New(api)

	// controllers
	v := validator.New()
	base := ctlx.Base{V: v, Log: log, Root: cfg.BasePath}
	authC := &authctrl.Controller{Base: base, Svc: as, Codec: codec}
	dashC := &dashctrl.Controller{Base: base, Svc: ds}
	payoutC := &payoutctrl.Controller{Base: base, Svc: ps}
	userC := &userctrl.Controller{Base: base, Svc: us}
	bizC := &bizctrl.Controller{Base: base, Svc: bs}
	bookC := &bookctrl.Controller{Base: base, Svc: cs, Users: us}
	txnC := &txnctrl.Controller{Base: base, Svc: ts, Reports: rs}

	// echo
	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Error("template parse failed", "err", err)
		os.Exit(1)
	}
	e.Renderer = renderer

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]any{"status": "ok"})
	})

	echoServer.Register(e, echoServer.C{
		Auth:      authC,
		Dashboard: dashC,
		Payout:    payoutC,
		User:      userC,
		Business:  bizC,
		Book:      bookC,
		Txn:       txnC,

		Codec:    codec,
		BasePath: cfg.BasePath,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting admin console", "port", port, "base_path", cfg.BasePath, "backend", cfg.BackendURL)

	e.Logger.Fatal(e.Start(":" + port))
}
