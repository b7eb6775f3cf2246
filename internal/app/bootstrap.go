package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/tg_store/config"
	cachemem "github.com/Gunvolt24/tg_store/internal/cache/memory"
	cacheredis "github.com/Gunvolt24/tg_store/internal/cache/redis"
	"github.com/Gunvolt24/tg_store/internal/catalog"
	"github.com/Gunvolt24/tg_store/internal/dispatch"
	"github.com/Gunvolt24/tg_store/internal/kafka"
	"github.com/Gunvolt24/tg_store/internal/notify"
	"github.com/Gunvolt24/tg_store/internal/notify/telegram"
	"github.com/Gunvolt24/tg_store/internal/ports"
	rest "github.com/Gunvolt24/tg_store/internal/transport/http"
	"github.com/Gunvolt24/tg_store/internal/usecase"
	"github.com/Gunvolt24/tg_store/pkg/httpx"
	"github.com/Gunvolt24/tg_store/pkg/logger"
	"github.com/Gunvolt24/tg_store/pkg/metrics"
	"github.com/Gunvolt24/tg_store/pkg/telemetry"
	"github.com/Gunvolt24/tg_store/pkg/validate"
	"github.com/gin-gonic/gin"
)

// Drainer — фоновая очередь, которую нужно дождаться при остановке.
type Drainer interface {
	Shutdown(ctx context.Context) error
}

// App — собранное приложение: HTTP-сервер и очередь доставки заказов.
type App struct {
	Logger          ports.Logger  // логгер
	HTTPServer      *http.Server  // HTTP-сервер
	Dispatcher      Drainer       // очередь доставки уведомлений
	gracefulTimeout time.Duration // время на остановку HTTP и дренаж очереди
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// openStore — Redis по URL; без URL или при недоступном Redis — хранилище в памяти.
// Кэш и лимиты необязательны для работы витрины, поэтому отказ Redis не фатален.
func openStore(ctx context.Context, cfg *config.Cache, log ports.Logger) (ports.KVStore, func() error) {
	noop := func() error { return nil }
	if cfg.URL == "" {
		log.Infof(ctx, "cache backend: memory (capacity=%d)", cfg.Capacity)
		return cachemem.NewStore(cfg.Capacity), noop
	}

	client, err := cacheredis.NewClient(cfg.URL)
	if err != nil {
		log.Warnf(ctx, "invalid cache url, fallback to memory: %v", err)
		return cachemem.NewStore(cfg.Capacity), noop
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	store := cacheredis.NewStore(client)
	if err := store.Ping(pingCtx); err != nil {
		log.Warnf(ctx, "redis unavailable, fallback to memory: %v", err)
		_ = client.Close()
		return cachemem.NewStore(cfg.Capacity), noop
	}

	log.Infof(ctx, "cache backend: redis")
	return store, client.Close
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Ранние ошибки конфигурации: до запуска фоновых компонентов.
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		_ = cleanupLogger()
		return nil, func() {}, err
	}
	loc, err := cfg.Order.Location()
	if err != nil {
		_ = cleanupLogger()
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace, err := telemetry.SetupTracing(ctx, telemetry.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		logg.Warnf(ctx, "failed to setup tracing: %v", err)
		shutdownTrace = func(context.Context) error { return nil }
	} else if cfg.Tracing.Enabled {
		logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
			cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Хранилище кэша ответов и счётчиков лимитов.
	store, closeStore := openStore(ctx, &cfg.Cache, logg)

	// Получатели заказов: Telegram всегда, Kafka — при заданных брокерах.
	notifier := telegram.New(&telegram.Config{
		Token:          cfg.Telegram.BotToken,
		ChatID:         cfg.Telegram.ChatID,
		APIURL:         cfg.Telegram.APIURL,
		ConnectTimeout: cfg.Telegram.ConnectTimeout,
		ReadTimeout:    cfg.Telegram.ReadTimeout,
		MaxAttempts:    cfg.Telegram.MaxAttempts,
		StatusBackoff:  cfg.Telegram.StatusBackoff,
		NetworkBackoff: cfg.Telegram.NetworkBackoff,
	}, logg)
	if !notifier.Configured() {
		logg.Warnf(ctx, "telegram credentials are not set: orders will be accepted without notifications")
	}
	sinks := []ports.OrderSink{notify.NewTelegramSink(notifier)}

	kafkaCfg := kafka.PublisherConfig{
		Brokers:      cfg.Kafka.Brokers,
		Topic:        cfg.Kafka.Topic,
		WriteTimeout: cfg.Kafka.WriteTimeout,
	}
	var publisher *kafka.Publisher
	if kafkaCfg.Enabled() {
		publisher = kafka.NewPublisher(&kafkaCfg, logg)
		sinks = append(sinks, publisher)
		logg.Infof(ctx, "kafka order events enabled topic=%s", cfg.Kafka.Topic)
	}

	// Очередь доставки.
	queue := dispatch.New(dispatch.Config{
		Workers:   cfg.Dispatch.Workers,
		QueueSize: cfg.Dispatch.QueueSize,
	}, logg, sinks...)

	// Сервисы.
	validator := validate.NewOrderValidator()
	orderService := usecase.NewOrderService(queue, validator, logg, usecase.OrderConfig{
		MaxBodyBytes:   cfg.HTTP.MaxBodyBytes,
		Location:       loc,
		RecomputeTotal: cfg.Order.RecomputeTotal,
	})
	paymentService := usecase.NewPaymentService(validator, usecase.PaymentConfig{
		YooKassaShopID: cfg.Payment.YooKassaShopID,
		CryptoDiscount: cfg.Payment.CryptoDiscount,
	}, logg)

	// Лимиты: маршрутный потолок заменяет общий; диагностика и метрики без лимитов.
	var limiter *httpx.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = httpx.NewRateLimiter(store, logg, httpx.RateLimitConfig{
			Default: cfg.RateLimit.Default,
			Routes: map[string]httpx.Rate{
				rest.RouteOrder:       cfg.RateLimit.Order,
				rest.RoutePayment:     cfg.RateLimit.Payment,
				rest.RouteSuggestions: cfg.RateLimit.Suggestions,
			},
			Exempt: []string{rest.RouteDebug, rest.RouteMetrics},
		})
	}

	diag := NewDiagnostics(cfg.ServiceName, store, notifier, publisher != nil, queue, limiter)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	handler := rest.NewHandler(rest.Deps{
		Orders:      orderService,
		Payments:    paymentService,
		Suggester:   usecase.NewAddressService(),
		Catalog:     cat,
		Diagnostics: diag,
		Store:       store,
		Log:         logg,
	})
	router := rest.NewRouter(handler, rest.RouterConfig{
		ServiceName:    otelServiceName,
		MaxBodyBytes:   cfg.HTTP.MaxBodyBytes,
		CORSOrigins:    cfg.HTTP.CORSOrigins,
		HSTS:           gin.Mode() == gin.ReleaseMode,
		Limiter:        limiter,
		ProductsTTL:    cfg.Cache.ProductsTTL,
		SuggestionsTTL: cfg.Cache.SuggestionsTTL,
		PaymentTTL:     cfg.Cache.PaymentTTL,
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		Dispatcher:      queue,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов после Run: Kafka, хранилище, трейсинг, логгер.
	cleanup := func() {
		if publisher != nil {
			if err := publisher.Close(); err != nil {
				logg.Warnf(ctx, "kafka publisher close error: %v", err)
			}
		}
		if err := closeStore(); err != nil {
			logg.Warnf(ctx, "cache store close error: %v", err)
		}
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер; ждёт отмены контекста или ошибки сервера,
// затем останавливает HTTP и дожидается доставки уже принятых заказов.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или ошибки сервера.
	var serveErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case serveErr = <-errCh:
		a.Logger.Errorf(ctx, "http server error: %v", serveErr)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера: новые заказы больше не принимаются.
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Дренаж очереди доставки в пределах того же таймаута.
	if a.Dispatcher != nil {
		if err := a.Dispatcher.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "dispatch queue drain: %v", err)
		} else {
			a.Logger.Infof(ctx, "dispatch queue drained")
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return serveErr
}
