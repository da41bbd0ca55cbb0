package main

import (
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	apiHttp "swaphub/internal/api/http"
	"swaphub/internal/controllers"
	"swaphub/internal/repository/postgres"
	"swaphub/internal/usecasees"
)

func main() {
	var app App
	var confFileName, clientAllowlist string

	app.Name = "swaphub"

	flag.StringVar(&confFileName, "config", ".env", "")
	flag.StringVar(&clientAllowlist, "client-env", "web/client-env.allowlist", "")
	flag.Parse()

	if err := app.loadConfig(confFileName); err != nil {
		panic(err)
	}

	app.initLogger()

	if err := guardClientBundle(clientAllowlist); err != nil {
		panic(err)
	}

	if err := app.initLoki(); err != nil {
		panic(err)
	}

	if err := app.initTgBot(); err != nil {
		panic(err)
	}

	if err := app.InitDB(app.Config.DB); err != nil {
		panic(err)
	}

	app.initHTTPClient()
	app.InitMetrics()
	app.initFiber()

	chatId, err := strconv.ParseInt(app.Config.TelegramChatID, 10, 64)
	if err != nil {
		panic(err)
	}

	orderRepo := postgres.NewOrderRepository(app.DB)
	watchedRepo := postgres.NewWatchedOrderRepository(app.DB)
	statusLogRepo := postgres.NewStatusLogRepository(app.DB)
	planRepo := postgres.NewDCAPlanRepository(app.DB)
	limitRepo := postgres.NewLimitOrderRepository(app.DB)
	snapshotRepo := postgres.NewPriceSnapshotRepository(app.DB)
	userRepo := postgres.NewUserRepository(app.DB)
	coinsRepo := postgres.NewCoinsRepository(app.DB)
	convRepo := postgres.NewConversationRepository(app.DB)

	shiftController := controllers.NewSideShiftController(
		app.HTTPClient,
		app.Config.SideShiftUrl,
		app.Config.SideShiftApiKey,
		app.Config.SideShiftAffiliateId,
		app.Logger,
	)
	tgmController := controllers.NewTgmController(
		app.TGM,
		chatId,
	)

	monitorUseCase := usecasees.NewOrderMonitorUseCase(
		shiftController,
		orderRepo,
		watchedRepo,
		statusLogRepo,
		app.Config.MonitorTick,
		app.Config.MonitorMaxConcurrent,
		app.Metrics.Counters,
		app.Logger,
		app.PromTail,
	)

	notifyUseCase := usecasees.NewNotifyUseCase(
		tgmController,
		userRepo,
		watchedRepo,
		app.Metrics.Counters,
		app.Logger,
	)
	monitorUseCase.Subscribe(notifyUseCase.OnTransition)

	dcaUseCase := usecasees.NewDCAUseCase(
		shiftController,
		planRepo,
		userRepo,
		monitorUseCase,
		app.Config.DCATick,
		app.Config.DCARetryDelay,
		app.Config.DCAMaxProcessing,
		app.Metrics.Counters,
		app.Logger,
		app.PromTail,
	)

	limitUseCase := usecasees.NewLimitOrderUseCase(
		shiftController,
		limitRepo,
		snapshotRepo,
		orderRepo,
		userRepo,
		monitorUseCase,
		notifyUseCase,
		app.Config.LimitTick,
		app.Config.LimitMaxStaleness,
		app.Config.LimitMaxRetries,
		app.Metrics.Counters,
		app.Logger,
		app.PromTail,
	)

	priceUseCase := usecasees.NewPriceUseCase(
		shiftController,
		limitRepo,
		snapshotRepo,
		0,
		app.Config.LimitMaxStaleness,
		app.Metrics.Counters,
		app.Logger,
		app.PromTail,
	)

	swapUseCase := usecasees.NewSwapUseCase(
		shiftController,
		orderRepo,
		userRepo,
		monitorUseCase,
		app.Logger,
	)

	intentUseCase := usecasees.NewIntentUseCase(
		swapUseCase,
		planRepo,
		limitRepo,
		orderRepo,
		app.Logger,
	)

	middleware := apiHttp.NewMiddleware(app.Fiber, []byte(app.Config.AuthJwtSecret), app.Config.AuthTokenIssuer)
	middleware.UseMetrics()

	handler := apiHttp.NewHandler(
		app.Fiber,
		orderRepo,
		userRepo,
		coinsRepo,
		convRepo,
		intentUseCase,
		app.Logger,
	)
	apiHttp.RegisterHTTPEndpoints(app.Fiber, middleware, handler)

	if err := monitorUseCase.Start(); err != nil {
		panic(err)
	}

	dcaUseCase.Start()
	limitUseCase.Start()
	priceUseCase.Start()

	go notifyUseCase.CommandProcessor()

	go func() {
		if err := app.Fiber.Listen(":" + app.Config.HTTPPort); err != nil {
			app.Logger.Error(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Logger.Info("shutting down")

	priceUseCase.Stop()
	limitUseCase.Stop()
	dcaUseCase.Stop()
	monitorUseCase.Stop()

	if err := app.Fiber.Shutdown(); err != nil {
		app.Logger.Error(err)
	}

	if err := app.DB.Close(); err != nil {
		app.Logger.Error(err)
	}
}
