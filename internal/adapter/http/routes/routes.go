package routes

import (
	"context"
	"log"
	"net/http"
	"propertyhub/internal/adapter/http/dto/request"
	"propertyhub/internal/adapter/http/handlers"
	"propertyhub/internal/adapter/http/middleware"
	"propertyhub/internal/adapter/persistence/repository"
	"propertyhub/internal/infrastructure/config"
	"propertyhub/internal/infrastructure/database"
	"propertyhub/internal/infrastructure/payments"
	"propertyhub/internal/infrastructure/scheduler"
	"propertyhub/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := request.RegisterValidators(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	job := getRoutes(cfg)
	if job != nil {
		job.Start()
		defer job.Stop()
	}

	err = router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) *scheduler.ReconcileJob {
	ddb := database.ConnectDynamoDB(context.Background())

	propertyRepo := repository.NewPropertyDynamoRepository(ddb)
	tenantRepo := repository.NewTenantDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	debugLogRepo := repository.NewDebugLogDynamoRepository(ddb)

	gateway, err := payments.NewMoMoGateway(cfg.MoMo, &http.Client{Timeout: cfg.MoMo.HTTPTimeout})
	if err != nil {
		log.Fatalf("MTN MoMo gateway not configured (set the MOMO_* credentials or PAYMENT_GATEWAY_MOCK=true): %v", err)
	}

	propertyUseCase := usecase.NewPropertyUseCase(propertyRepo, tenantRepo)
	tenantUseCase := usecase.NewTenantUseCase(tenantRepo, propertyRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo)
	momoUseCase := usecase.NewMoMoUseCase(paymentRepo, gateway, debugLogRepo, usecase.MoMoOptions{
		DefaultCurrency: cfg.MoMo.Currency,
		Concurrency:     cfg.CheckAllConcurrency,
		WaitTimeout:     cfg.WaitTimeout,
		WaitInterval:    cfg.WaitInterval,
	})
	dashboardUseCase := usecase.NewDashboardUseCase(propertyRepo, tenantRepo, paymentRepo)
	debugLogUseCase := usecase.NewDebugLogUseCase(debugLogRepo)

	propertyHandler := handlers.NewPropertyHandler(propertyUseCase)
	tenantHandler := handlers.NewTenantHandler(tenantUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	momoHandler := handlers.NewMoMoHandler(momoUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	debugLogHandler := handlers.NewDebugLogHandler(debugLogUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCallbackRoutes(v1, momoHandler)

	admin := v1.Group("")
	admin.Use(middleware.AdminRequired(cfg.AuthJWTSecret, cfg.AdminRole))
	addPropertyRoutes(admin, propertyHandler)
	addTenantRoutes(admin, tenantHandler)
	addPaymentRoutes(admin, paymentHandler, momoHandler)
	addMoMoRoutes(admin, momoHandler)
	addDashboardRoutes(admin, dashboardHandler)
	addDebugLogRoutes(admin, debugLogHandler)

	if cfg.ReconcileCron == "" {
		return nil
	}
	job, err := scheduler.NewReconcileJob(cfg.ReconcileCron, momoUseCase, cfg.WaitTimeout)
	if err != nil {
		log.Fatalf("Failed to schedule reconciliation: %v", err)
	}
	return job
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
