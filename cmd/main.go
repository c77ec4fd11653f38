package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/DriveX-RentalService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/DriveX-RentalService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/DriveX-RentalService/internal/api/handlers/create_booking"
	createCarHandler "github.com/m04kA/DriveX-RentalService/internal/api/handlers/create_car"
	createCouponHandler "github.com/m04kA/DriveX-RentalService/internal/api/handlers/create_coupon"
	deactivateCouponHandler "github.com/m04kA/DriveX-RentalService/internal/api/handlers/deactivate_coupon"
	getBookingHandler "github.com/m04kA/DriveX-RentalService/internal/api/handlers/get_booking"
	getCarHandler "github.com/m04kA/DriveX-RentalService/internal/api/handlers/get_car"
	getCarBookingsHandler "github.com/m04kA/DriveX-RentalService/internal/api/handlers/get_car_bookings"
	getQuoteHandler "github.com/m04kA/DriveX-RentalService/internal/api/handlers/get_quote"
	getUserBookingsHandler "github.com/m04kA/DriveX-RentalService/internal/api/handlers/get_user_bookings"
	listCarsHandler "github.com/m04kA/DriveX-RentalService/internal/api/handlers/list_cars"
	listCouponsHandler "github.com/m04kA/DriveX-RentalService/internal/api/handlers/list_coupons"
	payBookingHandler "github.com/m04kA/DriveX-RentalService/internal/api/handlers/pay_booking"
	updateCarHandler "github.com/m04kA/DriveX-RentalService/internal/api/handlers/update_car"
	"github.com/m04kA/DriveX-RentalService/internal/api/middleware"
	"github.com/m04kA/DriveX-RentalService/internal/config"
	"github.com/m04kA/DriveX-RentalService/internal/infra/carlock"
	bookingRepo "github.com/m04kA/DriveX-RentalService/internal/infra/storage/booking"
	carRepo "github.com/m04kA/DriveX-RentalService/internal/infra/storage/car"
	couponRepo "github.com/m04kA/DriveX-RentalService/internal/infra/storage/coupon"
	identityClient "github.com/m04kA/DriveX-RentalService/internal/integrations/identityservice"
	bookingsService "github.com/m04kA/DriveX-RentalService/internal/service/bookings"
	catalogService "github.com/m04kA/DriveX-RentalService/internal/service/catalog"
	checkAvailabilityUC "github.com/m04kA/DriveX-RentalService/internal/usecase/check_availability"
	commitBookingUC "github.com/m04kA/DriveX-RentalService/internal/usecase/commit_booking"
	getQuoteUC "github.com/m04kA/DriveX-RentalService/internal/usecase/get_quote"
	"github.com/m04kA/DriveX-RentalService/pkg/logger"
	"github.com/m04kA/DriveX-RentalService/pkg/metrics"
	"github.com/m04kA/DriveX-RentalService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting DriveX-RentalService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаемся к Redis (per-car замки коммита)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)

	carLocker := carlock.NewLocker(
		redisClient,
		time.Duration(cfg.Booking.LockTTLSeconds)*time.Second,
		time.Duration(cfg.Booking.LockRetryMS)*time.Millisecond,
	)
	lockWait := time.Duration(cfg.Booking.LockWaitMS) * time.Millisecond

	// Инициализируем клиент IdentityService
	identity := identityClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (IdentityService=%s timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	carRepository := carRepo.NewRepository(db)
	couponRepository := couponRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		identity,
		txMgr,
		log,
	)
	catalogSvc := catalogService.NewService(
		carRepository,
		couponRepository,
		identity,
		log,
	)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		carRepository,
		log,
	)
	getQuoteUseCase := getQuoteUC.NewUseCase(
		carRepository,
		couponRepository,
		log,
	)
	commitBookingUseCase := commitBookingUC.NewUseCase(
		bookingRepository,
		carRepository,
		getQuoteUseCase,
		identity,
		carLocker,
		txMgr,
		metricsRecorder(metricsCollector),
		log,
		lockWait,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getQuote := getQuoteHandler.NewHandler(getQuoteUseCase, log)
	createBooking := createBookingHandler.NewHandler(commitBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	payBooking := payBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getCarBookings := getCarBookingsHandler.NewHandler(bookingSvc, log)
	listCars := listCarsHandler.NewHandler(catalogSvc, log)
	getCar := getCarHandler.NewHandler(catalogSvc, log)
	createCar := createCarHandler.NewHandler(catalogSvc, log)
	updateCar := updateCarHandler.NewHandler(catalogSvc, log)
	listCoupons := listCouponsHandler.NewHandler(catalogSvc, log)
	createCoupon := createCouponHandler.NewHandler(catalogSvc, log)
	deactivateCoupon := deactivateCouponHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог автомобилей
	api.HandleFunc("/cars", listCars.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cars/{carId}", getCar.Handle).Methods(http.MethodGet)

	// Проверка доступности интервала
	api.HandleFunc("/cars/{carId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Предварительный расчёт стоимости
	api.HandleFunc("/quotes", getQuote.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/pay", payBooking.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Администрирование ---
	// Бронирования автомобиля за период
	protected.HandleFunc("/cars/{carId}/bookings", getCarBookings.Handle).Methods(http.MethodGet)

	// Управление каталогом
	protected.HandleFunc("/cars", createCar.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/cars/{carId}", updateCar.Handle).Methods(http.MethodPatch)

	// Управление купонами
	protected.HandleFunc("/coupons", listCoupons.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/coupons", createCoupon.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/coupons/{code}", deactivateCoupon.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// metricsRecorder возвращает nil-интерфейс, когда метрики выключены,
// чтобы usecase мог просто проверить metrics != nil
func metricsRecorder(m *metrics.Metrics) commitBookingUC.MetricsRecorder {
	if m == nil {
		return nil
	}
	return m
}
