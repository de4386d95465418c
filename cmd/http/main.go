package main

import (
	"agenda-service/internal/app/config"
	"agenda-service/internal/app/delivery/http/controllers"
	"agenda-service/internal/app/delivery/http/middlewares"
	"agenda-service/internal/app/delivery/http/routers"
	"agenda-service/internal/app/drivers/database"
	"agenda-service/internal/app/drivers/logger"
	agendaAppointments "agenda-service/internal/app/services/agenda/appointments"
	agendaExceptions "agenda-service/internal/app/services/agenda/exceptions"
	agendaSchedules "agenda-service/internal/app/services/agenda/schedules"
	agendaSlots "agenda-service/internal/app/services/agenda/slots"
	coreAppointments "agenda-service/internal/app/services/core/appointments"
	"agenda-service/internal/app/services/core/availability"
	"agenda-service/internal/app/services/shared/locker"
	sharedRedis "agenda-service/internal/app/services/shared/redis"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(&bootstrap, location)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Error during dependency shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, location *time.Location) {
	internalConfig := bootstrap.InternalConfig

	// Redis
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Agenda API clients
	agendaTimeout := time.Duration(internalConfig.Agenda.TimeoutInSeconds) * time.Second
	scheduleClient := agendaSchedules.NewScheduleAgendaClient(internalConfig.Agenda.BaseUrl, agendaTimeout)
	slotClient := agendaSlots.NewSlotAgendaClient(internalConfig.Agenda.BaseUrl, agendaTimeout)
	exceptionClient := agendaExceptions.NewExceptionAgendaClient(internalConfig.Agenda.BaseUrl, agendaTimeout)
	appointmentClient := agendaAppointments.NewAppointmentAgendaClient(internalConfig.Agenda.BaseUrl, agendaTimeout)

	// Middlewares
	appMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: internalConfig,
	}

	validate := validator.New()

	// Availability
	availabilityUsecase := availability.NewAvailabilityUsecase(
		scheduleClient,
		slotClient,
		exceptionClient,
		appointmentClient,
		redisRepository,
		internalConfig,
		bootstrap.Logger,
		location,
	)
	availabilityController := controllers.NewAvailabilityController(availabilityUsecase, bootstrap.Logger, validate)

	// Appointments
	appointmentUsecase := coreAppointments.NewAppointmentUsecase(
		appointmentClient,
		lockerService,
		internalConfig,
		bootstrap.Logger,
		location,
	)
	appointmentController := controllers.NewAppointmentController(appointmentUsecase, bootstrap.Logger, validate)

	// Cache warm worker
	if internalConfig.App.WarmWorkerEnabled {
		worker := availability.NewWorker(bootstrap.Logger, internalConfig, lockerService, scheduleClient, availabilityUsecase, location)
		worker.Start(context.Background())
		bootstrap.WarmWorkerStop = worker.Stop
	}

	routers.SetupRoutes(bootstrap.Router, internalConfig, appMiddlewares, availabilityController, appointmentController)
}
