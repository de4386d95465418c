package config

import (
	"agenda-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                     utils.GetEnvString("APP_ENV", "development"),
			Port:                    utils.GetEnvString("APP_PORT", ":8080"),
			Version:                 utils.GetEnvString("APP_VERSION", "v1"),
			Address:                 utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
			EndpointPrefix:          utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:             utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:         utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			DefaultSlotMinutes:      utils.GetEnvInt("APP_DEFAULT_SLOT_MINUTES", 30),
			LeadTimeBufferMinutes:   utils.GetEnvInt("APP_LEAD_TIME_BUFFER_MINUTES", 30),
			AppointmentsFailClosed:  utils.GetEnvBool("APP_APPOINTMENTS_FAIL_CLOSED", false),
			AvailabilityCacheTTLSec: utils.GetEnvInt("APP_AVAILABILITY_CACHE_TTL_IN_SECONDS", 60),
			WarmWindowDays:          utils.GetEnvInt("APP_WARM_WINDOW_DAYS", 7),
			WarmWorkerCronSpec:      utils.GetEnvString("APP_WARM_WORKER_CRON_SPEC", "@hourly"),
			WarmWorkerEnabled:       utils.GetEnvBool("APP_WARM_WORKER_ENABLED", false),
			WarmAppointmentTypes:    utils.GetEnvStringSlice("APP_WARM_APPOINTMENT_TYPES", ","),
		},
		Agenda: Agenda{
			BaseUrl:          utils.GetEnvString("AGENDA_BASE_URL", "http://localhost:5555/api"),
			TimeoutInSeconds: utils.GetEnvInt("AGENDA_TIMEOUT_IN_SECONDS", 10),
		},
	}
}
