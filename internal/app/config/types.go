package config

type (
	InternalConfig struct {
		App    App
		Agenda Agenda
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	App struct {
		Env                     string
		Port                    string
		Version                 string
		Address                 string
		Timezone                string
		EndpointPrefix          string
		MaxRequests             int
		ShutdownTimeout         int
		DefaultSlotMinutes      int
		LeadTimeBufferMinutes   int
		AppointmentsFailClosed  bool
		AvailabilityCacheTTLSec int
		WarmWindowDays          int
		WarmWorkerCronSpec      string
		WarmWorkerEnabled       bool
		WarmAppointmentTypes    []string
	}

	// Agenda holds the connection settings of the remote agenda data API that owns
	// schedules, slots, exceptions and appointments.
	Agenda struct {
		BaseUrl          string
		TimeoutInSeconds int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
