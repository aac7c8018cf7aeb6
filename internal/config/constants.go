package config

import "time"

// Refresh intervals. Defaults only; each can be overridden through the
// runtime configuration surface (see config.go).
const (
	WeatherInterval     = 10 * time.Minute
	TrainInterval       = 5 * time.Minute
	NewsInterval        = 15 * time.Minute
	QuoteInterval       = 30 * time.Minute
	AnniversaryInterval = 60 * time.Minute
	ClockInterval       = time.Second
	RoutineRollover     = time.Minute
)

// Per-attempt bound for a single fetch route.
const (
	FetchTimeout  = 10 * time.Second
	ScrapeTimeout = 15 * time.Second
	GeoTimeout    = 10 * time.Second
	GeoMaxPosAge  = 5 * time.Minute
)

// Settings keys. Each key is logically owned by exactly one component.
const (
	KeyCardOrder       = "cardOrder"
	KeyDarkMode        = "darkMode"
	KeyBackgroundImage = "backgroundImage"
	KeyTodaysPokemon   = "todaysPokemon"
	KeyNewsFavorites   = "newsFavorites"
	KeyNewsFilter      = "newsFilter"
	KeyLocations       = "locations"
	KeyCurrentLocation = "currentLocationId"
	KeyTasks           = "tasks"
	KeyRoutineItems    = "routineItems"
	KeyRoutineStreak   = "routineStreak"
	KeyPomodoro        = "pomodoroSettings"
)

// RoutineDayKey returns the settings key holding progress for one calendar day.
func RoutineDayKey(day string) string { return "routine-" + day }

// Database/application settings.
const (
	AppName    = "morning-dashboard"
	DBFileName = "dashboard.db"
)

// Pomodoro defaults.
const (
	DefaultWorkMinutes  = 25
	DefaultBreakMinutes = 5
)
