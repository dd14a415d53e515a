package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "accesspaper/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// SearchConfig holds settings for the outbound search backend.
type SearchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BackendURL is the base URL of the search backend; requests go to
	// BackendURL + "/api/search".
	BackendURL string `json:"backend_url" yaml:"backend_url" mapstructure:"backend_url"`
}

// LogBackend selects the document store behind the log endpoint.
type LogBackend string

const (
	LogBackendFirestore LogBackend = "firestore"
	LogBackendSQLite    LogBackend = "sqlite"
)

// LogStoreConfig holds settings for the log store.
type LogStoreConfig struct {
	// Backend selects firestore or sqlite.
	Backend LogBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Collection is the collection (Firestore) or table (SQLite) holding log records.
	Collection string `json:"collection" yaml:"collection" mapstructure:"collection"`

	// SQLitePath is the database file used by the sqlite backend.
	SQLitePath string `json:"sqlite_path" yaml:"sqlite_path" mapstructure:"sqlite_path"`
}

// UIConfig holds settings for the page and the UI controller.
type UIConfig struct {
	// ShowLogs renders the diagnostic log panel under the search bar.
	ShowLogs bool `json:"show_logs" yaml:"show_logs" mapstructure:"show_logs"`

	// SessionTTL is how long an idle browser session keeps its view state.
	SessionTTL time.Duration `json:"session_ttl" yaml:"session_ttl" mapstructure:"session_ttl"`
}

// ServerConfig holds settings for the web server.
type ServerConfig struct {
	// Addr is the listen address (e.g. ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// Debug switches gin into debug mode.
	Debug bool `json:"debug" yaml:"debug" mapstructure:"debug"`

	// ReadTimeout, WriteTimeout, and IdleTimeout bound the http.Server.
	ReadTimeout  time.Duration `json:"read_timeout" yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout" yaml:"idle_timeout" mapstructure:"idle_timeout"`
}

// LogConfig holds settings for the process logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// Config groups all accesspaper settings.
type Config struct {
	Server   ServerConfig   `json:"server" yaml:"server" mapstructure:"server"`
	Search   SearchConfig   `json:"search" yaml:"search" mapstructure:"search"`
	LogStore LogStoreConfig `json:"logstore" yaml:"logstore" mapstructure:"logstore"`
	UI       UIConfig       `json:"ui" yaml:"ui" mapstructure:"ui"`
	Log      LogConfig      `json:"log" yaml:"log" mapstructure:"log"`
}

// Defaults for Config fields left unset.
const (
	DefaultAddr         = ":8080"
	DefaultBackendURL   = "https://accesspaper-backend.fly.dev"
	DefaultUserAgent    = "accesspaper/0.1"
	DefaultCollection   = "logs"
	DefaultSQLitePath   = "accesspaper.db"
	DefaultSessionTTL   = 30 * time.Minute
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 2 * time.Minute
	DefaultIdleTimeout  = 60 * time.Second
)

// SetDefaults fills zero-valued fields with their defaults.
func (c *Config) SetDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = DefaultIdleTimeout
	}
	if c.Search.BackendURL == "" {
		c.Search.BackendURL = DefaultBackendURL
	}
	if c.Search.UserAgent == "" {
		c.Search.UserAgent = DefaultUserAgent
	}
	if c.LogStore.Backend == "" {
		c.LogStore.Backend = LogBackendFirestore
	}
	if c.LogStore.Collection == "" {
		c.LogStore.Collection = DefaultCollection
	}
	if c.LogStore.SQLitePath == "" {
		c.LogStore.SQLitePath = DefaultSQLitePath
	}
	if c.UI.SessionTTL == 0 {
		c.UI.SessionTTL = DefaultSessionTTL
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
