package configuration

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/fmstack/fmstack/pkg/logging"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		c.Unload()
		panic(err)
	}
	return c
})

// LoadEnv loads whichever of the given env files exist, searching upward from
// the working directory to the module root so tests run from subpackages still
// pick up the repo-level .env.
func LoadEnv(envFiles []string) (int, error) {
	existingFiles := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if resolved, ok := resolveEnvFile(file); ok {
			existingFiles = append(existingFiles, resolved)
		}
	}

	if len(existingFiles) == 0 {
		return 0, nil
	}

	return len(existingFiles), godotenv.Load(existingFiles...)
}

func resolveEnvFile(file string) (string, bool) {
	if fileExists(file) {
		return file, true
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", false
	}
	if root, ok := findGoModRoot(wd); ok {
		candidate := filepath.Join(root, file)
		if fileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func findGoModRoot(dir string) (string, bool) {
	for {
		if fileExists(filepath.Join(dir, "go.mod")) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

type DatabaseOptions struct {
	Opts     string `env:"-"`
	Name     string `env:"DB_NAME" envDefault:"fmstack"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
}

func (d *DatabaseOptions) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Name, d.Password,
	)
}

type OpenTelemetryOptions struct {
	Enabled     bool   `env:"OTEL_ENABLED" envDefault:"false"`
	TempoURL    string `env:"OTEL_TEMPO_URL" envDefault:"localhost:4318"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"fmstack"`
}

type PrometheusOptions struct {
	Enabled bool   `env:"PROMETHEUS_METRICS_ENABLED" envDefault:"false"`
	Path    string `env:"PROMETHEUS_METRICS_PATH" envDefault:"/debug/prometheus"`
}

type RateLimitOptions struct {
	Enabled   bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	GlobalRPS int  `env:"RATE_LIMIT_GLOBAL_RPS" envDefault:"1000"`
}

func (r *RateLimitOptions) Validate() error {
	if r.GlobalRPS < 0 {
		return fmt.Errorf("rate limit GlobalRPS must be non-negative, got %d", r.GlobalRPS)
	}
	if r.GlobalRPS > 1000000 {
		return fmt.Errorf("rate limit GlobalRPS too high, maximum is 1,000,000, got %d", r.GlobalRPS)
	}
	return nil
}

// NavigationOptions carries the deployment-specific pieces of the landing-route
// fallback chain. The rule shapes live in pkg/navigation; the concrete hosts and
// tenant IDs here are deployment data, not design intent.
type NavigationOptions struct {
	// Hostnames (comma-separated) treated as development/staging deployments.
	DevHosts string `env:"NAV_DEV_HOSTS" envDefault:"localhost,dev.fmstack.local,staging.fmstack.local"`
	// Tenant IDs (comma-separated UUIDs) that re-attempt the permission walk
	// before falling back to a fixed default.
	TenantAllowlist string `env:"NAV_TENANT_ALLOWLIST" envDefault:""`
	// Hostname-substring routing table, comma-separated host=route pairs
	// (e.g. "vendors.=/gate-passes"). Consulted after the allowlist rule.
	HostRoutes string `env:"NAV_HOST_ROUTES" envDefault:""`
	// Final catch-all landing route. Must never be empty.
	DefaultRoute string `env:"NAV_DEFAULT_ROUTE" envDefault:"/assets"`
}

// HostRoutePair is one parsed NAV_HOST_ROUTES entry.
type HostRoutePair struct {
	HostContains string
	Route        string
}

func (n *NavigationOptions) DevHostList() []string {
	return splitCSV(n.DevHosts)
}

func (n *NavigationOptions) TenantAllowlistIDs() []uuid.UUID {
	parts := splitCSV(n.TenantAllowlist)
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		if id, err := uuid.Parse(part); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func (n *NavigationOptions) HostRoutePairs() []HostRoutePair {
	parts := splitCSV(n.HostRoutes)
	pairs := make([]HostRoutePair, 0, len(parts))
	for _, part := range parts {
		host, route, ok := strings.Cut(part, "=")
		host = strings.TrimSpace(host)
		route = strings.TrimSpace(route)
		if !ok || host == "" || !strings.HasPrefix(route, "/") {
			continue
		}
		pairs = append(pairs, HostRoutePair{HostContains: host, Route: route})
	}
	return pairs
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

type Configuration struct {
	Database      DatabaseOptions
	OpenTelemetry OpenTelemetryOptions
	Prometheus    PrometheusOptions
	RateLimit     RateLimitOptions
	Navigation    NavigationOptions

	ServerPort       int           `env:"PORT" envDefault:"3200"`
	SessionDuration  time.Duration `env:"SESSION_DURATION" envDefault:"720h"`
	GoAppEnvironment string        `env:"GO_APP_ENV" envDefault:"development"`
	SocketAddress    string        `env:"-"`
	Domain           string        `env:"DOMAIN" envDefault:"localhost"`
	PageSize         int           `env:"PAGE_SIZE" envDefault:"10"`
	MaxPageSize      int           `env:"MAX_PAGE_SIZE" envDefault:"100"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"error"`
	LogPath          string        `env:"LOG_PATH" envDefault:"./logs/app.log"`
	// The server looks for this header in the request; if it's not present, it
	// generates a random uuidv4.
	RequestIDHeader string `env:"REQUEST_ID_HEADER" envDefault:"X-Request-ID"`
	// The server looks for this header in the request; if it's not present, it
	// uses request.RemoteAddr.
	RealIPHeader string `env:"REAL_IP_HEADER" envDefault:"X-Real-IP"`

	logFile *os.File
	logger  *logrus.Logger
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch c.LogLevel {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}

func (c *Configuration) Scheme() string {
	if c.GoAppEnvironment == Production { // assume 'https' on production mode
		return "https"
	}
	return "http"
}

func Use() *Configuration {
	return singleton()
}

func (c *Configuration) load(envFiles []string) error {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return err
	}
	if n == 0 {
		wd, _ := os.Getwd()
		log.Println("No .env files found. Tried:")
		for _, file := range envFiles {
			log.Println(filepath.Join(wd, file))
		}
	}
	if err := env.Parse(c); err != nil {
		return err
	}

	if err := c.RateLimit.Validate(); err != nil {
		return fmt.Errorf("rate limit configuration error: %w", err)
	}
	if err := c.validateNavigation(); err != nil {
		return err
	}

	f, logger, err := logging.FileLogger(c.LogrusLogLevel(), c.LogPath)
	if err != nil {
		return err
	}
	c.logFile = f
	c.logger = logger

	c.Database.Opts = c.Database.ConnectionString()
	if c.GoAppEnvironment == Production {
		c.SocketAddress = fmt.Sprintf(":%d", c.ServerPort)
	} else {
		c.SocketAddress = fmt.Sprintf("localhost:%d", c.ServerPort)
	}

	return nil
}

func (c *Configuration) validateNavigation() error {
	route := strings.TrimSpace(c.Navigation.DefaultRoute)
	if route == "" || !strings.HasPrefix(route, "/") {
		return fmt.Errorf("invalid NAV_DEFAULT_ROUTE=%q (expected an absolute path)", c.Navigation.DefaultRoute)
	}
	c.Navigation.DefaultRoute = route

	raw := strings.TrimSpace(c.Navigation.TenantAllowlist)
	if raw != "" {
		for _, part := range splitCSV(raw) {
			if _, err := uuid.Parse(part); err != nil {
				return fmt.Errorf("invalid NAV_TENANT_ALLOWLIST entry=%q: %w", part, err)
			}
		}
	}

	for _, part := range splitCSV(c.Navigation.HostRoutes) {
		host, hostRoute, ok := strings.Cut(part, "=")
		if !ok || strings.TrimSpace(host) == "" || !strings.HasPrefix(strings.TrimSpace(hostRoute), "/") {
			return fmt.Errorf("invalid NAV_HOST_ROUTES entry=%q (expected host=/route)", part)
		}
	}
	return nil
}

// Unload handles a graceful shutdown.
func (c *Configuration) Unload() {
	if c.logFile != nil {
		if err := c.logFile.Close(); err != nil {
			log.Printf("Failed to close log file: %v", err)
		}
	}
}
