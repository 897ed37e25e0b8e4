package constants

type ContextKey string

const (
	AppKey         ContextKey = "app"
	PoolKey        ContextKey = "pool"
	LoggerKey      ContextKey = "logger"
	ParamsKey      ContextKey = "params"
	UserKey        ContextKey = "user"
	TenantIDKey    ContextKey = "tenantID"
	PageContext    ContextKey = "pageContext"
	NavItemsKey    ContextKey = "navItems"
	AllNavItemsKey ContextKey = "allNavItems"
	PrefsKey       ContextKey = "prefs"
)
