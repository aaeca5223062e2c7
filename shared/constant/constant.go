package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySession contextKey = "session"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID         = "id"
	RequestParamSeatNumber = "seatNumber"
	RequestParamFileName   = "fileName"
	RequestParamSeatType   = "type"
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "departure_date"
	DefaultValueSortDir = "ASC"
)

// Wire formats exchanged with the bus management API.
const (
	DateFormat     = "02-01-2006"
	TimeFormat     = "15:04"
	DateTimeFormat = "2006-01-02T15:04:05"
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName  = "service"
	OtelHandlerScopeName  = "handler"
	OtelEventScopeName    = "event"
	OtelExternalScopeName = "external"
	OtelStorageScopeName  = "storage"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderContentDisposition = "Content-Disposition"
	RequestHeaderAccept             = "Accept"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON      = "application/json"
	ContentTypePDF       = "application/pdf"
	ContentTypeTextPlain = "text/plain"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	CacheKeyBuses    = "buses"
	CacheKeyDraft    = "draft"
	CacheKeyTransfer = "transfer"
	CacheKeyLock     = "lock"
	CacheKeyRevoked  = "revoked"
)

const (
	Asterix = "*"
	Empty   = ""
)
