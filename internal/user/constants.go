package user

import "time"

// Display-name cache settings. The schema version is embedded in every cache
// key; bump it when the cached shape changes so stale entries miss.
const (
	CacheSchemaVersion = "1.0"
	DefaultCacheSize   = 1000
	DefaultCacheTTL    = 5 * time.Minute
)

// Environment variables overriding the cache defaults.
const (
	EnvUserCacheSize = "USER_CACHE_SIZE"
	EnvUserCacheTTL  = "USER_CACHE_TTL"
)

const (
	LogMsgRegisterUserCalled         = "RegisterUser called"
	LogMsgFindUserByPlatformIDCalled = "FindUserByPlatformID called"
	LogMsgUserRegistered             = "User registered"
	LogMsgUserAlreadyRegistered      = "User already registered"
	LogMsgUserFound                  = "User found"
	LogMsgUsernameUpdated            = "Username updated"
	LogMsgUserCacheHit               = "User cache hit"
	LogMsgFoundExistingUser          = "Found existing user"
	LogMsgAutoRegisteringUser        = "Auto-registering new user"
	LogMsgUserAutoRegistered         = "User auto-registered"
)

const (
	LogErrFailedToUpsertUser = "Failed to upsert user"
)
