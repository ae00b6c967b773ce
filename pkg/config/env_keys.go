package config

const (
	// EnvPrefix namespaces all service environment variables.
	EnvPrefix = "feedstore"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv  = "FEEDSTORE_APP_ENV"
	EnvAppPort = "FEEDSTORE_APP_PORT"

	EnvDBDSN  = "FEEDSTORE_DB_DSN"
	EnvDBHost = "FEEDSTORE_DB_HOST"
	EnvDBUser = "FEEDSTORE_DB_USER"
	EnvDBName = "FEEDSTORE_DB_NAME"

	EnvRedisURL = "FEEDSTORE_REDIS_URL"

	EnvAdminToken = "FEEDSTORE_ADMIN_TOKEN"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
