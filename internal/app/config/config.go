package config

import (
	"livwise-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "livwise"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:             utils.GetEnvString("MINIO_PORT", "9000"),
			Host:             utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:         utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:         utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:           utils.GetEnvBool("MINIO_USE_SSL", false),
			BucketName:       utils.GetEnvString("MINIO_BUCKET_NAME", "medical-records"),
			ExportBucketName: utils.GetEnvString("MINIO_EXPORT_BUCKET_NAME", "medical-records-exports"),
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
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			Address:         utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		Sync: Sync{
			RetentionDays:           utils.GetEnvInt("SYNC_RETENTION_DAYS", 2555),
			RequestTimeoutInSeconds: utils.GetEnvInt("SYNC_REQUEST_TIMEOUT_IN_SECONDS", 60),
			RecordCacheTTLInSeconds: utils.GetEnvInt("SYNC_RECORD_CACHE_TTL_IN_SECONDS", 300),
			BatchCompletedQueueName: utils.GetEnvString("SYNC_BATCH_COMPLETED_QUEUE", "livwise.sync.batch-completed"),
			ExportIntervalInHours:   utils.GetEnvInt("EXPORT_INTERVAL_IN_HOURS", 24),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
	}
}
