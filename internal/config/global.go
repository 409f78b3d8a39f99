package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"guild-service/internal/utils/runtime"
	"strings"
)

const (
	kafkaHostFlag     = "kafka-host"
	kafkaPortFlag     = "kafka-port"
	mongoDBURIFlag    = "mongodb-uri"
	redisAddrFlag     = "redis-addr"
	redisPasswordFlag = "redis-password"
	redisDBFlag       = "redis-db"
	developmentFlag   = "development"
	grpcPortFlag      = "port"
	httpPortFlag      = "http-port"

	restrictReviewFlag = "restrict-application-review"
	casAttemptsFlag    = "cas-max-attempts"
)

type Config struct {
	Kafka   KafkaConfig
	MongoDB MongoDBConfig
	Redis   RedisConfig
	Guild   GuildConfig

	Development bool

	GRPCPort int
	HTTPPort int
}

type KafkaConfig struct {
	Host string
	Port int
}

type MongoDBConfig struct {
	URI string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type GuildConfig struct {
	// RestrictApplicationReview limits listing, approving and declining join requests
	// to Masters and SubMasters. When false any member may review applications.
	RestrictApplicationReview bool

	// CASMaxAttempts bounds how many times a guild object read-modify-write is retried
	// after losing a version race.
	CASMaxAttempts int
}

func LoadGlobalConfig() (*Config, error) {
	viper.SetDefault(kafkaHostFlag, "localhost")
	viper.SetDefault(kafkaPortFlag, 9092)
	viper.SetDefault(mongoDBURIFlag, "mongodb://localhost:27017")
	viper.SetDefault(redisAddrFlag, "localhost:6379")
	viper.SetDefault(redisPasswordFlag, "")
	viper.SetDefault(redisDBFlag, 0)
	viper.SetDefault(developmentFlag, true)
	viper.SetDefault(grpcPortFlag, 10010)
	viper.SetDefault(httpPortFlag, 8080)
	viper.SetDefault(restrictReviewFlag, false)
	viper.SetDefault(casAttemptsFlag, 5)

	pflag.String(kafkaHostFlag, viper.GetString(kafkaHostFlag), "Kafka host")
	pflag.Int32(kafkaPortFlag, viper.GetInt32(kafkaPortFlag), "Kafka port")
	pflag.String(mongoDBURIFlag, viper.GetString(mongoDBURIFlag), "MongoDB URI")
	pflag.String(redisAddrFlag, viper.GetString(redisAddrFlag), "Redis address")
	pflag.String(redisPasswordFlag, viper.GetString(redisPasswordFlag), "Redis password")
	pflag.Int32(redisDBFlag, viper.GetInt32(redisDBFlag), "Redis database")
	pflag.Bool(developmentFlag, viper.GetBool(developmentFlag), "Development mode")
	pflag.Int32(grpcPortFlag, viper.GetInt32(grpcPortFlag), "gRPC port")
	pflag.Int32(httpPortFlag, viper.GetInt32(httpPortFlag), "HTTP gateway port")
	pflag.Bool(restrictReviewFlag, viper.GetBool(restrictReviewFlag), "Only Masters and SubMasters may review join requests")
	pflag.Int32(casAttemptsFlag, viper.GetInt32(casAttemptsFlag), "Attempts for guild object compare-and-swap writes")
	pflag.Parse()

	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		return nil, err
	}

	// Bind the viper flags to environment variables
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	runtime.Must(viper.BindEnv(kafkaHostFlag))
	runtime.Must(viper.BindEnv(kafkaPortFlag))
	runtime.Must(viper.BindEnv(mongoDBURIFlag))
	runtime.Must(viper.BindEnv(redisAddrFlag))
	runtime.Must(viper.BindEnv(redisPasswordFlag))
	runtime.Must(viper.BindEnv(redisDBFlag))
	runtime.Must(viper.BindEnv(developmentFlag))
	runtime.Must(viper.BindEnv(grpcPortFlag))
	runtime.Must(viper.BindEnv(httpPortFlag))
	runtime.Must(viper.BindEnv(restrictReviewFlag))
	runtime.Must(viper.BindEnv(casAttemptsFlag))

	return &Config{
		Kafka: KafkaConfig{
			Host: viper.GetString(kafkaHostFlag),
			Port: int(viper.GetInt32(kafkaPortFlag)),
		},
		MongoDB: MongoDBConfig{
			URI: viper.GetString(mongoDBURIFlag),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString(redisAddrFlag),
			Password: viper.GetString(redisPasswordFlag),
			DB:       int(viper.GetInt32(redisDBFlag)),
		},
		Guild: GuildConfig{
			RestrictApplicationReview: viper.GetBool(restrictReviewFlag),
			CASMaxAttempts:            int(viper.GetInt32(casAttemptsFlag)),
		},
		Development: viper.GetBool(developmentFlag),
		GRPCPort:    int(viper.GetInt32(grpcPortFlag)),
		HTTPPort:    int(viper.GetInt32(httpPortFlag)),
	}, nil
}
