package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
)

const (
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
	DriverMongo    = "mongo"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	Storage struct {
		Driver  string `mapstructure:"driver"`
		SlotKey string `mapstructure:"slot_key"`
		FileDir string `mapstructure:"file_dir"`
	} `mapstructure:"storage"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Mongo struct {
		URI      string `mapstructure:"uri"`
		Database string `mapstructure:"database"`
	} `mapstructure:"mongo"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		Topic   string   `mapstructure:"topic"`
	} `mapstructure:"kafka"`
	IDs struct {
		Strategy string `mapstructure:"strategy"`
	} `mapstructure:"ids"`
}

// LoadConfig reads .env, then config.yaml from each path (default "."),
// then the environment. Later sources win.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if err = godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read env only. Error: %v", err)
	}

	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("storage.driver", DriverFile)
	v.SetDefault("storage.slot_key", portfolio.DefaultSlotKey)
	v.SetDefault("storage.file_dir", "data")
	v.SetDefault("redis.db", 0)
	v.SetDefault("mongo.database", "portfolio")
	v.SetDefault("kafka.topic", "portfolio.events")
	v.SetDefault("ids.strategy", "time")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("app.port", "APP_PORT")
	_ = v.BindEnv("app.env", "APP_ENV")
	_ = v.BindEnv("storage.driver", "STORAGE_DRIVER")
	_ = v.BindEnv("storage.slot_key", "STORAGE_SLOT_KEY")
	_ = v.BindEnv("storage.file_dir", "STORAGE_FILE_DIR")
	_ = v.BindEnv("db.dsn", "DB_DSN")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("redis.db", "REDIS_DB")
	_ = v.BindEnv("mongo.uri", "MONGO_URI")
	_ = v.BindEnv("mongo.database", "MONGO_DATABASE")
	_ = v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	_ = v.BindEnv("kafka.topic", "KAFKA_TOPIC")
	_ = v.BindEnv("ids.strategy", "IDS_STRATEGY")

	err = v.Unmarshal(&cfg)
	cfg.Kafka.Brokers = splitBrokers(cfg.Kafka.Brokers)
	return
}

// splitBrokers accepts both a YAML list and a comma-separated env value.
func splitBrokers(in []string) []string {
	out := []string{}
	for _, b := range in {
		for _, part := range strings.Split(b, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
