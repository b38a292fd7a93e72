package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is read once at startup and passed down explicitly.
type Config struct {
	Port string

	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	UseUnixSocket  bool
	InstanceConnID string // Cloud SQL instance connection name

	JWTSecret string
	JWTExpiry time.Duration

	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string

	OCRServiceURL string
	NewsAPIURL    string

	AWSRegion     string
	S3Bucket      string
	CloudfrontURL string
	SESEmail      string

	RedisAddr     string
	RedisPassword string
}

const defaultNewsURL = "https://berita-indo-api-next.vercel.app/api/zetizen-jawapos-news/food-and-traveling"

func Load() *Config {
	return &Config{
		Port:           getenv("PORT", "8080"),
		DBHost:         os.Getenv("DATABASE_HOST"),
		DBPort:         getenv("DATABASE_PORT", "5432"),
		DBUser:         os.Getenv("DATABASE_USERNAME"),
		DBPassword:     os.Getenv("DATABASE_PASSWORD"),
		DBName:         os.Getenv("DATABASE_NAME"),
		UseUnixSocket:  getenvBool("USE_UNIX_SOCKET"),
		InstanceConnID: os.Getenv("INSTANCE_CONNECTION_NAME"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTExpiry: 72 * time.Hour,

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleCallbackURL:  os.Getenv("GOOGLE_CALLBACK_URL"),

		OCRServiceURL: os.Getenv("OCR_SERVICE"),
		NewsAPIURL:    getenv("NEWS_API_URL", defaultNewsURL),

		AWSRegion:     os.Getenv("AWS_REGION"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		CloudfrontURL: os.Getenv("CLOUDFRONT_URL"),
		SESEmail:      os.Getenv("SES_EMAIL"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}
}

// DSN builds the Postgres connection string. When USE_UNIX_SOCKET is set
// the host is the Cloud SQL socket path instead of host/port.
func (c *Config) DSN() string {
	if c.UseUnixSocket {
		return fmt.Sprintf("host=/cloudsql/%s user=%s password=%s dbname=%s sslmode=disable",
			c.InstanceConnID, c.DBUser, c.DBPassword, c.DBName)
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}
