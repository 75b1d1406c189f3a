package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTAccessSecret    string
	JWTRefreshSecret   string
	JWTAccessTTLHours  int
	JWTRefreshTTLHours int

	// Seeded admin credentials
	AdminEmail    string
	AdminPassword string

	// Redis (rate limiter store; optional)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Razorpay keys (online payments; optional)
	RazorpayKey    string
	RazorpaySecret string

	// Kafka (announcement events; optional)
	KafkaBrokers string
	KafkaTopic   string

	// FCM (announcement push; optional)
	FCMCredentialsPath string
	FCMProjectID       string
	FCMTopic           string

	// Prayer time provider
	PrayerAPIBaseURL string
	PrayerLatitude   string
	PrayerLongitude  string
	PrayerMethod     string
	PrayerLocation   string
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	accessTTL, _ := strconv.Atoi(os.Getenv("JWT_ACCESS_TTL_HOURS"))
	refreshTTL, _ := strconv.Atoi(os.Getenv("JWT_REFRESH_TTL_HOURS"))
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	cfg := &Config{
		Port: os.Getenv("PORT"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		JWTAccessSecret:    os.Getenv("JWT_ACCESS_SECRET"),
		JWTRefreshSecret:   os.Getenv("JWT_REFRESH_SECRET"),
		JWTAccessTTLHours:  accessTTL,
		JWTRefreshTTLHours: refreshTTL,

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		RazorpayKey:    os.Getenv("RAZORPAY_KEY_ID"),
		RazorpaySecret: os.Getenv("RAZORPAY_KEY_SECRET"),

		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:   os.Getenv("KAFKA_ANNOUNCEMENT_TOPIC"),

		FCMCredentialsPath: os.Getenv("FCM_CREDENTIALS_PATH"),
		FCMProjectID:       os.Getenv("FCM_PROJECT_ID"),
		FCMTopic:           os.Getenv("FCM_ANNOUNCEMENT_TOPIC"),

		PrayerAPIBaseURL: os.Getenv("PRAYER_API_BASE_URL"),
		PrayerLatitude:   os.Getenv("PRAYER_LATITUDE"),
		PrayerLongitude:  os.Getenv("PRAYER_LONGITUDE"),
		PrayerMethod:     os.Getenv("PRAYER_CALC_METHOD"),
		PrayerLocation:   os.Getenv("PRAYER_LOCATION_LABEL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTAccessTTLHours == 0 {
		cfg.JWTAccessTTLHours = 24
	}
	if cfg.JWTRefreshTTLHours == 0 {
		cfg.JWTRefreshTTLHours = 168
	}
	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = "masjid.announcements"
	}
	if cfg.FCMTopic == "" {
		cfg.FCMTopic = "announcements"
	}

	// Aladhan defaults: Ripponpet coordinates, Umm al-Qura calculation method
	if cfg.PrayerAPIBaseURL == "" {
		cfg.PrayerAPIBaseURL = "http://api.aladhan.com"
	}
	if cfg.PrayerLatitude == "" {
		cfg.PrayerLatitude = "12.9715987"
	}
	if cfg.PrayerLongitude == "" {
		cfg.PrayerLongitude = "77.5945627"
	}
	if cfg.PrayerMethod == "" {
		cfg.PrayerMethod = "4"
	}
	if cfg.PrayerLocation == "" {
		cfg.PrayerLocation = "Ripponpet, Bangalore"
	}

	return cfg
}
