package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr            string
	GinMode            string
	PaymentDelay       time.Duration
	CORSAllowedOrigins []string
}

// LoadEnv reads .env when present, then resolves the process
// configuration from environment variables with sane defaults.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	paymentDelay := 1500 * time.Millisecond
	if v := strings.TrimSpace(os.Getenv("PAYMENT_DELAY_MS")); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			paymentDelay = time.Duration(ms) * time.Millisecond
		} else {
			log.Printf("ignoring invalid PAYMENT_DELAY_MS=%q", v)
		}
	}

	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	return Env{
		AppAddr:            appAddr,
		GinMode:            ginMode,
		PaymentDelay:       paymentDelay,
		CORSAllowedOrigins: origins,
	}
}
