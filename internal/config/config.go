// Package config provides runtime configuration values for the services.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration knobs for the cart server and the catalog
// simulator.
type Config struct {
	HTTPAddr        string
	RedisAddr       string
	CartKey         string
	CatalogURL      string
	CatalogTimeout  time.Duration
	NotifyBuffer    int
	ShutdownTimeout time.Duration

	CatalogAddr string
	MySQLDSN    string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		RedisAddr:       getenv("REDIS_ADDR", "localhost:6379"),
		CartKey:         getenv("CART_KEY", "storefront:cart"),
		CatalogURL:      getenv("CATALOG_URL", "http://localhost:8081"),
		CatalogTimeout:  durenvs("CATALOG_TIMEOUT", 10),
		NotifyBuffer:    atoienv("NOTIFY_BUFFER", 64),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 5),

		CatalogAddr: getenv("CATALOG_ADDR", ":8081"),
		MySQLDSN:    getenv("MYSQL_DSN", "root:root@tcp(localhost:3306)/storefront?parseTime=true"),
	}
}
