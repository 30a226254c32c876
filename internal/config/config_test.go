package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("CART_KEY", "")
	t.Setenv("CATALOG_URL", "")
	t.Setenv("CATALOG_TIMEOUT", "")
	t.Setenv("NOTIFY_BUFFER", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")
	c := Load()
	if c.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr default")
	}
	if c.RedisAddr != "localhost:6379" {
		t.Fatalf("RedisAddr default")
	}
	if c.CartKey != "storefront:cart" {
		t.Fatalf("CartKey default")
	}
	if c.CatalogURL != "http://localhost:8081" {
		t.Fatalf("CatalogURL default")
	}
	if c.CatalogTimeout != 10*time.Second {
		t.Fatalf("CatalogTimeout default")
	}
	if c.NotifyBuffer != 64 {
		t.Fatalf("NotifyBuffer default")
	}
	if c.ShutdownTimeout != 5*time.Second {
		t.Fatalf("ShutdownTimeout default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("CART_KEY", "other:cart")
	t.Setenv("CATALOG_URL", "http://catalog:9001")
	t.Setenv("CATALOG_TIMEOUT", "3")
	t.Setenv("NOTIFY_BUFFER", "8")
	t.Setenv("SHUTDOWN_TIMEOUT", "2")
	c := Load()
	if c.HTTPAddr != ":9090" {
		t.Fatalf("HTTPAddr env")
	}
	if c.RedisAddr != "redis:6380" {
		t.Fatalf("RedisAddr env")
	}
	if c.CartKey != "other:cart" {
		t.Fatalf("CartKey env")
	}
	if c.CatalogURL != "http://catalog:9001" {
		t.Fatalf("CatalogURL env")
	}
	if c.CatalogTimeout != 3*time.Second {
		t.Fatalf("CatalogTimeout env")
	}
	if c.NotifyBuffer != 8 {
		t.Fatalf("NotifyBuffer env")
	}
	if c.ShutdownTimeout != 2*time.Second {
		t.Fatalf("ShutdownTimeout env")
	}
}

func TestLoadInvalidNumberFallsBack(t *testing.T) {
	t.Setenv("NOTIFY_BUFFER", "not-a-number")
	c := Load()
	if c.NotifyBuffer != 64 {
		t.Fatalf("expected default on invalid number, got %d", c.NotifyBuffer)
	}
}
