package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the three binaries read from the environment.
// Each binary validates only the section it actually needs.
type Config struct {
	Web     WebConfig
	Webhook WebhookConfig
	Notify  NotifyConfig

	Shopify ShopifyConfig
	DB      DBConfig
	Redis   RedisConfig
	SMTP    SMTPConfig
	Email   EmailConfig
}

type WebConfig struct {
	Addr         string // e.g. ":8080"
	CartSecret   []byte // signs the cart-id cookie
	SecureCookie bool
}

type WebhookConfig struct {
	Addr          string
	SharedSecret  []byte // Shopify webhook HMAC secret
	NotifyURL     string // dispatcher endpoint, e.g. http://notify:8082/send-order-email
	NotifyToken   string // bearer token for the dispatcher
	OutboxTick    time.Duration
	OutboxBatch   int
	OutboxRetries int
}

type NotifyConfig struct {
	Addr        string
	BearerToken string
}

type ShopifyConfig struct {
	StoreDomain string // e.g. next-shop-apex-c8kgm.myshopify.com
	APIVersion  string // e.g. 2024-04
	Token       string // storefront access token
	Timeout     time.Duration
}

type DBConfig struct {
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SMTPConfig struct {
	Host          string
	Port          string
	User          string
	Pass          string
	TLSMode       string // "", "tls", "starttls"
	SkipVerifyTLS bool
}

type EmailConfig struct {
	Provider  string // "smtp" or "api"
	APIURL    string
	APIKey    string
	FromAddr  string
	FromName  string
}

// Load reads the full configuration from the environment. Required values are
// validated per binary via the Require* methods, not here, so tools can load
// a partial environment.
func Load() Config {
	return Config{
		Web: WebConfig{
			Addr:         envDefault("WEB_ADDR", ":8080"),
			CartSecret:   []byte(os.Getenv("CART_COOKIE_SECRET")),
			SecureCookie: envBool("COOKIE_SECURE"),
		},
		Webhook: WebhookConfig{
			Addr:          envDefault("WEBHOOK_ADDR", ":8081"),
			SharedSecret:  []byte(os.Getenv("SHOPIFY_WEBHOOK_SECRET")),
			NotifyURL:     os.Getenv("NOTIFY_URL"),
			NotifyToken:   os.Getenv("NOTIFY_TOKEN"),
			OutboxTick:    envDuration("OUTBOX_TICK", 5*time.Second),
			OutboxBatch:   envInt("OUTBOX_BATCH", 50),
			OutboxRetries: envInt("OUTBOX_MAX_ATTEMPTS", 5),
		},
		Notify: NotifyConfig{
			Addr:        envDefault("NOTIFY_ADDR", ":8082"),
			BearerToken: os.Getenv("NOTIFY_TOKEN"),
		},
		Shopify: ShopifyConfig{
			StoreDomain: os.Getenv("SHOPIFY_STORE_DOMAIN"),
			APIVersion:  envDefault("SHOPIFY_API_VERSION", "2024-04"),
			Token:       os.Getenv("SHOPIFY_STOREFRONT_TOKEN"),
			Timeout:     envDuration("SHOPIFY_TIMEOUT", 10*time.Second),
		},
		DB: DBConfig{DSN: os.Getenv("DB_DSN")},
		Redis: RedisConfig{
			Addr:     envDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envInt("REDIS_DB", 0),
		},
		SMTP: SMTPConfig{
			Host:          os.Getenv("SMTP_HOST"),
			Port:          envDefault("SMTP_PORT", "587"),
			User:          os.Getenv("SMTP_USER"),
			Pass:          os.Getenv("SMTP_PASS"),
			TLSMode:       os.Getenv("SMTP_TLS_MODE"),
			SkipVerifyTLS: envBool("SMTP_SKIP_VERIFY_TLS"),
		},
		Email: EmailConfig{
			Provider: envDefault("EMAIL_PROVIDER", "api"),
			APIURL:   os.Getenv("EMAIL_API_URL"),
			APIKey:   os.Getenv("EMAIL_API_KEY"),
			FromAddr: envDefault("EMAIL_FROM", "orders@localhost"),
			FromName: envDefault("EMAIL_FROM_NAME", "Orders"),
		},
	}
}

// RequireWeb fails when the storefront server is missing its mandatory env.
func (c Config) RequireWeb() error {
	return missing(map[string]bool{
		"SHOPIFY_STORE_DOMAIN":     c.Shopify.StoreDomain == "",
		"SHOPIFY_STOREFRONT_TOKEN": c.Shopify.Token == "",
		"CART_COOKIE_SECRET":       len(c.Web.CartSecret) == 0,
		"DB_DSN":                   c.DB.DSN == "",
	})
}

// RequireWebhook fails when the ingestor is missing its mandatory env.
func (c Config) RequireWebhook() error {
	return missing(map[string]bool{
		"SHOPIFY_WEBHOOK_SECRET": len(c.Webhook.SharedSecret) == 0,
		"DB_DSN":                 c.DB.DSN == "",
		"NOTIFY_URL":             c.Webhook.NotifyURL == "",
	})
}

// RequireNotify fails when the dispatcher is missing its mandatory env.
func (c Config) RequireNotify() error {
	req := map[string]bool{
		"NOTIFY_TOKEN": c.Notify.BearerToken == "",
	}
	switch c.Email.Provider {
	case "smtp":
		req["SMTP_HOST"] = c.SMTP.Host == ""
	default:
		req["EMAIL_API_URL"] = c.Email.APIURL == ""
		req["EMAIL_API_KEY"] = c.Email.APIKey == ""
	}
	return missing(req)
}

func missing(checks map[string]bool) error {
	var names []string
	for name, absent := range checks {
		if absent {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)
	return fmt.Errorf("missing required environment: %s", strings.Join(names, ", "))
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
