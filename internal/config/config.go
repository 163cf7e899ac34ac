package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// OrderConfig holds order service configuration loaded from environment and flags.
type OrderConfig struct {
	RunAddress         string
	DatabaseURI        string
	UserServiceAddress string
	VerifyTimeout      time.Duration
	ReconcileInterval  time.Duration
	ReconcileBatch     int
	WorkerPoolSize     int
	ShutdownTimeout    time.Duration
	SeedDemoData       bool
}

// UserConfig holds user service configuration loaded from environment and flags.
type UserConfig struct {
	RunAddress      string
	DatabaseURI     string
	ShutdownTimeout time.Duration
	SeedDemoData    bool
}

const (
	defaultOrderRunAddress   = ":8081"
	defaultUserRunAddress    = ":8080"
	defaultVerifyTimeout     = 3 * time.Second
	defaultReconcileInterval = 30 * time.Second
	defaultReconcileBatch    = 32
	defaultWorkerPoolSize    = 4
	defaultShutdownTimeout   = 10 * time.Second
)

type envLookup func(string) (string, bool)

// LoadOrder parses order service configuration from flags and environment variables.
func LoadOrder() (*OrderConfig, error) {
	return loadOrder(os.Args[1:], os.LookupEnv)
}

func loadOrder(args []string, lookup envLookup) (*OrderConfig, error) {
	cfg := &OrderConfig{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultOrderRunAddress),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		UserServiceAddress: getString(lookup, "USER_SERVICE_ADDRESS", ""),
		VerifyTimeout:      getDuration(lookup, "VERIFY_TIMEOUT", defaultVerifyTimeout),
		ReconcileInterval:  getDuration(lookup, "RECONCILE_INTERVAL", defaultReconcileInterval),
		ReconcileBatch:     getInt(lookup, "RECONCILE_BATCH", defaultReconcileBatch),
		WorkerPoolSize:     getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		SeedDemoData:       getBool(lookup, "SEED_DEMO_DATA", false),
	}

	fs := flag.NewFlagSet("orderservice", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		verifyTimeoutStr     = cfg.VerifyTimeout.String()
		reconcileIntervalStr = cfg.ReconcileInterval.String()
		shutdownTimeoutStr   = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.UserServiceAddress, "u", cfg.UserServiceAddress, "User service base URL")
	fs.StringVar(&verifyTimeoutStr, "verify-timeout", verifyTimeoutStr, "Wait bound for user existence checks")
	fs.StringVar(&reconcileIntervalStr, "reconcile-interval", reconcileIntervalStr, "Interval between validation reconcile passes")
	fs.IntVar(&cfg.ReconcileBatch, "reconcile-batch", cfg.ReconcileBatch, "Maximum orders per reconcile batch")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent reconcile workers")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.BoolVar(&cfg.SeedDemoData, "seed", cfg.SeedDemoData, "Seed demo order data on startup")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.VerifyTimeout, err = time.ParseDuration(verifyTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid verify timeout: %w", err)
	}
	if cfg.ReconcileInterval, err = time.ParseDuration(reconcileIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid reconcile interval: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.VerifyTimeout <= 0 {
		cfg.VerifyTimeout = defaultVerifyTimeout
	}
	if cfg.ReconcileInterval <= 0 {
		cfg.ReconcileInterval = defaultReconcileInterval
	}
	if cfg.ReconcileBatch <= 0 {
		cfg.ReconcileBatch = defaultReconcileBatch
	}
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}
	if cfg.UserServiceAddress == "" {
		return nil, fmt.Errorf("user service address must be provided")
	}

	return cfg, nil
}

// LoadUser parses user service configuration from flags and environment variables.
func LoadUser() (*UserConfig, error) {
	return loadUser(os.Args[1:], os.LookupEnv)
}

func loadUser(args []string, lookup envLookup) (*UserConfig, error) {
	cfg := &UserConfig{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultUserRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		SeedDemoData:    getBool(lookup, "SEED_DEMO_DATA", false),
	}

	fs := flag.NewFlagSet("userservice", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.BoolVar(&cfg.SeedDemoData, "seed", cfg.SeedDemoData, "Seed demo user data on startup")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
