package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/robfig/cron/v3"
)

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	JWTSecret           string
	OutboxRelaySchedule string
	OutboxBatchSize     string
	AutoAssignEnabled   string
	AutoAssignSchedule  string
}

const (
	defaultOutboxRelaySchedule = "*/5 * * * * *"
	defaultOutboxBatchSize     = 100
	defaultAutoAssignSchedule  = "*/30 * * * * *"
)

// Validate reports every missing or malformed setting at once.
func (c Config) Validate() error {
	var errList []error
	required := []struct {
		key   string
		value string
	}{
		{"HTTP_PORT", c.HTTPPort},
		{"DB_HOST", c.DBHost},
		{"DB_PORT", c.DBPort},
		{"DB_USER", c.DBUser},
		{"DB_NAME", c.DBName},
		{"JWT_SECRET", c.JWTSecret},
	}
	for _, r := range required {
		if r.value == "" {
			errList = append(errList, fmt.Errorf("%s is required", r.key))
		}
	}

	if _, err := c.BatchSize(); err != nil {
		errList = append(errList, err)
	}
	if _, err := c.AutoAssign(); err != nil {
		errList = append(errList, err)
	}

	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	for key, spec := range map[string]string{
		"OUTBOX_RELAY_SCHEDULE": c.RelaySchedule(),
		"AUTO_ASSIGN_SCHEDULE":  c.AssignSchedule(),
	} {
		if _, err := parser.Parse(spec); err != nil {
			errList = append(errList, fmt.Errorf("%s: %w", key, err))
		}
	}
	return errors.Join(errList...)
}

// DSN builds the postgres connection string for gorm.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode,
	)
}

func (c Config) RelaySchedule() string {
	if c.OutboxRelaySchedule == "" {
		return defaultOutboxRelaySchedule
	}
	return c.OutboxRelaySchedule
}

func (c Config) AssignSchedule() string {
	if c.AutoAssignSchedule == "" {
		return defaultAutoAssignSchedule
	}
	return c.AutoAssignSchedule
}

func (c Config) BatchSize() (int, error) {
	if c.OutboxBatchSize == "" {
		return defaultOutboxBatchSize, nil
	}
	n, err := strconv.Atoi(c.OutboxBatchSize)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("OUTBOX_BATCH_SIZE must be a positive integer, got %q", c.OutboxBatchSize)
	}
	return n, nil
}

// AutoAssign reports whether the auto assignment job should run. It is off
// unless enabled explicitly.
func (c Config) AutoAssign() (bool, error) {
	if c.AutoAssignEnabled == "" {
		return false, nil
	}
	enabled, err := strconv.ParseBool(c.AutoAssignEnabled)
	if err != nil {
		return false, fmt.Errorf("AUTO_ASSIGN_ENABLED must be a boolean, got %q", c.AutoAssignEnabled)
	}
	return enabled, nil
}
