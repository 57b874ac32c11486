package config

import (
	"os"
	"strconv"
	"strings"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	// OwnerAccount holds contract-owner authority: token creation, the
	// pause switch, and blacklist edits.
	OwnerAccount string

	// MemoLimitBytes bounds the memo on value-moving operations.
	MemoLimitBytes int

	// EnableIssueCeilingRaise lets an issue beyond max_supply lift the
	// ceiling to match instead of rejecting.
	EnableIssueCeilingRaise bool

	// EnableBurnCeilingShrink lowers max_supply in lockstep when burning.
	EnableBurnCeilingShrink bool
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "stablecoin"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	owner := strings.TrimSpace(os.Getenv("LEDGER_OWNER_ACCOUNT"))
	if owner == "" {
		owner = "ledger.owner"
	}

	memoLimit := 256
	if raw := strings.TrimSpace(os.Getenv("LEDGER_MEMO_LIMIT_BYTES")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			memoLimit = parsed
		}
	}

	return Config{
		ServiceName:    service,
		HTTPPort:       port,
		PostgresDSN:    os.Getenv("POSTGRES_DSN"),
		OwnerAccount:   owner,
		MemoLimitBytes: memoLimit,

		EnableIssueCeilingRaise: envBool("LEDGER_ISSUE_CEILING_RAISE", true),
		EnableBurnCeilingShrink: envBool("LEDGER_BURN_CEILING_SHRINK", true),
	}, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
