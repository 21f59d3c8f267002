package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// lookup reads key from the environment or the config file and parses it.
// Missing keys yield fallback.
func lookup[T any](key string, fallback T, parse func(string) (T, error)) (T, error) {
	raw := strings.TrimSpace(valueForKey(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := parse(raw)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(valueForKey(key)); value != "" {
		return value
	}
	return fallback
}

func envPubkey(key string, fallback solana.PublicKey) (solana.PublicKey, error) {
	return lookup(key, fallback, solana.PublicKeyFromBase58)
}

func envCommitment(key string, fallback rpc.CommitmentType) (rpc.CommitmentType, error) {
	return lookup(key, fallback, func(raw string) (rpc.CommitmentType, error) {
		switch c := rpc.CommitmentType(strings.ToLower(raw)); c {
		case rpc.CommitmentProcessed, rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
			return c, nil
		}
		return "", fmt.Errorf("%q (expected processed|confirmed|finalized)", raw)
	})
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	return lookup(key, fallback, func(raw string) (time.Duration, error) {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return 0, err
		}
		if d <= 0 {
			return 0, fmt.Errorf("must be > 0")
		}
		return d, nil
	})
}

// envInt accepts positive values only.
func envInt(key string, fallback int) (int, error) {
	return lookup(key, fallback, func(raw string) (int, error) {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, err
		}
		if v <= 0 {
			return 0, fmt.Errorf("must be > 0")
		}
		return v, nil
	})
}

func envUint64(key string, fallback uint64) (uint64, error) {
	return lookup(key, fallback, func(raw string) (uint64, error) {
		return strconv.ParseUint(raw, 10, 64)
	})
}

func envUint32(key string, fallback uint32) (uint32, error) {
	return lookup(key, fallback, func(raw string) (uint32, error) {
		v, err := strconv.ParseUint(raw, 10, 32)
		return uint32(v), err
	})
}

func envOptionalUint(key string) (*uint, error) {
	return lookup[*uint](key, nil, func(raw string) (*uint, error) {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		out := uint(v)
		return &out, nil
	})
}

func envBool(key string, fallback bool) (bool, error) {
	return lookup(key, fallback, strconv.ParseBool)
}

func parseCSVEnv(raw string, fallback []string) []string {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if value := strings.TrimSpace(part); value != "" {
			out = append(out, value)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func expandHomePath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/")), nil
}
