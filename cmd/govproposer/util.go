package main

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cast"

	"github.com/smartcontractkit/govproposer"
	"github.com/smartcontractkit/govproposer/internal/utils/safecast"
	"github.com/smartcontractkit/govproposer/types"
)

// envConfig is read from the process environment, after the optional .env file is loaded.
type envConfig struct {
	ProxyKey          string  `envconfig:"GOV_PROXY_KEY" required:"true"`
	TechCommThreshold *string `envconfig:"GOV_TECH_COMM_THRESHOLD"`
	ReferendumDelay   *string `envconfig:"GOV_REFERENDUM_DELAY"`
	ProxyAddress      *string `envconfig:"GOV_PROXY_ADDRESS"`
}

// loadEnv loads envFile into the environment, without overriding variables that are already set,
// and processes the governance variables. A missing envFile is not an error.
func loadEnv(envFile string) (envConfig, error) {
	var env envConfig

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return env, govproposer.NewUsageError("failed to load %s: %v", envFile, err)
		}
	}

	if err := envconfig.Process("", &env); err != nil {
		return env, govproposer.NewUsageError("%v", err)
	}

	return env, nil
}

// configOverrides holds the values set on the command line. Nil fields are not set.
type configOverrides struct {
	TechCommThreshold *uint32
	ReferendumDelay   *uint32
	ProxyAddress      *string
}

// resolveConfig applies env and then flags on top of the defaults.
func resolveConfig(env envConfig, flags configOverrides) (govproposer.Config, error) {
	cfg := govproposer.DefaultConfig()

	if env.TechCommThreshold != nil {
		v, err := parseUint32(*env.TechCommThreshold)
		if err != nil {
			return cfg, govproposer.NewUsageError("invalid GOV_TECH_COMM_THRESHOLD: %v", err)
		}
		cfg.TechCommThreshold = v
	}
	if env.ReferendumDelay != nil {
		v, err := parseUint32(*env.ReferendumDelay)
		if err != nil {
			return cfg, govproposer.NewUsageError("invalid GOV_REFERENDUM_DELAY: %v", err)
		}
		cfg.ReferendumDelay = v
	}
	proxy := env.ProxyAddress

	if flags.TechCommThreshold != nil {
		cfg.TechCommThreshold = *flags.TechCommThreshold
	}
	if flags.ReferendumDelay != nil {
		cfg.ReferendumDelay = *flags.ReferendumDelay
	}
	if flags.ProxyAddress != nil {
		proxy = flags.ProxyAddress
	}

	if proxy != nil {
		id, err := types.ParseAccountID(*proxy)
		if err != nil {
			return cfg, govproposer.NewUsageError("invalid proxy address: %v", err)
		}
		cfg.ProxyAddress = id
	}

	if err := cfg.Validate(); err != nil {
		return cfg, govproposer.NewUsageError("invalid configuration: %v", err)
	}

	return cfg, nil
}

// parseUint32 parses a decimal or 0x-prefixed number that must fit in a uint32.
func parseUint32(s string) (uint32, error) {
	v, err := cast.ToUint64E(s)
	if err != nil {
		return 0, err
	}

	return safecast.Uint64ToUint32(v)
}
