// Package config loads command configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more dotenv files into the process environment,
//     falling back to an optional ./.env.
//   - Load parses the environment into a struct using `env` field tags, with
//     an optional variable prefix.
//   - MustLoad panics on failure.
//
// # Usage
//
//	type Settings struct {
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
//	    Redis    struct {
//	        URL string `env:"REDIS_URL"`
//	    }
//	}
//
//	if err := config.LoadEnv(); err != nil {
//	    return err
//	}
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("FSMCTL_")); err != nil {
//	    return err
//	}
//
// Values already present in the environment take precedence over dotenv
// files.
package config
