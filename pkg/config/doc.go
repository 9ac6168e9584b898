// Package config loads typed configuration from the process environment.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tags) and caches one parsed value per
// configuration type, so repeated Load calls are cheap and consistent:
//
//	type Settings struct {
//	    OutputDir string `env:"OFFERGEN_OUTPUT_DIR" envDefault:"./offers-output"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//	    return err
//	}
//
// LoadEnv reads explicit .env files before parsing; Load reads ./.env once on
// first use and ignores a missing file. Reload and ResetCache exist for tests
// and long running tools that need to observe environment changes.
package config
