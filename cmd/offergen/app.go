package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/offerkit/pkg/config"
	"github.com/dmitrymomot/offerkit/pkg/logger"
	"github.com/dmitrymomot/offerkit/pkg/offer"
)

// appConfig is read from the environment and an optional .env file.
type appConfig struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	OutputDir  string `env:"OFFERGEN_OUTPUT_DIR" envDefault:"."`
	Locale     string `env:"OFFERGEN_LOCALE" envDefault:"en-US"`
	DevMailDir string `env:"OFFERGEN_DEV_MAIL_DIR" envDefault:"./mail"`
}

// app carries what every command needs after the root pre-run.
type app struct {
	cfg    appConfig
	logger *slog.Logger
	locale language.Tag
	now    func() time.Time

	envFile string
	noColor bool
}

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func (a *app) setup(stderr io.Writer) error {
	if a.noColor {
		color.NoColor = true
	}
	if a.envFile != "" {
		if err := config.LoadEnv(a.envFile); err != nil {
			return err
		}
	}
	if err := config.Load(&a.cfg); err != nil {
		return err
	}

	env := config.ParseEnvironment(a.cfg.Env)
	a.logger = logger.New(
		logger.WithEnvironment(string(env), "offergen"),
		logger.WithLevelName(a.cfg.LogLevel),
		logger.WithOutput(stderr),
	)

	tag, err := language.Parse(a.cfg.Locale)
	if err != nil {
		a.logger.Warn("unknown locale, using en-US", slog.String("locale", a.cfg.Locale))
		tag = language.AmericanEnglish
	}
	a.locale = tag
	if a.now == nil {
		a.now = time.Now
	}
	return nil
}

// loadOffers reads offers from path, or from in when path is "-".
func loadOffers(path string, in io.Reader) ([]offer.Offer, error) {
	if path == "-" {
		return offer.Decode(in)
	}
	return offer.LoadFile(path)
}

// pick returns the offer at index, or all offers when index is negative.
func pick(offers []offer.Offer, index int) ([]offer.Offer, error) {
	if index < 0 {
		return offers, nil
	}
	if index >= len(offers) {
		return nil, fmt.Errorf("offer index %d out of range (have %d)", index, len(offers))
	}
	return offers[index : index+1], nil
}

// writeOutput writes content to path, or to w when path is empty.
func writeOutput(w io.Writer, path, content string) error {
	if path == "" {
		_, err := io.WriteString(w, content)
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
