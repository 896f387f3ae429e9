package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/adrianliechti/docling/pkg/docling"
	"github.com/adrianliechti/docling/pkg/otel"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

const DefaultURL = "http://localhost:5001"

type Config struct {
	URL   string
	Token string

	// Limit caps extractions per second.
	Limit *int

	// RequestLimit caps HTTP requests per second, polls included.
	RequestLimit *int

	Options *docling.ConvertOptions
	Wait    docling.WaitOptions
}

// Parse reads the YAML file at path. An empty path yields a configuration
// built from the environment alone.
func Parse(path string) (*Config, error) {
	file := new(configFile)

	if path != "" {
		f, err := parseFile(path)

		if err != nil {
			return nil, err
		}

		file = f
	}

	c := &Config{
		URL:   file.URL,
		Token: file.Token,

		Limit:        file.Limit,
		RequestLimit: file.RequestLimit,

		Wait: docling.WaitOptions{
			Timeout:      file.Timeout,
			PollInterval: file.PollInterval,
			LongPoll:     file.LongPoll,
		},
	}

	if c.URL == "" {
		c.URL = os.Getenv("DOCLING_URL")
	}

	if c.URL == "" {
		c.URL = DefaultURL
	}

	if c.Token == "" {
		c.Token = os.Getenv("DOCLING_API_KEY")
	}

	options, err := parseOptions(file.Options)

	if err != nil {
		return nil, err
	}

	c.Options = options

	return c, nil
}

// Client creates a docling client. When telemetry is enabled, requests are traced.
func (cfg *Config) Client(options ...docling.Option) (*docling.Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("missing url")
	}

	o := []docling.Option{
		docling.WithClient(&http.Client{
			Transport: otel.Transport(nil),
		}),
	}

	if cfg.Token != "" {
		o = append(o, docling.WithToken(cfg.Token))
	}

	if limiter := createLimiter(cfg.RequestLimit); limiter != nil {
		o = append(o, docling.WithLimiter(limiter))
	}

	return docling.New(cfg.URL, append(o, options...)...)
}

type configFile struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Limit        *int `yaml:"limit"`
	RequestLimit *int `yaml:"request_limit"`

	Timeout      time.Duration `yaml:"timeout"`
	PollInterval time.Duration `yaml:"poll_interval"`
	LongPoll     time.Duration `yaml:"long_poll"`

	Options yaml.Node `yaml:"options"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func parseOptions(node yaml.Node) (*docling.ConvertOptions, error) {
	if node.IsZero() {
		return nil, nil
	}

	var values map[string]any

	if err := node.Decode(&values); err != nil {
		return nil, err
	}

	if len(values) == 0 {
		return nil, nil
	}

	data, err := json.Marshal(values)

	if err != nil {
		return nil, err
	}

	var options docling.ConvertOptions

	if err := json.Unmarshal(data, &options); err != nil {
		return nil, err
	}

	if err := options.Validate(); err != nil {
		return nil, err
	}

	return &options, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil || *limit <= 0 {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
