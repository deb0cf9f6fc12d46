// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Worker  WorkerConfig  `yaml:"worker"`
	Client  ClientConfig  `yaml:"client"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Host string `yaml:"host"`
}

type LoggingConfig struct {
	Development bool `yaml:"development"`
}

type WorkerConfig struct {
	IntervalMinutes int `yaml:"interval_minutes"`
}

type ClientConfig struct {
	PollSeconds int `yaml:"poll_seconds"`
}

func Default() *Config {
	return &Config{
		Server:  ServerConfig{Host: "", Port: "3000"},
		Logging: LoggingConfig{Development: true},
		Worker:  WorkerConfig{IntervalMinutes: 5},
		Client:  ClientConfig{PollSeconds: 30},
	}
}

func (c *Config) WorkerInterval() time.Duration {
	return time.Duration(c.Worker.IntervalMinutes) * time.Minute
}

func (c *Config) ClientPollInterval() time.Duration {
	return time.Duration(c.Client.PollSeconds) * time.Second
}

func Load() (*Config, error) {
	cfg := Default()

	file, err := os.Open("config.yml")
	if err != nil {
		// конфиг не обязателен - работаем на дефолтах
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("не могу открыть config.yml: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга config.yml: %w", err)
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
