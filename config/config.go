// Package config exposes process-wide settings for the multidiary blog.
// Values come from an optional multidiary.toml file, overridden by
// MULTIDIARY_* environment variables.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

const (
	defaultListen = "localhost"
	defaultPort   = 8080
)

// fileSettings mirrors the layout of multidiary.toml.
type fileSettings struct {
	Listen        string `toml:"listen"`
	Port          int    `toml:"port"`
	Debug         bool   `toml:"debug"`
	DBFolder      string `toml:"dbFolder"`
	LogFolder     string `toml:"logFolder"`
	SessionSecret string `toml:"sessionSecret"`
}

var file fileSettings

// LoadFile reads settings from the given TOML file. A missing file is not an
// error; environment variables always win over file values.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return toml.Unmarshal(data, &file)
}

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("MULTIDIARY_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	if os.Getenv("MULTIDIARY_DEBUG") != "" {
		return os.Getenv("MULTIDIARY_DEBUG") == "true"
	}
	return file.Debug
}

func GetListen() string {
	listen := os.Getenv("MULTIDIARY_LISTEN")
	if listen == "" {
		listen = file.Listen
	}
	if listen == "" {
		listen = defaultListen
	}
	return listen
}

func GetPort() int {
	if portStr := os.Getenv("MULTIDIARY_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			return port
		}
	}
	if file.Port > 0 {
		return file.Port
	}
	return defaultPort
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("MULTIDIARY_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = file.DBFolder
	}
	if dbFolderPath == "" {
		dbFolderPath = "/etc/multidiary"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("MULTIDIARY_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = file.LogFolder
	}
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

// GetSessionSecret returns the cookie-store key, empty when not configured.
// The web server generates a per-process key in that case.
func GetSessionSecret() string {
	secret := os.Getenv("MULTIDIARY_SESSION_SECRET")
	if secret == "" {
		secret = file.SessionSecret
	}
	return secret
}
