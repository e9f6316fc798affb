package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
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
	logLevel := os.Getenv("TBS_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("TBS_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("TBS_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "data"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("TBS_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

func GetListen() string {
	return os.Getenv("TBS_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("TBS_PORT"))
	if err != nil || port <= 0 {
		return 5000
	}
	return port
}

// GetJWTSecret returns the token signing secret. It is read once per call
// site at startup; rotating it invalidates all outstanding tokens.
func GetJWTSecret() string {
	return os.Getenv("TBS_JWT_SECRET")
}

// GetTokenTTLMinutes returns the access token validity window in minutes.
func GetTokenTTLMinutes() int {
	ttl, err := strconv.Atoi(os.Getenv("TBS_TOKEN_TTL"))
	if err != nil || ttl <= 0 {
		return 60
	}
	return ttl
}
