package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/plus3/skyship/config"
)

type logLevelFlag struct {
	value slog.Level
}

func (l *logLevelFlag) String() string {
	return l.value.String()
}

func (l *logLevelFlag) Set(value string) error {
	m := map[string]slog.Level{"DEBUG": slog.LevelDebug, "INFO": slog.LevelInfo, "WARN": slog.LevelWarn, "ERROR": slog.LevelError}
	v, ok := m[strings.ToUpper(value)]
	if !ok {
		return fmt.Errorf("unknown log level %q", value)
	}
	l.value = v
	return nil
}

// defined flags
var (
	levelFlag   logLevelFlag
	configFlag  = flag.String("config", config.DefaultFile, "YAML file overriding the built-in configuration")
	logFileFlag = flag.String("logfile", "", "Write logs to this file (rotated) instead of stderr")
	debugUIFlag = flag.Bool("debugui", false, "Show the Dear ImGui diagnostics windows")
	watchFlag   = flag.Bool("watch", true, "Reload tuning when the configuration file changes")
)

func init() {
	levelFlag.value = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "set log level")
}
