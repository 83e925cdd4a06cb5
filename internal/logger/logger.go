package logger

import (
    "io"
    "time"

    ginlog "github.com/gin-contrib/logger"
    "github.com/gin-gonic/gin"
    "github.com/natefinch/lumberjack"
    logrus "github.com/sirupsen/logrus"

    "commuta_admin/internal/config"
)

// Setup initializes Logrus on a rotating file and returns the writer so the
// HTTP access log can share it.
func Setup(cfg config.LogConfig) io.Writer {
    // 1) Lumberjack for file rotation
    rotator := &lumberjack.Logger{
        Filename:   cfg.File,
        MaxSize:    10, // megabytes
        MaxBackups: 7,  // keep up to 7 old files
        MaxAge:     7,  // days
        Compress:   true,
    }

    // 2) Configure Logrus to write to that file
    logrus.SetOutput(rotator)
    logrus.SetFormatter(&logrus.TextFormatter{
        FullTimestamp:   true,
        TimestampFormat: time.RFC3339,
    })
    logrus.SetLevel(ParseLevel(cfg.Level))

    return rotator
}

// ParseLevel falls back to Info on unknown names.
func ParseLevel(name string) logrus.Level {
    lvl, err := logrus.ParseLevel(name)
    if err != nil {
        return logrus.InfoLevel
    }
    return lvl
}

// RequestLogger is the access log middleware; health checks are skipped.
func RequestLogger(w io.Writer) gin.HandlerFunc {
    return ginlog.SetLogger(
        ginlog.WithWriter(w),
        ginlog.WithUTC(true),
        ginlog.WithSkipPath([]string{"/healthz"}),
    )
}
