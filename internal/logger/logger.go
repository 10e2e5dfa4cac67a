package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger 애플리케이션 공용 로거
type Logger struct {
	*logrus.Entry
}

// New 로거 생성
// 로컬 환경은 컬러 콘솔, 그 외는 JSON 출력.
func New() *Logger {
	base := logrus.New()

	env := os.Getenv("ENVIRONMENT")
	if env == "" || env == "local" {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
			ForceColors:     true,
		})
	} else {
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	}

	base.SetOutput(os.Stdout)

	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		base.SetLevel(logrus.DebugLevel)
	case "warn":
		base.SetLevel(logrus.WarnLevel)
	case "error":
		base.SetLevel(logrus.ErrorLevel)
	default:
		base.SetLevel(logrus.InfoLevel)
	}

	return &Logger{Entry: logrus.NewEntry(base)}
}

// WithComponent 컴포넌트 필드가 붙은 엔트리
func (l *Logger) WithComponent(name string) *logrus.Entry {
	return l.WithField("component", name)
}
