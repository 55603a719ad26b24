package logger

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// SentryHook 把 error 及以上级别的日志转发到 Sentry
type SentryHook struct {
	hub *sentry.Hub
}

// NewSentryHook 初始化 Sentry 客户端，dsn 为空时返回 nil
func NewSentryHook(dsn, environment string) (*SentryHook, error) {
	if dsn == "" {
		return nil, nil
	}
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			event.User = sentry.User{}
			return event
		},
	})
	if err != nil {
		return nil, fmt.Errorf("初始化 Sentry 失败: %w", err)
	}
	return &SentryHook{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

// Levels 实现 logrus.Hook
func (h *SentryHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel}
}

// Fire 实现 logrus.Hook
func (h *SentryHook) Fire(e *logrus.Entry) error {
	h.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelError)
		scope.SetTag("logger", Name)
		for k, v := range e.Data {
			if k == logrus.ErrorKey {
				continue
			}
			scope.SetTag(k, fmt.Sprint(v))
		}
		if err, ok := e.Data[logrus.ErrorKey].(error); ok {
			h.hub.CaptureException(fmt.Errorf("%s: %w", e.Message, err))
			return
		}
		h.hub.CaptureMessage(e.Message)
	})
	return nil
}

// Flush 等待未发送的事件
func (h *SentryHook) Flush() {
	if h == nil {
		return
	}
	h.hub.Flush(2 * time.Second)
}
