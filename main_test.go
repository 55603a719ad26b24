package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"welcomebot/config"
	"welcomebot/messages"
)

func TestRunWithoutToken(t *testing.T) {
	log, hook := test.NewNullLogger()
	cfg := &config.Config{Messages: messages.Default}

	stopped := false
	if err := run(cfg, log, func() { stopped = true }); err != nil {
		t.Fatalf("run: %v", err)
	}
	if stopped {
		t.Error("stop waiter started without a token")
	}
	if len(hook.Entries) != 1 {
		t.Fatalf("got %d log entries, want exactly 1", len(hook.Entries))
	}
	if hook.LastEntry().Level != logrus.ErrorLevel {
		t.Errorf("level = %v, want error", hook.LastEntry().Level)
	}
}

func TestRunWithoutTokenSkipsSentry(t *testing.T) {
	log, hook := test.NewNullLogger()
	cfg := &config.Config{Messages: messages.Default}
	cfg.Sentry.DSN = "https://public@127.0.0.1:1/1"

	if err := run(cfg, log, func() {}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(hook.Entries) != 1 {
		t.Fatalf("got %d log entries, want exactly 1", len(hook.Entries))
	}
	// 只有测试 hook，没有 Sentry hook
	if n := len(log.Hooks[logrus.ErrorLevel]); n != 1 {
		t.Errorf("error level has %d hooks, want 1", n)
	}
}

func TestRunSetupFailure(t *testing.T) {
	var paths []string
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"ok":false,"error_code":401,"description":"Unauthorized"}`)
	}))
	defer srv.Close()

	log, hook := test.NewNullLogger()
	cfg := &config.Config{Messages: messages.Default}
	cfg.Bot.Token = "123:abc"
	cfg.Bot.APIURL = srv.URL

	stopped := false
	err := run(cfg, log, func() { stopped = true })
	if err == nil {
		t.Fatal("run succeeded, want setup error")
	}
	if stopped {
		t.Error("stop waiter started after failed setup")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(paths) != 1 || !strings.HasSuffix(paths[0], "/getMe") {
		t.Errorf("API calls = %v, want one getMe", paths)
	}
	last := hook.LastEntry()
	if last.Level != logrus.ErrorLevel || last.Message != "Error crítico al iniciar el bot" {
		t.Errorf("last entry = %v %q", last.Level, last.Message)
	}
}
