package bot

import (
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	tele "gopkg.in/telebot.v4"

	"welcomebot/config"
	"welcomebot/messages"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Bot.Token = "123:abc"
	cfg.Bot.PollTimeout = 5 * time.Second
	cfg.Messages = messages.Default
	return cfg
}

func TestNewBotMissingToken(t *testing.T) {
	log, hook := test.NewNullLogger()
	cfg := testConfig()
	cfg.Bot.Token = ""

	_, err := NewBot(cfg, log)
	if !errors.Is(err, ErrMissingToken) {
		t.Fatalf("err = %v, want ErrMissingToken", err)
	}
	if len(hook.Entries) != 0 {
		t.Errorf("NewBot logged %d entries before validation", len(hook.Entries))
	}
}

func TestSettings(t *testing.T) {
	log, _ := test.NewNullLogger()
	cfg := testConfig()

	pref := Settings(cfg, log)
	if pref.Token != cfg.Bot.Token {
		t.Errorf("token = %q, want %q", pref.Token, cfg.Bot.Token)
	}
	poller, ok := pref.Poller.(*tele.LongPoller)
	if !ok {
		t.Fatalf("poller = %T, want *tele.LongPoller", pref.Poller)
	}
	if poller.Timeout != 5*time.Second {
		t.Errorf("poll timeout = %v", poller.Timeout)
	}
	if len(poller.AllowedUpdates) != len(AllUpdates) {
		t.Errorf("allowed updates = %v", poller.AllowedUpdates)
	}
	if pref.Client != nil {
		t.Error("custom HTTP client set without ipv6")
	}

	cfg.Bot.IPv6 = true
	if Settings(cfg, log).Client == nil {
		t.Error("ipv6 enabled but no custom HTTP client")
	}
}

func TestNewBotOffline(t *testing.T) {
	log, hook := test.NewNullLogger()
	cfg := testConfig()

	pref := Settings(cfg, log)
	pref.Offline = true

	b, err := newBot(pref, cfg, log)
	if err != nil {
		t.Fatalf("newBot: %v", err)
	}
	if b.teleBot == nil {
		t.Fatal("telebot instance is nil")
	}
	if len(hook.Entries) != 1 {
		t.Errorf("got %d log entries, want 1", len(hook.Entries))
	}
}
