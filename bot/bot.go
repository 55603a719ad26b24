package bot

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/sirupsen/logrus"
	tele "gopkg.in/telebot.v4"

	"welcomebot/bot/handler"
	"welcomebot/bot/middleware"
	"welcomebot/config"
)

// ErrMissingToken 未配置 BOT_TOKEN
var ErrMissingToken = errors.New("bot token is not set")

// Bot 结构体，包含机器人实例
type Bot struct {
	teleBot *tele.Bot
	log     logrus.FieldLogger
}

// Settings 根据配置生成 telebot 设置，接收全部类型的更新
func Settings(cfg *config.Config, log logrus.FieldLogger) tele.Settings {
	pref := tele.Settings{
		Token: cfg.Bot.Token,
		URL:   cfg.Bot.APIURL,
		Poller: &tele.LongPoller{
			Timeout:        cfg.Bot.PollTimeout,
			AllowedUpdates: AllUpdates,
		},
		Verbose: cfg.Bot.Verbose,
		OnError: func(err error, c tele.Context) {
			log.WithError(err).Error("Telegram bot error")
		},
	}

	// 如果配置了IPv6
	if cfg.Bot.IPv6 {
		pref.Client = &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Resolver: &net.Resolver{
						PreferGo: true,
						Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
							var d net.Dialer
							return d.DialContext(ctx, "udp6", "[2001:4860:4860::8888]:53")
						},
					},
				}).DialContext,
			},
		}
	}
	return pref
}

// NewBot 创建新的机器人实例并注册处理器
func NewBot(cfg *config.Config, log logrus.FieldLogger) (*Bot, error) {
	if cfg.Bot.Token == "" {
		return nil, ErrMissingToken
	}
	return newBot(Settings(cfg, log), cfg, log)
}

func newBot(pref tele.Settings, cfg *config.Config, log logrus.FieldLogger) (*Bot, error) {
	// 创建机器人实例
	teleBot, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	b := &Bot{
		teleBot: teleBot,
		log:     log,
	}

	// 添加中间件记录日志
	b.teleBot.Use(middleware.Logging(log))

	log.Info("Configurando handlers...")
	h := handler.NewHandler(log, cfg.Messages)
	h.RegisterCommand(b.teleBot)

	return b, nil
}

// Start 启动长轮询，阻塞直到 Stop
func (b *Bot) Start() {
	b.log.Infof("Bot configurado exitosamente, iniciando polling como @%s", b.teleBot.Me.Username)
	b.teleBot.Start()
}

// Stop 停止机器人
func (b *Bot) Stop() {
	if b.teleBot == nil {
		return
	}
	b.log.Info("Señal de terminación recibida, deteniendo el bot...")
	b.teleBot.Stop()
	b.log.Info("Bot detenido")
}
