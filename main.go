package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"welcomebot/bot"
	"welcomebot/config"
	"welcomebot/logger"
)

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Options{
		Dir:        cfg.Log.Dir,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		Level:      cfg.Log.Level,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, log, waitForSignal); err != nil {
		os.Exit(1)
	}
}

// run 启动机器人，直到 stop 返回。
// 未配置 token 时只记录一条错误并返回 nil，此前不做任何网络请求；
// 初始化失败时记录错误并返回该错误。
func run(cfg *config.Config, log *logrus.Logger, stop func()) error {
	if cfg.Bot.Token == "" {
		log.Error("No se encontró el token del bot en las variables de entorno")
		return nil
	}

	hook, err := logger.NewSentryHook(cfg.Sentry.DSN, cfg.Sentry.Environment)
	if err != nil {
		log.WithError(err).Warn("Sentry deshabilitado")
	} else if hook != nil {
		log.AddHook(hook)
		defer hook.Flush()
	}

	log.Info("Iniciando bot con la configuración...")
	b, err := bot.NewBot(cfg, log)
	if err != nil {
		log.WithError(err).Error("Error crítico al iniciar el bot")
		return err
	}

	go func() {
		stop()
		b.Stop()
	}()
	b.Start()
	return nil
}

func waitForSignal() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}
