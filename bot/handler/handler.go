package handler

import (
	"github.com/sirupsen/logrus"
	tele "gopkg.in/telebot.v4"

	"welcomebot/bot/middleware"
	"welcomebot/messages"
)

// Registrar 调度引擎中注册处理器的部分，*tele.Bot 和 *tele.Group 都满足
type Registrar interface {
	Handle(endpoint interface{}, h tele.HandlerFunc, m ...tele.MiddlewareFunc)
}

type Handler struct {
	log   logrus.FieldLogger
	msgs  messages.Set
	joins *joinTracker
}

func NewHandler(log logrus.FieldLogger, msgs messages.Set) *Handler {
	return &Handler{log: log, msgs: msgs, joins: newJoinTracker(joinTrackerSize)}
}

// RegisterCommand 注册命令处理器
func (h *Handler) RegisterCommand(r Registrar) {
	r.Handle("/start", h.handleStart)
	r.Handle("/help", h.handleHelp)
	r.Handle(tele.OnUserJoined, h.handleUserJoined)
	// 机器人和其他人一起被拉进群时，telebot 只触发 OnAddedToGroup
	r.Handle(tele.OnAddedToGroup, h.handleUserJoined)
	r.Handle(tele.OnText, h.handlePrivate, middleware.PrivateOnly())
}
