package middleware

import (
	"github.com/sirupsen/logrus"
	tele "gopkg.in/telebot.v4"
)

// Logging 日志记录中间件，debug 级别记录每条更新
func Logging(log logrus.FieldLogger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			var chatID int64
			var chatType tele.ChatType
			if chat := c.Chat(); chat != nil {
				chatID, chatType = chat.ID, chat.Type
			}
			var senderID int64
			if s := c.Sender(); s != nil {
				senderID = s.ID
			}
			log.Debugf("Update %d recibido - chat %d (%s), usuario %d: %q",
				c.Update().ID, chatID, chatType, senderID, c.Text())
			return next(c)
		}
	}
}

// PrivateOnly 只放行私聊中的更新，其它聊天静默丢弃
func PrivateOnly() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			chat := c.Chat()
			if chat == nil || chat.Type != tele.ChatPrivate {
				return nil
			}
			return next(c)
		}
	}
}
