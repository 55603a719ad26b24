package handler

import (
	"errors"
	"fmt"
	"net"
	"net/url"

	tele "gopkg.in/telebot.v4"
)

// SendKind 发送失败的类型
type SendKind int

const (
	// SendTransport 网络错误
	SendTransport SendKind = iota
	// SendBlocked 机器人被屏蔽、被移出群或聊天不存在
	SendBlocked
	// SendRejected Telegram API 拒绝了请求，或其它错误
	SendRejected
)

func (k SendKind) String() string {
	switch k {
	case SendBlocked:
		return "blocked"
	case SendRejected:
		return "rejected"
	default:
		return "transport"
	}
}

// SendError 一次发送失败，保留原始错误
type SendError struct {
	Kind   SendKind
	Op     string
	ChatID int64
	Err    error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("%s: send to chat %d failed (%s): %v", e.Op, e.ChatID, e.Kind, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

func classify(err error) SendKind {
	switch {
	case errors.Is(err, tele.ErrBlockedByUser),
		errors.Is(err, tele.ErrKickedFromGroup),
		errors.Is(err, tele.ErrKickedFromSuperGroup),
		errors.Is(err, tele.ErrChatNotFound):
		return SendBlocked
	}
	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return SendTransport
	}
	return SendRejected
}

// send 发送文本到更新所在的聊天，失败时返回 *SendError
func send(c tele.Context, op, text string) error {
	err := c.Send(text)
	if err == nil {
		return nil
	}
	var chatID int64
	if chat := c.Chat(); chat != nil {
		chatID = chat.ID
	}
	return &SendError{Kind: classify(err), Op: op, ChatID: chatID, Err: err}
}
