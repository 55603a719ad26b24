package handler

import (
	"sync"

	tele "gopkg.in/telebot.v4"

	"welcomebot/messages"
)

// joinTrackerSize 记住最近处理过的入群消息数量
const joinTrackerSize = 1024

type joinKey struct {
	chatID    int64
	messageID int
}

// joinTracker 记录已处理的入群消息。
// telebot 对 new_chat_members 中的每个成员各调用一次处理器，且可能并发执行。
type joinTracker struct {
	mu    sync.Mutex
	seen  map[joinKey]struct{}
	order []joinKey
	next  int
}

func newJoinTracker(size int) *joinTracker {
	return &joinTracker{
		seen:  make(map[joinKey]struct{}, size),
		order: make([]joinKey, size),
	}
}

// first 第一次见到该消息时返回 true，超出容量时淘汰最早的记录
func (t *joinTracker) first(k joinKey) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.seen[k]; ok {
		return false
	}
	if len(t.seen) == len(t.order) {
		delete(t.seen, t.order[t.next])
	}
	t.order[t.next] = k
	t.next = (t.next + 1) % len(t.order)
	t.seen[k] = struct{}{}
	return true
}

// joinedMembers 返回消息中的新成员。
// UserJoined 在 telebot 的分发循环中会被改写，只在列表为空时读取。
func joinedMembers(m *tele.Message) []tele.User {
	if m == nil {
		return nil
	}
	if len(m.UsersJoined) > 0 {
		return m.UsersJoined
	}
	if m.UserJoined != nil {
		return []tele.User{*m.UserJoined}
	}
	return nil
}

// handleUserJoined 欢迎新成员，每个非机器人成员单独发送一条消息，每条消息只处理一次
func (h *Handler) handleUserJoined(c tele.Context) error {
	msg := c.Message()
	members := joinedMembers(msg)
	if len(members) == 0 {
		return nil
	}

	chat := c.Chat()
	if !h.joins.first(joinKey{chatID: chat.ID, messageID: msg.ID}) {
		return nil
	}
	h.log.Infof("Nuevos miembros detectados en el grupo %d (%s)", chat.ID, chat.Title)

	for _, member := range members {
		if member.IsBot {
			continue
		}
		h.log.Infof("Dando bienvenida a %d (%s)", member.ID, member.FirstName)

		text := messages.Render(h.msgs.Welcome, member.FirstName, chat.Title)
		if err := send(c, "welcome", text); err != nil {
			h.log.WithError(err).Error("Error al enviar mensaje de bienvenida")
			continue
		}
		h.log.Infof("Mensaje de bienvenida enviado exitosamente para %d", member.ID)
	}
	return nil
}
