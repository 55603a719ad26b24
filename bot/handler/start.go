package handler

import (
	tele "gopkg.in/telebot.v4"

	"welcomebot/messages"
)

// handleStart 处理 /start 命令
func (h *Handler) handleStart(c tele.Context) error {
	user := c.Sender()
	h.log.Infof("Comando /start recibido - Usuario: %d (%s)", user.ID, user.FirstName)

	text := messages.Render(h.msgs.Start, user.FirstName)
	if err := send(c, "start", text); err != nil {
		h.log.WithError(err).Error("Error al enviar mensaje /start")
		return nil
	}
	h.log.Infof("Mensaje /start enviado exitosamente a %d", user.ID)
	return nil
}
