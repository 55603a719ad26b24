package handler

import tele "gopkg.in/telebot.v4"

// handleHelp 处理 /help 命令，模板原样发送
func (h *Handler) handleHelp(c tele.Context) error {
	user := c.Sender()
	h.log.Infof("Comando /help recibido - Usuario: %d (%s)", user.ID, user.FirstName)

	if err := send(c, "help", h.msgs.Help); err != nil {
		h.log.WithError(err).Error("Error al enviar mensaje /help")
		return nil
	}
	h.log.Infof("Mensaje /help enviado exitosamente a %d", user.ID)
	return nil
}
