package handler

import tele "gopkg.in/telebot.v4"

// PrivateReply 私聊固定回复，不属于可配置模板
const PrivateReply = "¡Hola! Soy un bot de bienvenida. Añádeme a un grupo para dar la bienvenida a nuevos miembros."

// handlePrivate 处理私聊文本，只在 PrivateOnly 之后注册
func (h *Handler) handlePrivate(c tele.Context) error {
	user := c.Sender()
	h.log.Infof("Mensaje privado recibido de %d (%s)", user.ID, user.FirstName)

	if err := send(c, "private", PrivateReply); err != nil {
		h.log.WithError(err).Error("Error al responder mensaje privado")
		return nil
	}
	h.log.Infof("Respuesta a mensaje privado enviada exitosamente a %d", user.ID)
	return nil
}
