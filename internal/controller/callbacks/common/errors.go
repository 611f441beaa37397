package common

import (
	"errors"

	"github.com/Freeeeeet/pousada_bot/internal/availability"
	"github.com/Freeeeeet/pousada_bot/internal/service"
)

// Общие ошибки для обработчиков
var (
	ErrNotAdmin       = errors.New("user is not an admin")
	ErrNoMessage      = errors.New("no message in callback")
	ErrInvalidFormat  = errors.New("invalid callback format")
	ErrSlotNotFound   = errors.New("slot not found")
	ErrEmptySelection = errors.New("no slots selected")
	ErrStaleButton    = errors.New("button refers to an outdated board")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotAdmin):
		return "⛔ Acesso restrito à administração"
	case errors.Is(err, ErrNoMessage):
		return "❌ Erro ao processar a mensagem"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Formato de dados inválido"
	case errors.Is(err, ErrSlotNotFound), errors.Is(err, service.ErrUnknownSlot):
		return "❌ Horário não encontrado. Atualize o quadro"
	case errors.Is(err, ErrStaleButton):
		return "🔄 O quadro mudou. Atualize e tente de novo"
	case errors.Is(err, ErrEmptySelection):
		return "☝️ Selecione ao menos um horário"
	case errors.Is(err, availability.ErrSlotElapsed):
		return "⌛ Esse horário já passou"
	case errors.Is(err, availability.ErrNotPending):
		return "❌ Não há reserva pendente nesse horário"
	case errors.Is(err, availability.ErrInvalidIntent):
		return "❌ Operação inválida"
	case errors.Is(err, service.ErrStructureNotFound):
		return "❌ Estrutura não encontrada"
	case errors.Is(err, service.ErrInvalidDate):
		return "❌ Data inválida. Use DD.MM.AAAA"
	default:
		return "❌ Ocorreu um erro. Tente novamente"
	}
}
