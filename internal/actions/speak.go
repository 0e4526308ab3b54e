package actions

import (
	"github.com/sirupsen/logrus"

	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
	"github.com/th3w1zard1/Andastra-sub005/pkg/logger"
)

// Speak - владелец произносит реплику.
// Однотиковое действие: строка уходит в лог и слушателям через
// событие ON_CONVERSATION. Сами диалоговые деревья - вне ядра.
type Speak struct {
	base
	text string
}

func NewSpeak(text string, group string) *Speak {
	return &Speak{
		base: base{kind: KindSpeak, group: group},
		text: text,
	}
}

func (a *Speak) Update(ctx *Context, dt float64) Status {
	if a.owner == nil {
		return StatusFailed
	}
	logger.Log.WithFields(logrus.Fields{
		"component":  "actions",
		"speaker_id": a.owner.ID,
		"speaker":    a.owner.Name,
	}).Info(a.text)

	if ctx.Scripts != nil {
		ctx.Scripts.FireEvent(domain.EventOnConversation, a.owner, domain.ObjectInvalid)
	}
	return StatusComplete
}
