package service

import (
	"fmt"

	"mmgp/internal/model"
)

const (
	saveFailedTitle        = "Erro ao salvar dados"
	saveFailedFallback     = "Ocorreu um erro ao salvar suas respostas."
	saveErroredDescription = "Ocorreu um erro ao salvar suas respostas. Tente novamente mais tarde."
)

// SavedNotification reports a successful submission.
func SavedNotification() model.Notification {
	return model.Notification{
		Kind:        model.NotifySuccess,
		Title:       "Dados salvos com sucesso",
		Description: "Suas respostas foram registradas no banco de dados.",
	}
}

// RejectedNotification carries the store's own message for a rejected submission.
func RejectedNotification(msg string) model.Notification {
	if msg == "" {
		msg = saveFailedFallback
	}
	return model.Notification{Kind: model.NotifyError, Title: saveFailedTitle, Description: msg}
}

// ErroredNotification is shown when the store could not be reached.
func ErroredNotification() model.Notification {
	return model.Notification{Kind: model.NotifyError, Title: saveFailedTitle, Description: saveErroredDescription}
}

// EmailRequiredNotification blocks navigation without an e-mail.
func EmailRequiredNotification() model.Notification {
	return model.Notification{
		Kind:        model.NotifyError,
		Title:       "E-mail obrigatório",
		Description: "Por favor, informe seu e-mail antes de prosseguir.",
	}
}

// UnansweredNotification warns before submitting with open questions.
func UnansweredNotification(count int) model.Notification {
	return model.Notification{
		Kind:  model.NotifyWarning,
		Title: "Atenção: Perguntas não respondidas",
		Description: fmt.Sprintf("Existem %d perguntas que não foram respondidas. "+
			"Para uma avaliação mais precisa, recomendamos responder todas as perguntas.", count),
	}
}
