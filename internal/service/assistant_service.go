package service

import (
	"context"
	"fmt"
	"strings"
)

// Generator produces text for a prompt. Satisfied by *gemini.Client.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// FallbackReply is sent when the model yields no usable text.
const FallbackReply = "No pude generar una respuesta para eso en este momento. " +
	"¿Quizás podrías intentar reformularlo o usar /help para ver los comandos?"

const promptTemplate = `Eres un asistente amigable dentro de un bot de Telegram. Un usuario te ha enviado el siguiente mensaje:
"%s"
Tu tarea es responder a la consulta del usuario de forma útil y concisa.
Además, si la consulta del usuario parece relacionada con alguna funcionalidad existente, sugiérele amablemente el comando apropiado.
Los comandos disponibles son:
- /start - Inicia la conversación.
- /help - Muestra esta ayuda.
- /cuenta - Puedes acceder a tus cajas de ahorro.
- /gasto - Ingresar un nuevo gasto a una de tus cajas de ahorro.
- /cargar - Carga un monto de dinero a tus cajas de ahorro.
- /resumen - Muestra el saldo de todas tus cajas de ahorro.
- /save - Puedes guardar tu id de telegram y nombre de usuario en nuestra base de datos.
- /leave - Elimina tus datos guardados con /save de nuestra base de datos.

Responde directamente al usuario. No digas "Como asistente...".`

// AssistantService relays free-text messages to the generative model.
type AssistantService struct {
	generator Generator
}

func NewAssistantService(generator Generator) *AssistantService {
	return &AssistantService{generator: generator}
}

// Reply answers arbitrary user text. The error return only reports transport
// or service failures; a blocked or empty generation yields the fallback text.
func (s *AssistantService) Reply(ctx context.Context, userText string) (string, error) {
	prompt := fmt.Sprintf(promptTemplate, userText)

	answer, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate reply: %w", err)
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return FallbackReply, nil
	}
	return answer, nil
}
