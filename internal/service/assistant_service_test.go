package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type generatorFunc func(ctx context.Context, prompt string) (string, error)

func (f generatorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func TestReplyEmbedsUserTextAndCommands(t *testing.T) {
	var captured string
	assistant := NewAssistantService(generatorFunc(func(_ context.Context, prompt string) (string, error) {
		captured = prompt
		return "¡Claro! Usa /help para ver mis comandos.", nil
	}))

	reply, err := assistant.Reply(context.Background(), "¿Qué puedes hacer?")
	require.NoError(t, err)
	assert.Equal(t, "¡Claro! Usa /help para ver mis comandos.", reply)

	assert.Contains(t, captured, `"¿Qué puedes hacer?"`)
	for _, cmd := range []string{"/start", "/help", "/cuenta", "/gasto", "/cargar", "/resumen", "/save", "/leave"} {
		assert.True(t, strings.Contains(captured, cmd), "prompt should mention %s", cmd)
	}
}

func TestReplyFallsBackOnEmptyGeneration(t *testing.T) {
	assistant := NewAssistantService(generatorFunc(func(context.Context, string) (string, error) {
		return "  \n ", nil
	}))

	reply, err := assistant.Reply(context.Background(), "hola")
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)
}

func TestReplyWrapsServiceFailures(t *testing.T) {
	boom := errors.New("boom")
	assistant := NewAssistantService(generatorFunc(func(context.Context, string) (string, error) {
		return "", boom
	}))

	_, err := assistant.Reply(context.Background(), "hola")
	assert.ErrorIs(t, err, boom)
}
