package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ahorro-bot/internal/model"
)

func TestFormatMoney(t *testing.T) {
	pesos := model.Account{Currency: "ARS"}
	dolares := model.Account{Currency: "USD"}

	assert.Equal(t, "$ 1,500.00", FormatMoney(pesos, 1500))
	assert.Equal(t, "$ 0.00", FormatMoney(pesos, 0))
	assert.Equal(t, "U$S 140.00", FormatMoney(dolares, 140))
	assert.Equal(t, "U$S 1,000,000.00", FormatMoney(dolares, 1000000))
}

func TestSymbolDefaultsToPesos(t *testing.T) {
	assert.Equal(t, "$", Symbol(model.Account{Currency: "ARS"}))
	assert.Equal(t, "$", Symbol(model.Account{}))
	assert.Equal(t, "U$S", Symbol(model.Account{Currency: "USD"}))
}
