package service

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"ahorro-bot/internal/model"
)

var moneyPrinter = message.NewPrinter(language.English)

// Symbol maps an account currency to the sign shown to the user.
func Symbol(account model.Account) string {
	switch account.Currency {
	case "USD":
		return "U$S"
	default:
		return "$"
	}
}

// FormatAmount renders an amount with grouping and two decimals, e.g. 1,500.00.
func FormatAmount(amount int64) string {
	return moneyPrinter.Sprintf("%.2f", float64(amount))
}

// FormatMoney renders an amount with the account's currency sign.
func FormatMoney(account model.Account, amount int64) string {
	return Symbol(account) + " " + FormatAmount(amount)
}
