package transfer

import (
	"github.com/shopspring/decimal"

	"github.com/lakshmi-suryawanshi31/amount-transfer-service/internal/core/domain"
)

// Pre-lock validation. These checks run before any lock is held, so they
// are advisory fast-path rejections only; the execution engine re-checks
// funds authoritatively inside its critical section.

// ValidateAmount fails when the amount is missing, zero, or negative.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &Error{Kind: KindInvalidAmount, Message: "Transfer amount must be greater than zero."}
	}
	return nil
}

// ValidateAccounts fails when either side of the transfer is unknown.
func ValidateAccounts(accountFrom, accountTo *domain.Account) error {
	if accountFrom == nil || accountTo == nil {
		return &Error{Kind: KindInvalidAccounts, Message: "One or both accounts are invalid."}
	}
	return nil
}

// ValidateSufficientFunds fails when the source balance is below the
// requested amount.
func ValidateSufficientFunds(accountFrom *domain.Account, amount decimal.Decimal) error {
	if accountFrom == nil {
		return &Error{Kind: KindInvalidAccounts, Message: "Source account is invalid."}
	}
	if accountFrom.Balance.LessThan(amount) {
		return &Error{Kind: KindInsufficientFunds, Message: "Insufficient funds in account " + accountFrom.ID}
	}
	return nil
}
