package transfer

// Kind classifies a transfer failure so callers and tests can branch on
// the condition instead of parsing messages.
type Kind int

const (
	KindUnexpected Kind = iota
	KindInvalidAmount
	KindInvalidAccounts
	KindInsufficientFunds
	KindLockTimeout
)

func (k Kind) String() string {
	switch k {
	case KindInvalidAmount:
		return "invalid_amount"
	case KindInvalidAccounts:
		return "invalid_accounts"
	case KindInsufficientFunds:
		return "insufficient_funds"
	case KindLockTimeout:
		return "lock_timeout"
	default:
		return "unexpected"
	}
}

// Error is the typed failure every core component returns. It carries the
// human-readable message that ends up in the outcome string.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
