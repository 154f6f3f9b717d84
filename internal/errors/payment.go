package errors

var (
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "invalid amount",
	}
	ErrAmountBelowMinimum = &DomainError{
		Code:    "AMOUNT_BELOW_MINIMUM",
		Message: "amount is below the minimum allowed",
	}
	ErrInsufficientBalance = &DomainError{
		Code:    "INSUFFICIENT_BALANCE",
		Message: "insufficient wallet balance",
	}
	ErrNoRecipient = &DomainError{
		Code:    "NO_RECIPIENT",
		Message: "no recipient selected",
	}
	ErrSelfTransfer = &DomainError{
		Code:    "SELF_TRANSFER",
		Message: "cannot transfer to your own account",
	}
	ErrSubmissionInFlight = &DomainError{
		Code:    "SUBMISSION_IN_FLIGHT",
		Message: "a submission is already in progress",
	}
	ErrBalanceUnknown = &DomainError{
		Code:    "BALANCE_UNKNOWN",
		Message: "wallet balance has not been fetched yet",
	}
)
