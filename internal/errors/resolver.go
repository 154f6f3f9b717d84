package errors

var (
	ErrCounterpartyNotFound = &DomainError{
		Code:    "COUNTERPARTY_NOT_FOUND",
		Message: "no account matches the given identifier",
	}
	ErrPhoneTooShort = &DomainError{
		Code:    "PHONE_TOO_SHORT",
		Message: "phone number is too short to search",
	}
)
