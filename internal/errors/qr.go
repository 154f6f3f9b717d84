package errors

var (
	ErrInvalidQR = &DomainError{
		Code:    "INVALID_QR",
		Message: "invalid QR code",
	}
	ErrQRExpired = &DomainError{
		Code:    "QR_EXPIRED",
		Message: "QR code has expired",
	}
	ErrQRInactive = &DomainError{
		Code:    "QR_INACTIVE",
		Message: "QR code is not active",
	}
	ErrTokenNotCancellable = &DomainError{
		Code:    "TOKEN_NOT_CANCELLABLE",
		Message: "payment code can no longer be cancelled",
	}
	ErrInvalidPayload = &DomainError{
		Code:    "INVALID_PAYLOAD",
		Message: "QR payload could not be read",
	}
)
