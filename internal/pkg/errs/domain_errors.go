package errs

// Domain sentinels shared by the booking and billing layers.
// Match with errors.Is; the handler layer maps each to a status code.
var (
	// Booking
	ErrInvalidWindow     = New("invalid time window")
	ErrSlotUnavailable   = New("slot unavailable")
	ErrResourceInactive  = New("resource inactive")
	ErrInvalidResource   = New("invalid resource")
	ErrInvalidTransition = New("invalid status transition")
	ErrClassFull         = New("class is full")
	ErrAlreadyEnrolled   = New("already enrolled")

	// Billing
	ErrInvalidAmount       = New("invalid amount")
	ErrInvalidInstallments = New("invalid installment plan")
	ErrOverpayment         = New("payment exceeds charge total")

	// Subscriptions
	ErrSubscriptionExists = New("open subscription already exists")

	// Shared
	ErrValidation       = New("validation failed")
	ErrNotFound         = New("not found")
	ErrAlreadyCancelled = New("already cancelled")
	ErrForbidden        = New("forbidden")
)
