package billing

type ChargeStatus string

const (
	ChargePending       ChargeStatus = "pending"
	ChargePartiallyPaid ChargeStatus = "partially_paid"
	ChargePaid          ChargeStatus = "paid"
	ChargeCancelled     ChargeStatus = "cancelled"
	ChargeRefunded      ChargeStatus = "refunded"
)

func (s ChargeStatus) String() string { return string(s) }

// Open charges still accept payments.
func (s ChargeStatus) Open() bool {
	return s == ChargePending || s == ChargePartiallyPaid
}

type InstallmentStatus string

const (
	InstallmentPending   InstallmentStatus = "pending"
	InstallmentPaid      InstallmentStatus = "paid"
	InstallmentCancelled InstallmentStatus = "cancelled"
)

func (s InstallmentStatus) String() string { return string(s) }

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentApproved   PaymentStatus = "approved"
	PaymentRefused    PaymentStatus = "refused"
	PaymentCancelled  PaymentStatus = "cancelled"
	PaymentRefunded   PaymentStatus = "refunded"
	PaymentExpired    PaymentStatus = "expired"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:    {PaymentProcessing, PaymentApproved, PaymentRefused, PaymentCancelled, PaymentExpired},
	PaymentProcessing: {PaymentApproved, PaymentRefused, PaymentCancelled, PaymentExpired},
	PaymentApproved:   {PaymentRefunded},
}

func (s PaymentStatus) String() string { return string(s) }

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentProcessing, PaymentApproved, PaymentRefused,
		PaymentCancelled, PaymentRefunded, PaymentExpired:
		return true
	}
	return false
}

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
