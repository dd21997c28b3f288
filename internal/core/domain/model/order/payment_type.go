package order

import (
	"fmt"
	"strings"

	"wholesale/internal/pkg/errs"
)

type PaymentType int

const (
	PaymentUnknown PaymentType = iota
	PaymentCash
	PaymentCard
	PaymentTransfer
)

func getPaymentTypeStrings() map[PaymentType]string {
	return map[PaymentType]string{
		PaymentCash:     "cash",
		PaymentCard:     "card",
		PaymentTransfer: "transfer",
	}
}

func getPaymentTypeAliases() map[string]PaymentType {
	return map[string]PaymentType{
		"наличные": PaymentCash,
		"карта":    PaymentCard,
		"перевод":  PaymentTransfer,
	}
}

func ParsePaymentType(s string) (PaymentType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return PaymentUnknown, errs.NewValueIsRequiredError("paymentType")
	}
	for pt, str := range getPaymentTypeStrings() {
		if str == name {
			return pt, nil
		}
	}
	if pt, ok := getPaymentTypeAliases()[name]; ok {
		return pt, nil
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentType", fmt.Errorf("%q is not a payment type", s))
}

func (p PaymentType) Validate() error {
	if _, ok := getPaymentTypeStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentType", fmt.Errorf("%d is not a valid payment type", p))
	}
	return nil
}

func (p PaymentType) String() string {
	if str, ok := getPaymentTypeStrings()[p]; ok {
		return str
	}
	return "unknown"
}
