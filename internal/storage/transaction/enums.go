package transaction

import (
	"strings"

	"github.com/carson-networks/transaction-server/internal/errcode"
)

type Type string

const (
	TypeDeposit    Type = "DEPOSIT"
	TypeWithdrawal Type = "WITHDRAWAL"
	TypeTransfer   Type = "TRANSFER"
	TypePayment    Type = "PAYMENT"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeDeposit, TypeWithdrawal, TypeTransfer, TypePayment:
		return true
	}
	return false
}

type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailure Status = "FAILURE"
	StatusPending Status = "PENDING"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusSuccess, StatusFailure, StatusPending:
		return true
	}
	return false
}

type Currency string

const (
	CurrencyCNY Currency = "CNY"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyJPY Currency = "JPY"
)

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyCNY, CurrencyUSD, CurrencyEUR, CurrencyJPY:
		return true
	}
	return false
}

type Channel string

const (
	ChannelCounter    Channel = "COUNTER"
	ChannelATM        Channel = "ATM"
	ChannelOnlineBank Channel = "ONLINE_BANK"
	ChannelMobileApp  Channel = "MOBILE_APP"
)

func (c Channel) IsValid() bool {
	switch c {
	case ChannelCounter, ChannelATM, ChannelOnlineBank, ChannelMobileApp:
		return true
	}
	return false
}

// The Parse functions turn free-form input into typed values. An empty input
// yields the zero value so the validator can report the field as required.

func ParseType(raw string) (Type, error) {
	t := Type(normalize(raw))
	if t != "" && !t.IsValid() {
		return "", errcode.Validation("invalid transaction type")
	}
	return t, nil
}

func ParseStatus(raw string) (Status, error) {
	s := Status(normalize(raw))
	if s != "" && !s.IsValid() {
		return "", errcode.Validation("invalid transaction status")
	}
	return s, nil
}

func ParseCurrency(raw string) (Currency, error) {
	c := Currency(normalize(raw))
	if c != "" && !c.IsValid() {
		return "", errcode.Validation("invalid currency")
	}
	return c, nil
}

func ParseChannel(raw string) (Channel, error) {
	c := Channel(normalize(raw))
	if c != "" && !c.IsValid() {
		return "", errcode.Validation("invalid transaction channel")
	}
	return c, nil
}

func normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
