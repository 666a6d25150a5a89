package models

import "time"

type CardType string

const (
	CardAll     CardType = "all"
	CardCredit  CardType = "credit"
	CardDebit   CardType = "debit"
	CardPrepaid CardType = "prepaid"
)

var ValidCardTypes = map[CardType]bool{
	CardAll:     true,
	CardCredit:  true,
	CardDebit:   true,
	CardPrepaid: true,
}

type TransactionType string

const (
	TxAll        TransactionType = "all"
	TxPurchase   TransactionType = "purchase"
	TxWithdrawal TransactionType = "withdrawal"
	TxRefund     TransactionType = "refund"
	TxTransfer   TransactionType = "transfer"
)

var ValidTransactionTypes = map[TransactionType]bool{
	TxAll:        true,
	TxPurchase:   true,
	TxWithdrawal: true,
	TxRefund:     true,
	TxTransfer:   true,
}

// DateRange bounds are both optional. Accepted by the query service but
// not applied to the generated series.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// DashboardFilters narrows the generated series by the categorical fields.
type DashboardFilters struct {
	DateRange       DateRange       `json:"date_range"`
	CardType        CardType        `json:"card_type"`
	TransactionType TransactionType `json:"transaction_type"`
}

type TransactionVolumePoint struct {
	Date   string `json:"date"`
	Volume int    `json:"volume"`
}

type CardTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type FraudAlertPoint struct {
	Date   string `json:"date"`
	Alerts int    `json:"alerts"`
}

type TransactionTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// DashboardData holds the four chart-ready series.
type DashboardData struct {
	TransactionVolume    []TransactionVolumePoint `json:"transaction_volume"`
	CardTypeDistribution []CardTypeCount          `json:"card_type_distribution"`
	FraudAlerts          []FraudAlertPoint        `json:"fraud_alerts"`
	TransactionTypes     []TransactionTypeCount   `json:"transaction_types"`
}
