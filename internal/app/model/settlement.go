package model

type OutputFormat string

const (
	FormatText OutputFormat = `text`
	FormatJSON OutputFormat = `json`
)

type SettlementReport struct {
	RunID       string              `json:"run_id"`
	GeneratedAt string              `json:"generated_at"`
	Settlements SettlementResponses `json:"settlements"`
}

type SettlementResponses []SettlementResponse

type SettlementResponse struct {
	User       string  `json:"user"`
	AmountPaid float64 `json:"amount_paid"`
	AmountOwed float64 `json:"amount_owed"`
}
