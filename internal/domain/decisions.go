package domain

import "time"

// UpcomingAction é uma ação futura planejada pela "IA" da usina.
// Conteúdo puramente demonstrativo, gerado ou vindo das fixtures.
type UpcomingAction struct {
	ID             string    `json:"id" yaml:"id"`
	Persona        Persona   `json:"persona" yaml:"persona"`
	Title          string    `json:"title" yaml:"title"`
	ScheduledAt    time.Time `json:"scheduled_at" yaml:"scheduled_at"`
	ExpectedImpact string    `json:"expected_impact" yaml:"expected_impact"`
	ProofID        string    `json:"proof_id" yaml:"proof_id"`
}

// Explanation é a justificativa exibida para uma decisão já tomada.
type Explanation struct {
	ID         string    `json:"id" yaml:"id"`
	Persona    Persona   `json:"persona" yaml:"persona"`
	Summary    string    `json:"summary" yaml:"summary"`
	Detail     string    `json:"detail" yaml:"detail"`
	Confidence float64   `json:"confidence" yaml:"confidence"`
	DecidedAt  time.Time `json:"decided_at" yaml:"decided_at"`
	TxHash     string    `json:"tx_hash" yaml:"tx_hash"`
}
