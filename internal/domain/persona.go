package domain

// Persona identifica o agente fictício responsável por uma decisão exibida
// no dashboard. É apenas um rótulo de apresentação, não uma entidade executante.
type Persona string

const (
	PersonaOperations  Persona = "operations"
	PersonaMarkets     Persona = "markets"
	PersonaMaintenance Persona = "maintenance"
	PersonaGovernance  Persona = "governance"
)

// Cores fixas usadas pelos badges de persona nas páginas e nos payloads.
var personaColors = map[Persona]string{
	PersonaOperations:  "#38bdf8",
	PersonaMarkets:     "#fbbf24",
	PersonaMaintenance: "#34d399",
	PersonaGovernance:  "#c084fc",
}

var personaLabels = map[Persona]string{
	PersonaOperations:  "Operations",
	PersonaMarkets:     "Markets",
	PersonaMaintenance: "Maintenance",
	PersonaGovernance:  "Governance",
}

// AllPersonas lista as personas na ordem de exibição do dashboard.
func AllPersonas() []Persona {
	return []Persona{PersonaOperations, PersonaMarkets, PersonaMaintenance, PersonaGovernance}
}

// Valid indica se o valor corresponde a uma persona conhecida.
func (p Persona) Valid() bool {
	_, ok := personaColors[p]
	return ok
}

// Color retorna a cor hexadecimal associada à persona.
// Personas desconhecidas usam cinza neutro.
func (p Persona) Color() string {
	if color, ok := personaColors[p]; ok {
		return color
	}
	return "#94a3b8"
}

// Label retorna o nome de exibição da persona.
func (p Persona) Label() string {
	if label, ok := personaLabels[p]; ok {
		return label
	}
	return string(p)
}
