package models

type Format string

const (
	FormatTournament Format = "tournament" // round-robin league
	FormatPlayoff    Format = "playoff"    // single elimination
)

func (f Format) IsValid() bool {
	return f == FormatTournament || f == FormatPlayoff
}

// Seeding decides where bye slots go in the first playoff round.
type Seeding string

const (
	// SeedingSpread gives every bye its own first-round match.
	SeedingSpread Seeding = "spread"
	// SeedingSequential appends the byes after the last team.
	SeedingSequential Seeding = "sequential"
)

func (s Seeding) IsValid() bool {
	return s == SeedingSpread || s == SeedingSequential
}
