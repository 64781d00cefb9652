package entities

import (
	"fmt"
	"strings"
)

// Profession is the qualification a worker holds and a shift requires
type Profession string

const (
	// ProfessionCNA is a certified nursing assistant
	ProfessionCNA Profession = "CNA"
	// ProfessionLVN is a licensed vocational nurse
	ProfessionLVN Profession = "LVN"
	// ProfessionRN is a registered nurse
	ProfessionRN Profession = "RN"
)

// Valid reports whether p is one of the known professions
func (p Profession) Valid() bool {
	switch p {
	case ProfessionCNA, ProfessionLVN, ProfessionRN:
		return true
	}
	return false
}

// ParseProfession parses a profession code, case-insensitively
func ParseProfession(s string) (Profession, error) {
	p := Profession(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown profession %q", s)
	}
	return p, nil
}
