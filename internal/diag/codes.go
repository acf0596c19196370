package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the catch-all for unclassified findings.
	UnknownCode Code = 0

	// Lint findings (1000-1999).
	LintInfo Code = 1000
	// LintOptionMapUnitFn flags option.map(f) where f returns unit.
	LintOptionMapUnitFn Code = 1001
	// LintResultMapUnitFn flags result.map(f) where f returns unit.
	LintResultMapUnitFn Code = 1002

	// IO failures (4000-4999).
	IOLoadFileError Code = 4000
	IOCacheError    Code = 4001

	// Project/configuration problems (5000-5999).
	ProjInfo          Code = 5000
	ProjInvalidConfig Code = 5001
	ProjUnknownLint   Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode:         "Unknown",
	LintInfo:            "Lint information",
	LintOptionMapUnitFn: "map(f) on an Option where f returns unit",
	LintResultMapUnitFn: "map(f) on a Result where f returns unit",
	IOLoadFileError:     "I/O load file error",
	IOCacheError:        "Lint cache error",
	ProjInfo:            "Project information",
	ProjInvalidConfig:   "Invalid configuration file",
	ProjUnknownLint:     "Unknown lint code in configuration",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LINT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

// LintCodes lists every code a rule can emit, in ascending order.
func LintCodes() []Code {
	return []Code{LintOptionMapUnitFn, LintResultMapUnitFn}
}

// LintCodeByID resolves a printable ID like "LINT1001" back to its code.
// Only lint codes participate: configuration can disable rules, not I/O
// or project reporting.
func LintCodeByID(id string) (Code, bool) {
	for _, c := range LintCodes() {
		if c.ID() == id {
			return c, true
		}
	}
	return UnknownCode, false
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
