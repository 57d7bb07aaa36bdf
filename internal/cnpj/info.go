package cnpj

import (
	"regexp"
	"strings"
)

// Kind distinguishes a head office from its branches.
type Kind string

const (
	KindHeadOffice Kind = "MATRIZ"
	KindBranch     Kind = "FILIAL"
	KindUnknown    Kind = "INVALID"
)

const headOfficeBranch = "0001"

// candidatePattern matches a formatted CNPJ or a maximal run of digits.
// The formatted branch is tried first at each position.
var candidatePattern = regexp.MustCompile(`\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}|\d+`)

// Info holds information about a CNPJ
type Info struct {
	Original  string `json:"original"`
	Cleaned   string `json:"cleaned"`
	Formatted string `json:"formatted"`
	Valid     bool   `json:"valid"`
	Reason    Reason `json:"reason"`
	Kind      Kind   `json:"kind"`
	Root      string `json:"root,omitempty"`
	Branch    string `json:"branch,omitempty"`
}

// Format formats CNPJ with dots, slash and dash (XX.XXX.XXX/XXXX-XX).
// Input without exactly 14 digits is returned unchanged.
func Format(cnpj string) string {
	cleaned := Clean(cnpj)
	if len(cleaned) != Length {
		return cnpj
	}

	return cleaned[:2] + "." + cleaned[2:5] + "." + cleaned[5:8] + "/" + cleaned[8:12] + "-" + cleaned[12:14]
}

// Root returns the first 8 digits, shared by all branches of a company.
func Root(cnpj string) string {
	cleaned := Clean(cnpj)
	if len(cleaned) != Length {
		return ""
	}
	return cleaned[:8]
}

// Branch returns the branch number (positions 8-11)
func Branch(cnpj string) string {
	cleaned := Clean(cnpj)
	if len(cleaned) != Length {
		return ""
	}
	return cleaned[8:12]
}

// KindOf returns whether the CNPJ belongs to a head office or a branch.
func KindOf(cnpj string) Kind {
	branch := Branch(cnpj)
	switch {
	case branch == "":
		return KindUnknown
	case branch == headOfficeBranch:
		return KindHeadOffice
	default:
		return KindBranch
	}
}

// SameRoot checks if two CNPJs belong to the same company.
func SameRoot(a, b string) bool {
	rootA, rootB := Root(a), Root(b)
	return rootA != "" && rootA == rootB
}

// Analyze validates a CNPJ and breaks it into its parts.
func Analyze(cnpj string) Info {
	res := Validate(cnpj)

	info := Info{
		Original: cnpj,
		Cleaned:  res.Cleaned,
		Valid:    res.Valid,
		Reason:   res.Reason,
		Kind:     KindUnknown,
	}

	if res.Valid {
		info.Formatted = Format(res.Cleaned)
		info.Kind = KindOf(res.Cleaned)
		info.Root = Root(res.Cleaned)
		info.Branch = Branch(res.Cleaned)
	}

	return info
}

// FindAll returns every valid CNPJ in text as it was written, in document
// order. A number seen twice, formatted or not, is reported once. Bare numbers
// must be a run of exactly 14 digits; letters or underscores around them are
// allowed.
func FindAll(text string) []string {
	var found []string
	seen := make(map[string]struct{})

	for _, loc := range candidatePattern.FindAllStringIndex(text, -1) {
		match := text[loc[0]:loc[1]]
		formatted := strings.ContainsRune(match, '.')

		switch {
		case formatted && loc[1] < len(text) && isDigit(text[loc[1]]):
			continue
		case !formatted && len(match) != Length:
			continue
		}
		if !IsValid(match) {
			continue
		}

		cleaned := Clean(match)
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		found = append(found, match)
	}

	return found
}

// ExtractFromText is FindAll with every match reduced to its 14 digits.
func ExtractFromText(text string) []string {
	found := FindAll(text)
	for i, m := range found {
		found[i] = Clean(m)
	}
	return found
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
