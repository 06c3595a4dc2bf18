package account

import (
	"net/mail"
	"strings"

	"foodtrace/pkg/domain"
	"foodtrace/pkg/serrors"
)

// NormalizeEmail trims and lower-cases an email address and checks that it
// parses as a bare address.
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", serrors.With(serrors.ErrBadRequest, "email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", serrors.With(serrors.ErrBadRequest, "invalid email address")
	}

	return email, nil
}

// NormalizeProfile canonicalizes the identifier lists of a health profile so
// that the evaluator's exact matching works on user input:
//   - entries are trimmed and lower-cased
//   - empty entries are dropped
//   - duplicates are removed, keeping the first occurrence
//
// Inner spaces are kept, since conditions are human-readable labels.
func NormalizeProfile(p domain.HealthProfile) domain.HealthProfile {
	p.Allergies = normalizeList(p.Allergies)
	p.Diet = normalizeList(p.Diet)
	p.Conditions = normalizeList(p.Conditions)
	p.Goals = normalizeList(p.Goals)

	return p
}

func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
