package rrule

import (
	"strings"
	"time"

	goRrule "github.com/teambition/rrule-go"
)

// Enumerator is the external collaborator of §6.C: given a base local
// start and an RFC 5545 rule string, produce successive local starts up
// to (and including, per Between's inclusive flag) an upper bound. The
// scan engine applies its own zone interpretation, exclusion filtering,
// and window clipping on top of whatever this returns — it never
// inspects FREQ/BYDAY/etc. itself.
type Enumerator interface {
	Expand(base time.Time, rule string, until time.Time) ([]time.Time, error)
}

// TeambitionEnumerator implements Enumerator on top of
// github.com/teambition/rrule-go, the RRULE library already present in
// several calendar tools in the retrieved pack (emersion/go-webdav,
// stevegt/timectl, and others). Because that library enumerates by
// advancing calendar fields rather than adding fixed second offsets, the
// wall-clock time of each occurrence is preserved across DST transitions
// for free — exactly the property §4.4 requires.
type TeambitionEnumerator struct{}

func (TeambitionEnumerator) Expand(base time.Time, rule string, until time.Time) ([]time.Time, error) {
	trimmed := strings.TrimSpace(rule)
	if trimmed == "" {
		return nil, ErrInvalidRRuleString
	}
	if !strings.HasPrefix(trimmed, "RRULE:") {
		trimmed = "RRULE:" + trimmed
	}
	parsed, err := goRrule.StrToRRule(trimmed)
	if err != nil {
		return nil, err
	}
	parsed.DTStart(base)
	if until.Before(base) {
		return nil, nil
	}
	return parsed.Between(base, until, true), nil
}
