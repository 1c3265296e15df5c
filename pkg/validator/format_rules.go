package validator

import (
	"net"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default layouts for Date and DateTime.
const (
	DateLayout     = time.DateOnly
	DateTimeLayout = time.RFC3339
)

// IsEmail reports whether s is a single RFC 5322 address with a dotted domain.
func IsEmail(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// IsURL reports whether s is an absolute URL with scheme and host.
func IsURL(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// IsUUID reports whether s is a canonical hyphenated UUID.
func IsUUID(s string) bool {
	// Fast rejection: check length and hyphen positions before parsing
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// IsIP reports whether s is an IPv4 or IPv6 address.
func IsIP(s string) bool {
	return net.ParseIP(s) != nil
}

// IsTime reports whether s parses with the given layout.
func IsTime(s, layout string) bool {
	_, err := time.Parse(layout, s)
	return err == nil
}

func (v *TextValidator) Email(msg ...string) *TextValidator {
	return v.rule(IsEmail, message(msg, "must be a valid email address"))
}

func (v *TextValidator) URL(msg ...string) *TextValidator {
	return v.rule(IsURL, message(msg, "must be a valid URL"))
}

func (v *TextValidator) UUID(msg ...string) *TextValidator {
	return v.rule(IsUUID, message(msg, "must be a valid UUID"))
}

func (v *TextValidator) IP(msg ...string) *TextValidator {
	return v.rule(IsIP, message(msg, "must be a valid IP address"))
}

// Date validates a calendar date in DateLayout.
func (v *TextValidator) Date(msg ...string) *TextValidator {
	return v.DateIn(DateLayout, msg...)
}

// DateIn validates a calendar date in the given layout.
func (v *TextValidator) DateIn(layout string, msg ...string) *TextValidator {
	return v.rule(func(s string) bool { return IsTime(s, layout) }, message(msg, "must be a valid date"))
}

// DateTime validates a timestamp in DateTimeLayout.
func (v *TextValidator) DateTime(msg ...string) *TextValidator {
	return v.DateTimeIn(DateTimeLayout, msg...)
}

// DateTimeIn validates a timestamp in the given layout.
func (v *TextValidator) DateTimeIn(layout string, msg ...string) *TextValidator {
	return v.rule(func(s string) bool { return IsTime(s, layout) }, message(msg, "must be a valid date and time"))
}
