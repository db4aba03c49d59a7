package content

import "net/url"

// RequireString returns an InvariantViolation if the value is empty.
func RequireString(field string, value string) error {
	if value == "" {
		return InvariantViolation{Field: field, Reason: "missing value"}
	}
	return nil
}

// RequireURL returns an InvariantViolation if the value is not an absolute
// http(s) URL.
func RequireURL(field string, value string) error {
	if err := RequireString(field, value); err != nil {
		return err
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return InvariantViolation{Field: field, Reason: "not an absolute URL"}
	}
	return nil
}

// RequireNonNegative returns an InvariantViolation if the value is negative.
func RequireNonNegative(field string, value int) error {
	if value < 0 {
		return InvariantViolation{Field: field, Reason: "negative value"}
	}
	return nil
}

// FirstError returns the first non-nil error.
func FirstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
