package utils

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last+tag@sub.domain.org"}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{"", "plain", "missing@tld", "@example.com", "a b@example.com"}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	valid := []string{"Secret1", "secret1!", "SECRET-1", "Pass word9"}
	for _, password := range valid {
		if !IsValidPassword(password) {
			t.Errorf("IsValidPassword(%q) = false, want true", password)
		}
	}

	// Too short, or fewer than three character classes.
	invalid := []string{"", "Aa1", "alllowercase", "UPPERCASE1", "123456"}
	for _, password := range invalid {
		if IsValidPassword(password) {
			t.Errorf("IsValidPassword(%q) = true, want false", password)
		}
	}
}

func TestIsValidRating(t *testing.T) {
	valid := []float64{0.5, 1, 2.5, 4.5, 5}
	for _, value := range valid {
		if !IsValidRating(value) {
			t.Errorf("IsValidRating(%v) = false, want true", value)
		}
	}

	invalid := []float64{0, 0.25, 2.3, 4.75, 5.5, -1}
	for _, value := range invalid {
		if IsValidRating(value) {
			t.Errorf("IsValidRating(%v) = true, want false", value)
		}
	}
}
