package auth

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/gophsecrets/internal/common"
)

func TestValidateEmail_Valid(t *testing.T) {
	cases := []string{
		"a@b.com",
		"x@y.z",
		"first.last@sub.domain.org",
		"user+tag@example.co.uk",
		"a@b.c.d",
	}

	for _, email := range cases {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("ValidateEmail(%q) error = %v, want nil", email, err)
		}
	}
}

func TestValidateEmail_Invalid(t *testing.T) {
	cases := []string{
		"",
		"plainaddress",
		"a.b.com",
		"a@bcom",
		"@b.com",
		"a@.com",
		"a@b.",
		"a b@c.com",
		"a@b .com",
		"a@@b.com",
		" a@b.com",
		"a@b.com\n",
		"a\vb@c.com",
		"a\u00a0b@c.com",
		"a@b\u2003.com",
		"\ufeffa@b.com",
		"a\u2028@b.com",
		"a@b.c\u3000om",
		"a\u202fb@c.com",
	}

	for _, email := range cases {
		if err := ValidateEmail(email); !errors.Is(err, common.ErrInvalidEmailFormat) {
			t.Errorf("ValidateEmail(%q) error = %v, want ErrInvalidEmailFormat", email, err)
		}
	}
}

func TestValidatePassword_Valid(t *testing.T) {
	cases := []string{
		"Abc123",
		"aB3xyz",
		"Abcd1234",
		"Zz9!@#",
		"pa ss1W",
	}

	for _, p := range cases {
		if err := ValidatePassword(p); err != nil {
			t.Errorf("ValidatePassword(%q) error = %v, want nil", p, err)
		}
	}
}

func TestValidatePassword_Weak(t *testing.T) {
	cases := map[string]string{
		"too short":     "Ab1",
		"five chars":    "Abc12",
		"nine chars":    "Abcd12345",
		"no digit":      "Abcdef",
		"no lowercase":  "ABC123",
		"no uppercase":  "abc123",
		"empty":         "",
		"newline":       "Abc\n123",
		"unicode upper": "Äbc123",
	}

	for name, p := range cases {
		if err := ValidatePassword(p); !errors.Is(err, common.ErrWeakPassword) {
			t.Errorf("%s: ValidatePassword(%q) error = %v, want ErrWeakPassword", name, p, err)
		}
	}
}

func TestValidateCredentials_EmailCheckedFirst(t *testing.T) {
	if err := ValidateCredentials("bad", "weak"); !errors.Is(err, common.ErrInvalidEmailFormat) {
		t.Fatalf("want ErrInvalidEmailFormat, got %v", err)
	}
	if err := ValidateCredentials("a@b.com", "weak"); !errors.Is(err, common.ErrWeakPassword) {
		t.Fatalf("want ErrWeakPassword, got %v", err)
	}
	if err := ValidateCredentials("a@b.com", "Abc123"); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
}
