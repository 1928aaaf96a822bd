package validation

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"a@b.c", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"@example.com", false},
		{"user@.com", false},
		{"user @example.com", false},
		{"user@exa mple.com", false},
		{"", false},
		{"two@@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmail(tt.input))
		})
	}
}

// For any local/domain/tld made of non-space, non-@ characters the pattern accepts the address,
// and removing the @ always makes it invalid.
func TestProperty_EmailShape(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	part := gen.AlphaString().SuchThat(func(s string) bool { return s != "" })

	properties.Property("local@domain.tld is accepted", prop.ForAll(
		func(local, domain, tld string) bool {
			return IsEmail(local + "@" + domain + "." + tld)
		},
		part, part, part,
	))

	properties.Property("addresses without @ are rejected", prop.ForAll(
		func(local, domain, tld string) bool {
			return !IsEmail(local + domain + "." + tld)
		},
		part, part, part,
	))

	properties.Property("addresses containing whitespace are rejected", prop.ForAll(
		func(local, domain string) bool {
			return !IsEmail(local + " @" + domain + ".com")
		},
		part, part,
	))

	properties.TestingRun(t)
}

func TestRegister(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	type request struct {
		UserEmail string `validate:"required,feedback_email"`
	}

	assert.NoError(t, v.Struct(request{UserEmail: "user@example.com"}))

	err := v.Struct(request{UserEmail: "not-an-email"})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, EmailTag, verrs[0].Tag())
	assert.True(t, strings.HasSuffix(verrs[0].Namespace(), "UserEmail"))
}
