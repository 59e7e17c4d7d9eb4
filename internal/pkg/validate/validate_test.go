package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	ReferenceNumber string   `json:"reference_number" validate:"required,max=50"`
	Email           string   `json:"email" validate:"omitempty,email"`
	Role            string   `json:"role" validate:"required,oneof=operational markets controller supervisor"`
	Value           *float64 `json:"value" validate:"omitempty,gt=0"`
}

func TestStructValid(t *testing.T) {
	require.Nil(t, Struct(&sampleInput{
		ReferenceNumber: "TND-1",
		Role:            "markets",
	}))
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	bad := float64(-5)
	fields := Struct(&sampleInput{
		Email: "not-an-email",
		Role:  "admin",
		Value: &bad,
	})
	require.NotNil(t, fields)

	require.Equal(t, "is required", fields["reference_number"])
	require.Equal(t, "must be a valid email address", fields["email"])
	require.Equal(t, "must be one of: operational markets controller supervisor", fields["role"])
	require.Equal(t, "must be greater than 0", fields["value"])
}
