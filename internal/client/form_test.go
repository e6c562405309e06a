package client_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hodamousavipour/banking-dashboard-front/internal/client"
	"github.com/hodamousavipour/banking-dashboard-front/internal/core/domain"
)

func TestValidateEntry(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input domain.NewTransaction
		want  []string
	}{
		{
			name:  "valid entry",
			input: domain.NewTransaction{Amount: 100, Description: "Groceries", Date: "2024-06-14"},
			want:  nil,
		},
		{
			name:  "zero amount",
			input: domain.NewTransaction{Amount: 0, Description: "Groceries", Date: "2024-06-14"},
			want:  []string{"Amount cannot be 0"},
		},
		{
			name:  "amount over cap",
			input: domain.NewTransaction{Amount: 1_000_000_001, Description: "Groceries", Date: "2024-06-14"},
			want:  []string{"Amount cannot exceed 1,000,000,000"},
		},
		{
			name:  "description too short",
			input: domain.NewTransaction{Amount: 10, Description: "x", Date: "2024-06-14"},
			want:  []string{"Description must be at least 2 characters"},
		},
		{
			name:  "description too long",
			input: domain.NewTransaction{Amount: 10, Description: strings.Repeat("a", 121), Date: "2024-06-14"},
			want:  []string{"Description must be at most 120 characters"},
		},
		{
			name:  "missing date",
			input: domain.NewTransaction{Amount: 10, Description: "Groceries"},
			want:  []string{"Date is required"},
		},
		{
			name:  "malformed date",
			input: domain.NewTransaction{Amount: 10, Description: "Groceries", Date: "14/06/2024"},
			want:  []string{"Invalid date format"},
		},
		{
			name:  "impossible date",
			input: domain.NewTransaction{Amount: 10, Description: "Groceries", Date: "2024-02-30"},
			want:  []string{"Invalid calendar date"},
		},
		{
			name:  "year before 2000",
			input: domain.NewTransaction{Amount: 10, Description: "Groceries", Date: "1999-12-31"},
			want:  []string{"Year must be between 2000 and 2024"},
		},
		{
			name:  "future date",
			input: domain.NewTransaction{Amount: 10, Description: "Groceries", Date: "2024-06-16"},
			want:  []string{"Date cannot be in the future"},
		},
		{
			name:  "multiple fields rejected",
			input: domain.NewTransaction{Amount: 0, Description: " ", Date: ""},
			want:  []string{"Amount cannot be 0", "Description is required", "Date is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := client.ValidateEntry(tt.input, now)
			require.Len(t, errs, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want, errs[i].Message)
			}
		})
	}
}

func TestValidateEntry_NegativeAmountWithinBound(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	errs := client.ValidateEntry(domain.NewTransaction{Amount: -5000, Description: "Rent", Date: "2024-06-01"}, now)
	assert.Empty(t, errs)
}
