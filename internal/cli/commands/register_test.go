package commands

import (
	"testing"

	"github.com/breate-dev/breate/internal/cli/client"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		form    registerForm
		wantErr string
	}{
		{
			name: "valid",
			form: registerForm{Email: "a@b.com", Password: "longenough", ArchetypeID: 1, TierID: 2},
		},
		{
			name:    "missing email",
			form:    registerForm{Password: "longenough", ArchetypeID: 1, TierID: 2},
			wantErr: "email is required",
		},
		{
			name:    "bad email",
			form:    registerForm{Email: "not-an-email", Password: "longenough", ArchetypeID: 1, TierID: 2},
			wantErr: "not a valid email address",
		},
		{
			name:    "short password",
			form:    registerForm{Email: "a@b.com", Password: "short", ArchetypeID: 1, TierID: 2},
			wantErr: "at least 8 characters",
		},
		{
			name:    "missing archetype",
			form:    registerForm{Email: "a@b.com", Password: "longenough", TierID: 2},
			wantErr: "select an archetype and tier",
		},
		{
			name:    "missing tier",
			form:    registerForm{Email: "a@b.com", Password: "longenough", ArchetypeID: 1},
			wantErr: "select an archetype and tier",
		},
	}

	v := validator.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.form)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, registerValidationError(err).Error(), tt.wantErr)
		})
	}
}

func TestArchetypeAndTierLabels(t *testing.T) {
	archetypes := []client.Archetype{
		{ID: 1, Name: "Maker"},
		{ID: 2, Name: "Strategist"},
	}
	require.Equal(t, []string{"Maker", "Strategist"}, archetypeLabels(archetypes))
	require.Equal(t, []int{1, 2}, archetypeIDs(archetypes))

	tiers := []client.Tier{{ID: 3, Name: "Seed"}, {ID: 4, Name: "Bloom"}}
	require.Equal(t, []string{"Seed", "Bloom"}, tierLabels(tiers))
	require.Equal(t, []int{3, 4}, tierIDs(tiers))
}
