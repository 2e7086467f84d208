package authz_test

import (
	"testing"

	"github.com/prettyirrelevant/ecx-property-hub-hackathon/constant"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/authz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizer_Allowed(t *testing.T) {
	a, err := authz.New()
	require.NoError(t, err)

	tests := []struct {
		role   constant.Role
		method string
		path   string
		want   bool
	}{
		{constant.RoleAgent, "POST", "/listings", true},
		{constant.RoleCustomer, "POST", "/listings", false},
		{constant.RoleAgent, "PUT", "/listings/12", true},
		{constant.RoleAgent, "DELETE", "/listings/12/images/3", true},
		{constant.RoleCustomer, "DELETE", "/listings/12", false},
		{constant.RoleCustomer, "POST", "/listings/12/reviews", true},
		{constant.RoleAgent, "POST", "/listings/12/reviews", false},
		{constant.RoleCustomer, "POST", "/listings/12/save", true},
		{constant.RoleAgent, "POST", "/listings/12/unsave", true},
		{constant.RoleCustomer, "GET", "/listings/saved", true},
		{constant.RoleAgent, "GET", "/accounts/profile", true},
		{constant.Role("admin"), "GET", "/accounts/profile", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role)+" "+tt.method+" "+tt.path, func(t *testing.T) {
			got, err := a.Allowed(tt.role, tt.path, tt.method)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsPublic(t *testing.T) {
	assert.True(t, authz.IsPublic("/listings", "GET"))
	assert.True(t, authz.IsPublic("/listings/7", "GET"))
	assert.True(t, authz.IsPublic("/listings/search", "GET"))
	assert.True(t, authz.IsPublic("/accounts/confirm", "POST"))
	assert.True(t, authz.IsPublic("/images/2Bc7pQvM", "GET"))
	assert.False(t, authz.IsPublic("/listings/saved", "GET"))
	assert.False(t, authz.IsPublic("/listings/7", "DELETE"))
	assert.False(t, authz.IsPublic("/listings", "POST"))
	assert.False(t, authz.IsPublic("/accounts/profile", "GET"))
}
