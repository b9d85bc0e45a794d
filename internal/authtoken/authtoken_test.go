package authtoken

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestDecodeNumericOrgID(t *testing.T) {
	s := signed(t, jwt.MapClaims{"user_id": 7, "role": "admin", "organization_id": 3})

	claims, err := Decode(s)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	orgID, err := claims.OrgID()
	require.NoError(t, err)
	assert.Equal(t, 3, orgID)
}

func TestDecodeStringOrgID(t *testing.T) {
	s := signed(t, jwt.MapClaims{"user_id": "7", "organization_id": "3"})

	claims, err := Decode(s)
	require.NoError(t, err)
	orgID, err := claims.OrgID()
	require.NoError(t, err)
	assert.Equal(t, 3, orgID)
}

func TestDecodeMissingOrgID(t *testing.T) {
	s := signed(t, jwt.MapClaims{"user_id": 7, "role": "admin"})

	claims, err := Decode(s)
	require.NoError(t, err)
	_, err = claims.OrgID()
	assert.ErrorIs(t, err, ErrInvalidOrg)
}

func TestDecodeRejectsNonPositiveOrgID(t *testing.T) {
	for _, bad := range []interface{}{0, -1, "zero"} {
		s := signed(t, jwt.MapClaims{"organization_id": bad})
		claims, err := Decode(s)
		require.NoError(t, err)
		_, err = claims.OrgID()
		assert.ErrorIs(t, err, ErrInvalidOrg)
	}
}

func TestDecodeMalformedToken(t *testing.T) {
	_, err := Decode("not-a-jwt")
	assert.Error(t, err)
}
