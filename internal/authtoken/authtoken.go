package authtoken

import (
	"errors"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidOrg is returned when the token carries no usable organization id.
// Controllers treat it as a scoping failure: no network call is made and
// mutations stay disabled.
var ErrInvalidOrg = errors.New("Invalid organization access")

// Claims is the decoded view of the stored access token. The console only
// reads claims, it never verifies the signature; the backend does that on
// every request.
type Claims struct {
	UserID int
	Role   string
	orgID  int
	orgOK  bool
}

// Decode parses tokenStr without verifying it and extracts the claims the
// console cares about. organization_id may arrive as a JSON number or as a
// numeric string depending on how the token was issued.
func Decode(tokenStr string) (Claims, error) {
	var out Claims

	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		return out, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return out, errors.New("invalid token claims")
	}

	if v, ok := claims["user_id"]; ok {
		if n, ok := toInt(v); ok {
			out.UserID = n
		}
	}
	if v, ok := claims["role"].(string); ok {
		out.Role = v
	}
	if v, ok := claims["organization_id"]; ok {
		if n, ok := toInt(v); ok && n > 0 {
			out.orgID = n
			out.orgOK = true
		}
	}

	return out, nil
}

// OrgID returns the tenant id embedded in the token, or ErrInvalidOrg when
// the claim is missing or not a positive integer.
func (c Claims) OrgID() (int, error) {
	if !c.orgOK {
		return 0, ErrInvalidOrg
	}
	return c.orgID, nil
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}
