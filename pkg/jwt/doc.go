// Package jwt signs and validates the bearer session tokens of the Fisher Fans API.
//
// Tokens are HS256 JSON Web Tokens built with github.com/golang-jwt/jwt/v5 and a
// single process-wide secret. No server-side session store exists: a token is
// valid if its signature checks out and it has not expired.
//
// # Claims
//
//	sub    user id
//	email  user email at issuance
//	iat    issued at (unix seconds)
//	exp    expiry (unix seconds)
//	jti    random id, so two tokens issued in the same second still differ
//	iss    configured issuer
//
// # Usage
//
//	svc, err := jwt.NewService(jwt.Config{
//	    Secret:     cfg.JWT.Secret,
//	    Issuer:     cfg.JWT.Issuer,
//	    Expiration: time.Hour,
//	})
//
//	token, claims, err := svc.Sign(user.ID, user.Email)
//
//	claims, err := svc.Validate(token)
//	if errors.Is(err, jwt.ErrTokenExpired) {
//	    // ask the client to log in again
//	}
package jwt
