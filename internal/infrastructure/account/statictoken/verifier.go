// Package statictoken is a stand-in token verifier for environments
// without a real account service. Tokens map statically to principals.
package statictoken

import (
	"context"
	"fmt"
	"strings"

	"github.com/andrasetya/draft-league/internal/domain/user"
	"github.com/andrasetya/draft-league/internal/usecase"
)

type Verifier struct {
	principals map[string]user.Principal
}

// NewVerifier builds a verifier from token -> user-id pairs. The username
// defaults to the user id.
func NewVerifier(tokens map[string]string) *Verifier {
	principals := make(map[string]user.Principal, len(tokens))
	for token, userID := range tokens {
		token = strings.TrimSpace(token)
		userID = strings.TrimSpace(userID)
		if token == "" || userID == "" {
			continue
		}
		principals[token] = user.Principal{UserID: userID, Username: userID}
	}

	return &Verifier{principals: principals}
}

func (v *Verifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	principal, ok := v.principals[strings.TrimSpace(token)]
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: unknown access token", usecase.ErrUnauthorized)
	}

	return principal, nil
}
