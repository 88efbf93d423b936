package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequireAuth(t *testing.T) {
	validToken, err := CreateToken("testuser", testJwtPrivateKey)
	if err != nil {
		t.Fatalf("Failed to create token: %v", err)
	}

	tests := []struct {
		name           string
		authHeader     string
		wantStatusCode int
		wantCaller     string
	}{
		{
			name:           "valid bearer token reaches the handler",
			authHeader:     "Bearer " + validToken,
			wantStatusCode: http.StatusOK,
			wantCaller:     "testuser",
		},
		{
			name:           "missing header",
			authHeader:     "",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "missing bearer prefix",
			authHeader:     validToken,
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "garbage token",
			authHeader:     "Bearer not-a-token",
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotCaller string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if claims := CallerFromContext(r.Context()); claims != nil {
					gotCaller = claims.Username
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			RequireAuth(&testJwtPrivateKey.PublicKey)(handler).ServeHTTP(rr, req)

			if rr.Code != tt.wantStatusCode {
				t.Errorf("got status %d, want %d", rr.Code, tt.wantStatusCode)
			}
			if gotCaller != tt.wantCaller {
				t.Errorf("got caller %q, want %q", gotCaller, tt.wantCaller)
			}
		})
	}
}

func TestCallerFromContext_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if claims := CallerFromContext(req.Context()); claims != nil {
		t.Errorf("expected nil claims on a bare context, got %+v", claims)
	}
}
