package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("correct horse battery staple")); err != nil {
		t.Errorf("hash does not verify: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")); err == nil {
		t.Error("wrong password verified")
	}
}

func TestIPRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(1, 2)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := limiter.LimitMiddleware(next)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/api/example", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	if codes[0] != 200 || codes[1] != 200 {
		t.Errorf("first two requests = %v, want 200s (burst)", codes[:2])
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want 429", codes[2])
	}

	// A different address gets its own bucket.
	req := httptest.NewRequest("GET", "/api/example", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != 200 {
		t.Errorf("fresh address = %d, want 200", rec.Code)
	}
}

func TestIsValidToken(t *testing.T) {
	env := &Authenv{JWTkey: []byte("test-key")}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 7,
		"login":   "inspector",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(env.JWTkey)
	if err != nil {
		t.Fatal(err)
	}
	if !env.isValidToken(signed) {
		t.Error("valid token rejected")
	}
	if env.isValidToken(signed + "tampered") {
		t.Error("tampered token accepted")
	}

	other := &Authenv{JWTkey: []byte("other-key")}
	if other.isValidToken(signed) {
		t.Error("token signed with a different key accepted")
	}
}
