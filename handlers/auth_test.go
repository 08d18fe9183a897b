package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type stubTokenRevoker struct {
	revoked []string
	err     error
}

func (s *stubTokenRevoker) Revoke(ctx context.Context, subjectID string) error {
	if s.err != nil {
		return s.err
	}
	s.revoked = append(s.revoked, subjectID)
	return nil
}

func newLogoutContext(subjectID string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	if subjectID != "" {
		c.Set("subjectID", subjectID)
	}
	return c, w
}

func TestLogoutRevokesCallerToken(t *testing.T) {
	revoker := &stubTokenRevoker{}
	h := &AuthHandler{Tokens: revoker}

	c, w := newLogoutContext("user-1")
	h.Logout(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(revoker.revoked) != 1 || revoker.revoked[0] != "user-1" {
		t.Fatalf("expected exactly user-1 revoked, got %v", revoker.revoked)
	}
}

func TestLogoutWithoutSubject(t *testing.T) {
	revoker := &stubTokenRevoker{}
	h := &AuthHandler{Tokens: revoker}

	c, w := newLogoutContext("")
	h.Logout(c)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if len(revoker.revoked) != 0 {
		t.Fatalf("nothing should be revoked, got %v", revoker.revoked)
	}
}

func TestLogoutRevocationFailure(t *testing.T) {
	h := &AuthHandler{Tokens: &stubTokenRevoker{err: errors.New("redis down")}}

	c, w := newLogoutContext("user-1")
	h.Logout(c)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
