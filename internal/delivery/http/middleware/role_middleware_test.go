package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"salon-booking-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), RoleKey, role)
	return req.WithContext(ctx)
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("admin passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireAdmin(next).ServeHTTP(rec, requestWithRole(entity.RoleAdmin))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("specialist is forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireAdmin(next).ServeHTTP(rec, requestWithRole(entity.RoleSpecialist))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing role is unauthorized", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireAdmin(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRoleAllowsAnyListedRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mw := RequireRole(entity.RoleAdmin, entity.RoleSpecialist)(next)

	for _, role := range []string{entity.RoleAdmin, entity.RoleSpecialist} {
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, requestWithRole(role))
		assert.Equal(t, http.StatusOK, rec.Code, role)
	}

	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, requestWithRole("receptionist"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
