package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/dto"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/mocks"
)

func TestJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validClaims := &dto.StaffClaims{Username: "frontdesk", Role: "staff"}

	tests := []struct {
		name       string
		authHeader string
		setupMock  func(*mocks.MockAuthService)
		wantStatus int
		wantStaff  string
	}{
		{
			name:       "missing authorization header",
			authHeader: "",
			setupMock:  func(m *mocks.MockAuthService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header without bearer prefix",
			authHeader: "Token abc123",
			setupMock:  func(m *mocks.MockAuthService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty bearer token",
			authHeader: "Bearer ",
			setupMock:  func(m *mocks.MockAuthService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			setupMock: func(m *mocks.MockAuthService) {
				m.On("ValidateToken", "bad-token").Return(nil, errors.New("token is invalid"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token passes and sets claims",
			authHeader: "Bearer good-token",
			setupMock: func(m *mocks.MockAuthService) {
				m.On("ValidateToken", "good-token").Return(validClaims, nil)
			},
			wantStatus: http.StatusOK,
			wantStaff:  "frontdesk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuth := new(mocks.MockAuthService)
			tt.setupMock(mockAuth)

			var gotStaff string
			router := gin.New()
			router.Use(RequestID(), JWTAuth(mockAuth))
			router.GET("/staff/orders", func(c *gin.Context) {
				if claims := GetStaffClaims(c); claims != nil {
					gotStaff = claims.Username
				}
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/staff/orders", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStaff != "" {
				assert.Equal(t, tt.wantStaff, gotStaff)
			}
			mockAuth.AssertExpectations(t)
		})
	}
}

func TestGetStaffClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns nil when unauthenticated", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		assert.Nil(t, GetStaffClaims(c))
	})

	t.Run("returns nil for wrong type", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set(staffClaimsKey, "not-claims")
		assert.Nil(t, GetStaffClaims(c))
	})

	t.Run("returns stored claims", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		claims := &dto.StaffClaims{Username: "frontdesk", Role: "staff"}
		c.Set(staffClaimsKey, claims)
		assert.Same(t, claims, GetStaffClaims(c))
	})
}
