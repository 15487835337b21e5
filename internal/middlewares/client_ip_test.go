package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientIPMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		headers        map[string]string
		expectedRemote string
	}{
		{
			name:           "direct connection with port",
			remoteAddr:     "203.0.113.1:54321",
			headers:        map[string]string{},
			expectedRemote: "203.0.113.1:54321",
		},
		{
			name:           "direct connection without port",
			remoteAddr:     "203.0.113.1",
			headers:        map[string]string{},
			expectedRemote: "203.0.113.1:0",
		},
		{
			name:       "true-client-ip header",
			remoteAddr: "10.0.0.1:12345",
			headers: map[string]string{
				"True-Client-IP": "198.51.100.1",
			},
			expectedRemote: "198.51.100.1:12345",
		},
		{
			name:       "x-real-ip header",
			remoteAddr: "10.0.0.1:12345",
			headers: map[string]string{
				"X-Real-IP": "198.51.100.2",
			},
			expectedRemote: "198.51.100.2:12345",
		},
		{
			name:       "x-forwarded-for multiple IPs takes first",
			remoteAddr: "10.0.0.1:12345",
			headers: map[string]string{
				"X-Forwarded-For": "198.51.100.4, 10.0.0.2, 10.0.0.3",
			},
			expectedRemote: "198.51.100.4:12345",
		},
		{
			name:       "true-client-ip wins over x-real-ip",
			remoteAddr: "10.0.0.1:12345",
			headers: map[string]string{
				"True-Client-IP": "198.51.100.6",
				"X-Real-IP":      "198.51.100.7",
			},
			expectedRemote: "198.51.100.6:12345",
		},
		{
			name:       "invalid forwarded header falls back to remote addr",
			remoteAddr: "10.0.0.1:12345",
			headers: map[string]string{
				"X-Forwarded-For": "invalid-ip",
			},
			expectedRemote: "10.0.0.1:12345",
		},
		{
			name:           "ipv6 address",
			remoteAddr:     "[2001:db8::1]:12345",
			headers:        map[string]string{},
			expectedRemote: "[2001:db8::1]:12345",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var capturedRemoteAddr string
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				capturedRemoteAddr = r.RemoteAddr
				w.WriteHeader(http.StatusOK)
			})

			handler := ClientIPMiddleware(testHandler)

			req := httptest.NewRequest("GET", "/test", nil)
			req.RemoteAddr = tt.remoteAddr
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if capturedRemoteAddr != tt.expectedRemote {
				t.Errorf("expected RemoteAddr %q, got %q", tt.expectedRemote, capturedRemoteAddr)
			}
		})
	}
}
