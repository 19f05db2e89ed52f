package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/client-bank/pkg/configpkg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := zerolog.New(&buf)

	server := gin.New()
	server.Use(RequestLogger(logger))
	server.GET("/ping", func(c *gin.Context) {
		l := zerolog.Ctx(c.Request.Context())
		l.Info().Msg("handler")
		c.Status(http.StatusNoContent)
	})
	server.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	testCases := []struct {
		name           string
		path           string
		requestID      string
		wantStatusCode int
	}{
		{name: "GeneratedID", path: "/ping", wantStatusCode: http.StatusNoContent},
		{name: "ForwardedID", path: "/ping", requestID: "req-1", wantStatusCode: http.StatusNoContent},
		{name: "Panic", path: "/panic", requestID: "req-2", wantStatusCode: http.StatusInternalServerError},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()

			req, err := http.NewRequest(http.MethodGet, tc.path, nil)
			require.NoError(t, err)

			if tc.requestID != "" {
				req.Header.Set(RequestIDHeader, tc.requestID)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			gotID := recorder.Header().Get(RequestIDHeader)
			require.NotEmpty(t, gotID)

			if tc.requestID != "" {
				require.Equal(t, tc.requestID, gotID)
			}

			lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
			require.NotEmpty(t, lines)

			for _, line := range lines {
				var entry map[string]any
				require.NoError(t, json.Unmarshal(line, &entry))
				require.Equal(t, gotID, entry["request_id"])
			}
		})
	}
}

func TestCreateLogger(t *testing.T) {
	l := CreateLogger(configpkg.Config{Environment: "production"})
	require.Equal(t, zerolog.InfoLevel, l.GetLevel())

	l = CreateLogger(configpkg.Config{Environment: "development"})
	require.Equal(t, zerolog.TraceLevel, l.GetLevel())
}
