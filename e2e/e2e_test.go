//go:build e2e

// Package e2e drives the exercise pages in a headless browser.
// Run with: go test -tags e2e ./e2e/...
package e2e

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yashrajoria/classroom-shop/config"
	"github.com/yashrajoria/classroom-shop/database"
	"github.com/yashrajoria/classroom-shop/routes"
)

const pageTimeout = 10 * time.Second

type suite struct {
	browser *rod.Browser
	baseURL string
}

// newSuite starts the shop on a random port and connects a headless browser.
// The test is skipped when no browser can be launched.
func newSuite(t *testing.T) *suite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router, err := routes.NewRouter(config.Config{
		AppEnv:             "test",
		JWTSecret:          "e2e-secret",
		TokenTTL:           time.Hour,
		ProductsSeed:       42,
		ProductsCount:      10,
		LoginRatePerMinute: 0,
	}, database.NewMemoryCartRepository(), nil, zap.NewNop())
	require.NoError(t, err)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	u, err := launcher.New().Headless(true).Launch()
	if err != nil {
		t.Skipf("no browser available: %v", err)
	}
	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		t.Skipf("connect to browser: %v", err)
	}
	t.Cleanup(func() { _ = browser.Close() })

	return &suite{browser: browser, baseURL: srv.URL}
}

func (s *suite) open(t *testing.T, path string) *rod.Page {
	t.Helper()
	page := s.browser.MustPage(s.baseURL + path).Timeout(pageTimeout)
	page.MustWaitLoad()
	t.Cleanup(func() { _ = page.CancelTimeout().Close() })
	return page
}

// expectAlert clicks el and returns the message of the alert it opens.
func expectAlert(page *rod.Page, el *rod.Element) string {
	wait, handle := page.MustHandleDialog()
	go el.MustClick()
	dialog := wait()
	handle(true, "")
	return dialog.Message
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
