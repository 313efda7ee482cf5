package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_AllPagesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{
		"catalogue.html", "contact.html", "order.html", "shop.html",
		"books.html", "login.html", "dashboard.html",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestTemplates_LoginShowsError(t *testing.T) {
	tmpl := MustTemplates()

	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "login.html", map[string]any{
		"Title": "Connexion",
		"Email": "<script>",
		"Error": "Identifiants invalides",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `<p id="error-message">Identifiants invalides</p>`)
	assert.NotContains(t, buf.String(), `value="<script>"`)
}
