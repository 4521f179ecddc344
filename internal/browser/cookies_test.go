package browser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCookies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies-lever.json")
	body := `[
		{"name": "cc_cookie", "value": "dismiss", "domain": ".lever.co", "expires": 1999999999, "secure": true, "sameSite": "Lax"},
		{"name": "lever-session", "value": "abc", "domain": "jobs.lever.co", "path": "/aerostrat", "httpOnly": true, "sameSite": "no_restriction"},
		{"name": "", "value": "dropped", "domain": ".lever.co"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cookies, err := LoadCookies(path)
	require.NoError(t, err)
	require.Len(t, cookies, 2)

	consent := cookies[0]
	assert.Equal(t, "cc_cookie", consent.Name)
	assert.Equal(t, ".lever.co", *consent.Domain)
	assert.Equal(t, "/", *consent.Path)
	assert.Equal(t, float64(1999999999), *consent.Expires)
	assert.True(t, *consent.Secure)
	assert.Nil(t, consent.HttpOnly)
	assert.Equal(t, playwright.SameSiteAttributeLax, consent.SameSite)

	session := cookies[1]
	assert.Equal(t, "/aerostrat", *session.Path)
	assert.True(t, *session.HttpOnly)
	assert.Nil(t, session.Expires)
	assert.Equal(t, playwright.SameSiteAttributeNone, session.SameSite)
}

func TestLoadCookies_Errors(t *testing.T) {
	_, err := LoadCookies(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err = LoadCookies(path)
	assert.Error(t, err)
}
