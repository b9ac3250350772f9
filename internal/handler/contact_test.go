package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dewinson2/MJCL/internal/contact"
	"github.com/dewinson2/MJCL/internal/domain"
)

func TestContact_DefaultsWhenEmpty(t *testing.T) {
	env := newTestEnv(t)

	w := env.get("/contact")

	require.Equal(t, http.StatusOK, w.Code)
	info := decode[domain.ContactInfo](t, w.Body)
	assert.Equal(t, "info@mjclservicios.com", info.Email1)
	assert.Equal(t, int64(1), info.ID)
}

func TestContact_UpdateInvalidatesPublicResponse(t *testing.T) {
	env := newTestEnv(t)
	env.get("/contact")
	assert.Equal(t, cacheHit, env.get("/contact").Header().Get(HeaderCache))

	w := env.sendForm(http.MethodPut, "/admin/contact", url.Values{
		"phone1":        {"+58 212 555 0101"},
		"email1":        {"rrhh@mjclservicios.com"},
		"address_line1": {"Calle 5"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, contact.MsgUpdated, decode[domain.ActionResult](t, w.Body).Message)

	w = env.get("/contact")
	assert.Equal(t, cacheMiss, w.Header().Get(HeaderCache))
	assert.Equal(t, "rrhh@mjclservicios.com", decode[domain.ContactInfo](t, w.Body).Email1)

	admin := decode[domain.ContactInfo](t, env.get("/admin/contact").Body)
	assert.Equal(t, "Calle 5", admin.AddressLine1)
}

func TestContact_UpdateValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.sendJSON(http.MethodPut, "/admin/contact", `{"phone1":"1","email1":"nope","address_line1":"x","twitter_url":"twitter"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	res := decode[domain.ActionResult](t, w.Body)
	assert.Contains(t, res.Errors, "email1")
	assert.Contains(t, res.Errors, "twitter_url")
}
