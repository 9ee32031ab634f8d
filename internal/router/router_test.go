package router_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"petclinic/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type client struct {
	t    *testing.T
	base string
	http *http.Client
}

func newClient(t *testing.T) *client {
	t.Helper()

	h, err := router.NewRouter(router.Options{})
	require.NoError(t, err)

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &client{
		t:    t,
		base: ts.URL,
		http: &http.Client{
			Jar: jar,
			// Los redirects se verifican a mano.
			CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
		},
	}
}

func (c *client) get(path string) (*http.Response, string) {
	c.t.Helper()
	res, err := c.http.Get(c.base + path)
	require.NoError(c.t, err)
	return res, readBody(c.t, res)
}

func (c *client) post(path string, form url.Values) (*http.Response, string) {
	c.t.Helper()
	res, err := c.http.PostForm(c.base+path, form)
	require.NoError(c.t, err)
	return res, readBody(c.t, res)
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()
	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(b)
}

func TestHTTP_EndToEnd_OwnerPetVisit(t *testing.T) {
	c := newClient(t)

	// 1) Alta de owner
	res, _ := c.post("/owners/new", url.Values{
		"firstName": {"Ana"},
		"lastName":  {"Lopez"},
		"address":   {"Calle 1"},
		"city":      {"Lima"},
		"telephone": {"0123456789"},
	})
	require.Equal(t, http.StatusFound, res.StatusCode)
	ownerURL := res.Header.Get("Location")
	require.Regexp(t, `^/owners/\d+$`, ownerURL)

	// 2) La ficha muestra el flash una sola vez
	res, body := c.get(ownerURL)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Ana Lopez")
	assert.Contains(t, body, "New Owner Created")

	_, body = c.get(ownerURL)
	assert.NotContains(t, body, "New Owner Created")

	// 3) Alta de mascota
	res, _ = c.post(ownerURL+"/pets/new", url.Values{
		"name":      {"Toby"},
		"birthDate": {"2020-05-01"},
		"type":      {"dog"},
	})
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, ownerURL, res.Header.Get("Location"))

	_, body = c.get(ownerURL)
	assert.Contains(t, body, "Toby")
	assert.Contains(t, body, "New Pet has been Added")

	m := regexp.MustCompile(regexp.QuoteMeta(ownerURL) + `/pets/(\d+)/visits/new`).FindStringSubmatch(body)
	require.Len(t, m, 2)
	petURL := ownerURL + "/pets/" + m[1]

	// 4) Nombre repetido (otra capitalización) vuelve al formulario
	res, _ = c.post(ownerURL+"/pets/new", url.Values{
		"name":      {"TOBY"},
		"birthDate": {"2020-05-01"},
		"type":      {"dog"},
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// 5) Visita
	res, _ = c.post(petURL+"/visits/new", url.Values{
		"date":        {"2024-03-02"},
		"description": {"annual checkup"},
	})
	require.Equal(t, http.StatusFound, res.StatusCode)

	_, body = c.get(ownerURL)
	assert.Contains(t, body, "annual checkup")
	assert.Contains(t, body, "2024-03-02")
	assert.Contains(t, body, "Your visit has been booked")

	// 6) Edición de owner
	res, _ = c.post(ownerURL+"/edit", url.Values{
		"firstName": {"Ana"},
		"lastName":  {"Lopez Diaz"},
		"address":   {"Calle 2"},
		"city":      {"Lima"},
		"telephone": {"0123456789"},
	})
	require.Equal(t, http.StatusFound, res.StatusCode)

	_, body = c.get(ownerURL)
	assert.Contains(t, body, "Lopez Diaz")
	assert.Contains(t, body, "Owner Values Updated")
	assert.Contains(t, body, "Toby")
}

func TestHTTP_FindOwners(t *testing.T) {
	c := newClient(t)

	res, _ := c.get("/owners?lastName=Franklin")
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/owners/1", res.Header.Get("Location"))

	res, body := c.get("/owners?lastName=Davis")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Betty")
	assert.Contains(t, body, "Harold")

	res, body = c.get("/owners?lastName=")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Black")

	res, body = c.get("/owners?page=1844674407370955163")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Black")

	res, body = c.get("/owners?lastName=Nobody")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "not found")
}

func TestHTTP_OwnerNotFound(t *testing.T) {
	c := newClient(t)

	res, body := c.get("/owners/999")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Owner not found with id: 999.")

	res, _ = c.get("/owners/abc")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestHTTP_VetsJSON(t *testing.T) {
	c := newClient(t)

	res, body := c.get("/vets")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, strings.HasPrefix(res.Header.Get("Content-Type"), "application/json"))

	var payload struct {
		VetList []struct {
			ID              int    `json:"id"`
			FirstName       string `json:"firstName"`
			NrOfSpecialties int    `json:"nrOfSpecialties"`
			Specialties     []struct {
				Name string `json:"name"`
			} `json:"specialties"`
		} `json:"vetList"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	require.Len(t, payload.VetList, 6)
	assert.Equal(t, "James", payload.VetList[0].FirstName)
	assert.Equal(t, 0, payload.VetList[0].NrOfSpecialties)
	assert.NotNil(t, payload.VetList[0].Specialties)
	assert.Equal(t, "radiology", payload.VetList[1].Specialties[0].Name)

	res, body = c.get("/vets.html?page=2")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Jenkins")

	res, body = c.get("/vets.html?page=1844674407370955163")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Carter")
}

func TestHTTP_SystemRoutes(t *testing.T) {
	c := newClient(t)

	res, body := c.get("/health")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "ok", body)

	res, body = c.get("/")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Welcome")

	res, body = c.get("/oups")
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Contains(t, body, "Something happened...")

	res, _ = c.get("/swagger/doc.json")
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = c.get("/does-not-exist")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
