package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shawalli/contact-card/gate"
	"github.com/shawalli/contact-card/models"
	"github.com/shawalli/contact-card/store"
)

// fakeStore implements store.ContactStore in memory.
type fakeStore struct {
	contacts    map[string]models.Contact
	schema      bool
	schemaErr   error
	schemaCalls int
	updateCalls int
}

func newFakeStore(contacts ...models.Contact) *fakeStore {
	f := &fakeStore{contacts: make(map[string]models.Contact), schema: true}
	for _, c := range contacts {
		f.contacts[c.SFID] = c
	}
	return f
}

func (f *fakeStore) List(ctx context.Context) ([]models.Contact, error) {
	var out []models.Contact
	for _, c := range f.contacts {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeStore) BySFID(ctx context.Context, sfid string) (*models.Contact, error) {
	c, ok := f.contacts[sfid]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &c, nil
}

func (f *fakeStore) Update(ctx context.Context, c *models.Contact) error {
	f.updateCalls++
	f.contacts[c.SFID] = *c
	return nil
}

func (f *fakeStore) SchemaExists(ctx context.Context) (bool, error) {
	f.schemaCalls++
	return f.schema, f.schemaErr
}

func setupRouter(st store.ContactStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../templates/*.html")
	r.Use(sessions.Sessions("test", cookie.NewStore([]byte("test-secret"))))

	h := &Handler{Store: st, Gate: gate.New(st), Log: zap.NewNop()}
	r.GET("/welcome", h.Welcome)
	guarded := r.Group("/", h.RequireConnect())
	guarded.GET("/", h.Index)
	guarded.GET("/contact/:sfid", h.ShowContact)
	guarded.POST("/contact/:sfid", h.UpdateContact)
	guarded.GET("/contacts.xlsx", h.ExportContacts)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func ednaFrank() models.Contact {
	return models.Contact{
		ID:        1,
		SFID:      "003D000000QV9n2IAD",
		FirstName: "Edna",
		LastName:  "Frank",
		Title:     "VP, Technology",
		Email:     "efrank@genepoint.com",
		Phone:     "(512) 757-6000",
	}
}

func ednaFrankValues() url.Values {
	return url.Values{
		"firstname": {"Edna"},
		"lastname":  {"Frank"},
		"title":     {"VP, Technology"},
		"email":     {"efrank@genepoint.com"},
		"phone":     {"(512) 757-6000"},
	}
}

func TestShowContactPrepopulatesForm(t *testing.T) {
	st := newFakeStore(ednaFrank())
	r := setupRouter(st)

	w := get(r, "/contact/003D000000QV9n2IAD")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `value="Edna"`)
	assert.Contains(t, body, `value="Frank"`)
	assert.Contains(t, body, `value="VP, Technology"`)
	assert.Contains(t, body, `value="efrank@genepoint.com"`)
	assert.Contains(t, body, `value="(512) 757-6000"`)
}

func TestShowContactNotFoundRedirectsWithNotice(t *testing.T) {
	st := newFakeStore(ednaFrank())
	r := setupRouter(st)

	w := get(r, "/contact/003D000000XXXXXXXXX")

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Zero(t, st.updateCalls)

	// The notice is flashed into the session and shown on the listing.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range w.Result().Cookies() {
		req.AddCookie(ck)
	}
	followed := httptest.NewRecorder()
	r.ServeHTTP(followed, req)

	require.Equal(t, http.StatusOK, followed.Code)
	assert.Contains(t, followed.Body.String(), "No contact with matching Salesforce ID exists.")
}

func TestUpdateContactPersistsValidSubmission(t *testing.T) {
	st := newFakeStore(ednaFrank())
	r := setupRouter(st)

	values := ednaFrankValues()
	values.Set("firstname", "Ed")
	values.Set("email", "ed@genepoint.com")

	w := postForm(r, "/contact/003D000000QV9n2IAD", values)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Contact successfully updated.")

	stored := st.contacts["003D000000QV9n2IAD"]
	assert.Equal(t, "Ed", stored.FirstName)
	assert.Equal(t, "ed@genepoint.com", stored.Email)
	assert.Equal(t, 1, stored.ID)
	assert.Equal(t, 1, st.updateCalls)
}

func TestUpdateContactRejectsBadEmail(t *testing.T) {
	st := newFakeStore(ednaFrank())
	r := setupRouter(st)

	values := ednaFrankValues()
	values.Set("email", "not-an-email")

	w := postForm(r, "/contact/003D000000QV9n2IAD", values)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Email address is invalid.")
	assert.Equal(t, 1, strings.Count(body, "alert-danger"))

	// No partial commit: the stored record is untouched.
	assert.Equal(t, ednaFrank(), st.contacts["003D000000QV9n2IAD"])
	assert.Zero(t, st.updateCalls)
}

func TestUpdateContactSurfacesEveryViolation(t *testing.T) {
	st := newFakeStore(ednaFrank())
	r := setupRouter(st)

	values := ednaFrankValues()
	values.Set("firstname", "")
	values.Set("lastname", "")

	w := postForm(r, "/contact/003D000000QV9n2IAD", values)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "First name is required.")
	assert.Contains(t, body, "Last name is required.")

	assert.Equal(t, ednaFrank(), st.contacts["003D000000QV9n2IAD"])
	assert.Zero(t, st.updateCalls)
}

func TestUpdateContactInvalidSubmissionKeepsSubmittedValues(t *testing.T) {
	st := newFakeStore(ednaFrank())
	r := setupRouter(st)

	values := ednaFrankValues()
	values.Set("firstname", "")
	values.Set("title", "CTO")

	w := postForm(r, "/contact/003D000000QV9n2IAD", values)

	// The form re-renders with what was submitted, not the stored values.
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="CTO"`)
}

func TestUpdateContactIsIdempotent(t *testing.T) {
	st := newFakeStore(ednaFrank())
	r := setupRouter(st)

	values := ednaFrankValues()
	values.Set("phone", "(512) 757-9999")

	first := postForm(r, "/contact/003D000000QV9n2IAD", values)
	require.Equal(t, http.StatusOK, first.Code)
	afterFirst := st.contacts["003D000000QV9n2IAD"]

	second := postForm(r, "/contact/003D000000QV9n2IAD", values)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Contains(t, second.Body.String(), "Contact successfully updated.")

	assert.Equal(t, afterFirst, st.contacts["003D000000QV9n2IAD"])
	assert.Equal(t, 2, st.updateCalls)
}

func TestUpdateContactNotFoundRedirects(t *testing.T) {
	st := newFakeStore(ednaFrank())
	r := setupRouter(st)

	w := postForm(r, "/contact/003D000000XXXXXXXXX", ednaFrankValues())

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Zero(t, st.updateCalls)
}

func TestIndexListsContacts(t *testing.T) {
	st := newFakeStore(ednaFrank())
	r := setupRouter(st)

	w := get(r, "/")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Edna")
	assert.Contains(t, body, "/contact/003D000000QV9n2IAD")
}
