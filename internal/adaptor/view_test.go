package adaptor

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"renovation-tracker/internal/access"
	"renovation-tracker/internal/data/entity"
	"renovation-tracker/internal/dto/response"
	"renovation-tracker/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestView(t *testing.T) *View {
	t.Helper()
	view, err := NewView(access.ContextSource{}, zap.NewNop())
	require.NoError(t, err)
	return view
}

func TestView_RenderShowsAndClearsFlash(t *testing.T) {
	view := newTestView(t)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	utils.SetFlash(rec, req, utils.FlashInfo, "You have been logged out.")

	view.Render(rec, req, http.StatusOK, "login", PageData{Title: "Login"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "You have been logged out.")
	assert.Contains(t, rec.Body.String(), "alert-info")

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, -1, cookies[len(cookies)-1].MaxAge)
}

func TestView_StatusOptionsForAdmin(t *testing.T) {
	view := newTestView(t)
	admin := &access.Identity{UserID: uuid.New(), Username: "admin", Role: entity.RoleAdmin}

	req := httptest.NewRequest(http.MethodGet, "/customer_list", nil)
	req = req.WithContext(access.WithIdentity(req.Context(), admin))
	rec := httptest.NewRecorder()

	view.Render(rec, req, http.StatusOK, "customer_list", PageData{
		Title: "Customers",
		Data: []response.CustomerResponse{{
			ID:          uuid.NewString(),
			Name:        "Ayse",
			Status:      entity.StatusInProgress,
			StatusLabel: entity.StatusInProgress.Label(),
		}},
	})

	body := rec.Body.String()
	assert.Contains(t, body, `<option value="InProgress" selected>In Progress</option>`)
	assert.Contains(t, body, `<option value="Pending">Pending</option>`)
	assert.Contains(t, body, "Logout (admin)")
}

func TestView_UnknownPage(t *testing.T) {
	view := newTestView(t)
	rec := httptest.NewRecorder()

	view.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, "missing", PageData{})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
