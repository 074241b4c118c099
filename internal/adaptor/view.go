package adaptor

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"renovation-tracker/internal/access"
	"renovation-tracker/internal/data/entity"
	"renovation-tracker/pkg/utils"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"index", "login", "customer_list", "add_customer", "edit_customer", "error"}

// PageData is what every template receives.
type PageData struct {
	Title    string
	Identity *access.Identity
	Flashes  []utils.Flash
	Statuses []entity.CustomerStatus
	Errors   map[string]string
	Data     any
}

// CanManage is used by templates to show admin-only controls.
func (p PageData) CanManage() bool {
	return access.IsAdmin(p.Identity)
}

func (p PageData) LoggedIn() bool {
	return access.IsAuthenticated(p.Identity)
}

// View renders the embedded page templates.
type View struct {
	pages    map[string]*template.Template
	identity access.IdentitySource
	log      *zap.Logger
}

func NewView(identity access.IdentitySource, log *zap.Logger) (*View, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS,
			"templates/base.html", "templates/customer_fields.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &View{
		pages:    pages,
		identity: identity,
		log:      log.With(zap.String("component", "view")),
	}, nil
}

// Render executes page into a buffer first so a template error still
// produces a clean 500.
func (v *View) Render(w http.ResponseWriter, r *http.Request, status int, page string, data PageData) {
	tmpl, ok := v.pages[page]
	if !ok {
		v.log.Error("Unknown page", zap.String("page", page))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data.Identity, _ = v.identity.CurrentIdentity(r.Context())
	data.Flashes = utils.PopFlashes(w, r)
	data.Statuses = entity.Statuses

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		v.log.Error("Failed to render page", zap.Error(err), zap.String("page", page))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (v *View) NotFound(w http.ResponseWriter, r *http.Request) {
	v.Render(w, r, http.StatusNotFound, "error", PageData{
		Title: "Not Found",
		Data:  "The requested page or customer does not exist.",
	})
}

func (v *View) InternalError(w http.ResponseWriter, r *http.Request) {
	v.Render(w, r, http.StatusInternalServerError, "error", PageData{
		Title: "Error",
		Data:  "Something went wrong. Please try again.",
	})
}
