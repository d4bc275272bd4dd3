// Package view renders the HTML pages from embedded templates.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"otobiznes/internal/domain/entity"
	"otobiznes/internal/domain/listing"
	"otobiznes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Page names.
const (
	PageHome     = "home"
	PageAd       = "ad"
	PageBusiness = "business"
	PageLogin    = "login"
	PageRegister = "register"
	PageProfile  = "profile"
	PageAdmin    = "admin"
	PageError    = "error"
	PageLoading  = "loading"
)

var pages = []string{
	PageHome, PageAd, PageBusiness, PageLogin, PageRegister,
	PageProfile, PageAdmin, PageError, PageLoading,
}

// Flash is a one-shot message shown after a redirect.
type Flash struct {
	Kind    string
	Message string
}

// Page is the data every template receives.
type Page struct {
	Title     string
	User      *entity.User
	Flash     *Flash
	Error     string
	CSRFToken string
	Form      any
	Data      any
}

// Renderer implements echo.Renderer with one template set per page.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses the layout together with every page.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}

	for _, name := range pages {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, layoutFile, "templates/"+name+".html")
		if err != nil {
			return nil, errors.Wrapf(err, "parse template %s", name)
		}
		r.templates[name] = tmpl
	}

	return r, nil
}

// Render executes the layout of the named page.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return errors.Errorf("unknown template %s", name)
	}

	return errors.WithStack(tmpl.ExecuteTemplate(w, "layout", data))
}

var funcs = template.FuncMap{
	"roleLabel":   func(r entity.Role) string { return r.Label() },
	"roles":       func() entity.Roles { return entity.AllRoles },
	"declension":  listing.ReviewDeclension,
	"stars":       stars,
	"price":       formatPrice,
	"rating":      func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) },
	"categoryFor": categoryFor,
	"isSelected":  func(a, b int64) bool { return a == b },
	"seq":         seq,
	// html/template rejects tel: links unless they are marked safe
	"telURL": func(uri string) template.URL { return template.URL(uri) },
}

func stars(summary listing.RatingSummary) string {
	full := min(max(summary.Stars(), 0), entity.MaxRating)

	return strings.Repeat("★", full) + strings.Repeat("☆", entity.MaxRating-full)
}

func formatPrice(price string) string {
	if strings.TrimSpace(price) == "" {
		return "Cena do uzgodnienia"
	}

	return fmt.Sprintf("%s zł", price)
}

// categoryFor lists the category names of an ad.
func categoryFor(categories entity.Categories, ad *entity.Ad) string {
	names := make([]string, 0, len(ad.CategoryIDs))
	for _, id := range ad.CategoryIDs {
		if name := categories.NameOf(id); name != "" {
			names = append(names, name)
		}
	}

	return strings.Join(names, ", ")
}

func seq(from, to int) []int {
	if to < from {
		return nil
	}

	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}

	return out
}

// ProfileData is the data of the profile page.
type ProfileData struct {
	Page *usecase.ProfilePage
	Tab  string
}

// ErrorData is the data of the error page.
type ErrorData struct {
	Status  int
	Message string
}
