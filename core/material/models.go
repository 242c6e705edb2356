package material

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/unirepo/core"
)

// Types
const (
	TypeBook            = "book"
	TypeJournal         = "journal"
	TypeArticle         = "article"
	TypeThesis          = "thesis"
	TypeConferencePaper = "conference-paper"
)

var AllTypes = []string{TypeBook, TypeJournal, TypeArticle, TypeThesis, TypeConferencePaper}

func IsValidType(typ string) bool {
	for _, t := range AllTypes {
		if t == typ {
			return true
		}
	}
	return false
}

// Material is an entry of the academic catalog.
type Material struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Author      string      `json:"author"`
	Type        string      `json:"type"`
	Year        string      `json:"year"`
	Description string      `json:"description"`
	Keywords    []string    `json:"keywords"`
	FileURL     null.String `json:"fileUrl"`
	UploadedBy  string      `json:"uploadedBy"`
	Downloads   int         `json:"downloads"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Matches reports whether query is a case-insensitive substring of the title, author,
// description or one of the keywords. An empty query matches everything.
func (m Material) Matches(query string) bool {
	if query == "" {
		return true
	}
	if core.ContainsFold(m.Title, query) || core.ContainsFold(m.Author, query) || core.ContainsFold(m.Description, query) {
		return true
	}
	for _, kw := range m.Keywords {
		if core.ContainsFold(kw, query) {
			return true
		}
	}
	return false
}

type NewMaterial struct {
	Title       string   `json:"title" validate:"required,notblank"`
	Author      string   `json:"author" validate:"required,notblank"`
	Type        string   `json:"type" validate:"required,materialtype"`
	Year        string   `json:"year" validate:"required,numeric,len=4"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords" validate:"dive,notblank"`
	FileURL     string   `json:"fileUrl" validate:"omitempty,url"`
}

func (nm *NewMaterial) Validate(validate *validator.Validate) error {
	nm.Title = core.CleanString(nm.Title)
	nm.Author = core.CleanString(nm.Author)
	nm.Type = core.CleanString(nm.Type, true /* lower */)
	nm.Year = core.CleanString(nm.Year)
	nm.Description = core.CleanString(nm.Description)
	nm.FileURL = core.CleanString(nm.FileURL)
	nm.Keywords = cleanKeywords(nm.Keywords)
	return validate.Struct(nm)
}

// UpdateMaterial defines what information may be provided to modify an existing Material.
type UpdateMaterial struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Type        string   `json:"type" validate:"omitempty,materialtype"`
	Year        string   `json:"year" validate:"omitempty,numeric,len=4"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords" validate:"dive,notblank"`
	FileURL     string   `json:"fileUrl" validate:"omitempty,url"`
}

// Validate cleans up and fills the blanks from the original Material.
func (um *UpdateMaterial) Validate(validate *validator.Validate, orig Material) error {
	fill := func(val, origVal string, lower ...bool) string {
		if v := core.CleanString(val, lower...); v != "" {
			return v
		}
		return origVal
	}
	um.Title = fill(um.Title, orig.Title)
	um.Author = fill(um.Author, orig.Author)
	um.Type = fill(um.Type, orig.Type, true /* lower */)
	um.Year = fill(um.Year, orig.Year)
	um.Description = fill(um.Description, orig.Description)
	um.FileURL = fill(um.FileURL, orig.FileURL.String)
	if um.Keywords == nil {
		um.Keywords = orig.Keywords
	} else {
		um.Keywords = cleanKeywords(um.Keywords)
	}
	return validate.Struct(um)
}

// QueryFilter applies AND on its non-empty fields.
// Type matches case-insensitively, Year exactly.
type QueryFilter struct {
	Search     string `query:"search"`
	Type       string `query:"type"`
	Year       string `query:"year"`
	UploadedBy string `query:"uploadedBy"`
}

// Clean keeps Search as typed, so surrounding spaces take part in the match.
// A blank Search matches everything.
func (qf *QueryFilter) Clean() {
	if core.CleanString(qf.Search) == "" {
		qf.Search = ""
	}
	qf.Type = core.CleanString(qf.Type)
	qf.Year = core.CleanString(qf.Year)
}

func (qf QueryFilter) Match(m Material) bool {
	return m.Matches(qf.Search) &&
		(qf.Type == "" || strings.EqualFold(m.Type, qf.Type)) &&
		(qf.Year == "" || m.Year == qf.Year) &&
		(qf.UploadedBy == "" || m.UploadedBy == qf.UploadedBy)
}

func cleanKeywords(kws []string) []string {
	cleaned := make([]string, 0, len(kws))
	for _, kw := range kws {
		if kw = core.CleanString(kw); kw != "" {
			cleaned = append(cleaned, kw)
		}
	}
	return cleaned
}
