package web

import (
	"embed"
	"html/template"
	"net/url"

	"gudlft-booking/internal/handler/dto/response"
	"gudlft-booking/internal/usecase/queries"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded HTML pages. Names are the file names
// (index.html, welcome.html, booking.html).
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"pathEscape": url.PathEscape,
		"competitionDate": func(v queries.CompetitionView) string {
			if v.Date == nil {
				return "TBA"
			}
			return response.FormatDate(*v.Date)
		},
	}).ParseFS(templateFS, "templates/*.html")
}

// Flash is a one-shot message shown at the top of a page.
type Flash struct {
	Message string
	Error   bool
}

type IndexPage struct {
	Flash *Flash
	Clubs []queries.ClubView
}

type WelcomePage struct {
	Flash        *Flash
	Club         queries.ClubView
	Competitions []queries.CompetitionView
}

type BookingPage struct {
	Flash       *Flash
	Club        queries.ClubView
	Competition queries.CompetitionView
	MaxPlaces   int
}
