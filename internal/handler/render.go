package handlers

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"net/url"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// renderPage отрисовывает шаблон страницы с общими header/footer
func renderPage(w http.ResponseWriter, statusCode int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Ошибка при отрисовке шаблона %s: %v", name, err)
	}
}

func renderNotFound(w http.ResponseWriter) {
	renderPage(w, http.StatusNotFound, "notfound.html", nil)
}

func renderServerError(w http.ResponseWriter, err error) {
	log.Printf("Внутренняя ошибка: %v", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// redirectWithFlash передаёт flash-сообщение следующей странице через query-параметр,
// без сессий и глобального состояния
func redirectWithFlash(w http.ResponseWriter, r *http.Request, path, flash string) {
	if flash != "" {
		path = path + "?flash=" + url.QueryEscape(flash)
	}
	http.Redirect(w, r, path, http.StatusFound)
}

func flashFrom(r *http.Request) string {
	return r.URL.Query().Get("flash")
}
