package routes

import (
	"net/http"

	"github.com/jakechampion/site/internal/app"
	"github.com/jakechampion/site/internal/handler"
	"github.com/jakechampion/site/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler(app.Content, app.Renderer)
	content := handler.NewContentHandler(app.Content, app.Renderer)
	seo := handler.NewSEOHandler(app.Content, app.SitemapService)

	mux := http.NewServeMux()

	// Static files, served from the same prefix the build copies them to
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(app.Cfg.StaticPath))))

	// SEO
	mux.HandleFunc("GET /robots.txt", seo.Robots)
	mux.HandleFunc("GET /sitemap.xml", seo.Sitemap)

	// Home
	mux.HandleFunc("GET /{$}", home.HomePage)

	// Posts and pages
	mux.HandleFunc("GET /{path...}", content.Show)

	// Everything else, including non-GET methods
	mux.HandleFunc("/", home.NotFoundPage)

	return middleware.Chain(mux,
		middleware.RequestLogging,
		middleware.NoCache,
	)
}
