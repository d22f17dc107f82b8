package app

import (
	"context"
	"fmt"

	"github.com/jakechampion/site/internal/config"
	"github.com/jakechampion/site/internal/model"
	"github.com/jakechampion/site/internal/service"
	"github.com/jakechampion/site/internal/site"
	"github.com/jakechampion/site/internal/storage"
)

type App struct {
	Cfg            *config.Config
	PostService    *service.PostService
	PageService    *service.PageService
	SitemapService *service.SitemapService
	Renderer       *site.Renderer
	Content        *site.Content
	Builder        *site.Builder
}

func New(cfg *config.Config) *App {
	postService := service.NewPostService(cfg.ContentPath, service.PostOptions{
		ExcerptLength: cfg.ExcerptLength,
		ReadingWPM:    cfg.ReadingWPM,
		IncludeDrafts: cfg.IncludeDrafts,
	})
	pageService := service.NewPageService(cfg.ContentPath)
	sitemapService := service.NewSitemapService(cfg.SiteURL)
	renderer := site.NewRenderer(Site(cfg), Hero(cfg))

	return &App{
		Cfg:            cfg,
		PostService:    postService,
		PageService:    pageService,
		SitemapService: sitemapService,
		Renderer:       renderer,
		Content:        site.NewContent(postService, pageService),
		Builder:        site.NewBuilder(postService, pageService, sitemapService, renderer, cfg.OutputPath, cfg.StaticPath),
	}
}

// Publisher connects to object storage. It is created on demand so build and serve
// work without any S3 settings.
func (a *App) Publisher(ctx context.Context) (*service.PublishService, error) {
	if !a.Cfg.PublishConfigured() {
		return nil, fmt.Errorf("publishing needs S3_BUCKET and S3_REGION")
	}
	store, err := storage.New(ctx, a.Cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return service.NewPublishService(store, a.Cfg.S3Prefix), nil
}

func Site(cfg *config.Config) model.Site {
	return model.Site{
		Title:       cfg.SiteTitle,
		Description: cfg.SiteDescription,
		URL:         cfg.SiteURL,
		Author:      cfg.AuthorName,
	}
}

func Hero(cfg *config.Config) model.Hero {
	return model.Hero{
		Heading:   "Hi.",
		IntroHTML: cfg.HeroIntro,
		Links: []model.Link{
			{Label: "Contact", Href: cfg.ContactPath, Icon: "send"},
			{Label: "GitHub", Href: cfg.GitHubURL, Icon: "github", External: true},
			{Label: "Twitter", Href: cfg.TwitterURL, Icon: "twitter", External: true},
		},
	}
}
