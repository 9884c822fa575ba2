// Package collector ingests job offers from an external board into the
// offres table. It feeds the tension side of the market score; a run is a
// one-shot crawl, not a resident service.
package collector

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"employabilite/internal/config"
	"employabilite/internal/domain/scoring"
	"employabilite/internal/repository"

	"github.com/gocolly/colly/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Collector struct {
	offres cfgOffreStore
	runs   cfgRunStore
	cfg    config.CollectorConfig
	logger *zap.Logger
}

type cfgOffreStore interface {
	Upsert(ctx context.Context, o repository.Offre) error
}

type cfgRunStore interface {
	Start(ctx context.Context, source string) (uuid.UUID, error)
	Finish(ctx context.Context, id uuid.UUID, statut string, offresCollectees int) error
}

func New(offres cfgOffreStore, runs cfgRunStore, cfg config.CollectorConfig, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{offres: offres, runs: runs, cfg: cfg, logger: logger}
}

type listedOffer struct {
	Title string
	CSP   string
	Link  string
}

// Run crawls the configured board and upserts every recognisable offer.
// Returns the number of offers stored.
func (c *Collector) Run(ctx context.Context) (int, error) {
	if strings.TrimSpace(c.cfg.BoardURL) == "" {
		return 0, fmt.Errorf("collector: empty board URL")
	}

	source := hostOf(c.cfg.BoardURL)
	runID, err := c.runs.Start(ctx, source)
	if err != nil {
		return 0, err
	}

	stored := 0
	runErr := func() error {
		pages := c.cfg.MaxPages
		if pages <= 0 {
			pages = 1
		}

		for page := 1; page <= pages; page++ {
			if err := ctx.Err(); err != nil {
				return err
			}

			pageURL := pagedURL(c.cfg.BoardURL, page)
			var offers []listedOffer
			var err error
			if c.cfg.Headless {
				offers, err = c.collectHeadless(ctx, pageURL)
			} else {
				offers, err = c.collectStatic(ctx, pageURL)
			}
			if err != nil {
				c.logger.Warn("listing page failed", zap.String("url", pageURL), zap.Error(err))
				continue
			}
			if len(offers) == 0 {
				break
			}

			for _, o := range offers {
				csp := normalizeCSP(o.CSP)
				if csp == "" || strings.TrimSpace(o.Title) == "" {
					continue
				}
				now := time.Now().UTC()
				err := c.offres.Upsert(ctx, repository.Offre{
					IDOffre:         offerID(o.Link, o.Title),
					Titre:           strings.TrimSpace(o.Title),
					CSP:             csp,
					Statut:          "Ouverte",
					DatePublication: &now,
					Source:          source,
					URL:             o.Link,
				})
				if err != nil {
					c.logger.Warn("offer upsert failed", zap.String("url", o.Link), zap.Error(err))
					continue
				}
				stored++
			}
		}
		return nil
	}()

	statut := "terminee"
	if runErr != nil {
		statut = "echouee"
	}
	if err := c.runs.Finish(context.Background(), runID, statut, stored); err != nil {
		c.logger.Warn("run record update failed", zap.Error(err))
	}

	return stored, runErr
}

func (c *Collector) collectStatic(ctx context.Context, pageURL string) ([]listedOffer, error) {
	host := hostOf(pageURL)

	col := colly.NewCollector(colly.AllowedDomains(host))
	_ = col.Limit(&colly.LimitRule{
		DomainGlob:  "*" + host + "*",
		Parallelism: 2,
		Delay:       400 * time.Millisecond,
		RandomDelay: 750 * time.Millisecond,
	})

	offers := make([]listedOffer, 0)
	col.OnHTML(c.cfg.OfferSelector, func(e *colly.HTMLElement) {
		link := strings.TrimSpace(e.ChildAttr("a", "href"))
		offers = append(offers, listedOffer{
			Title: e.ChildText(c.cfg.TitleSelector),
			CSP:   e.ChildText(c.cfg.CSPSelector),
			Link:  e.Request.AbsoluteURL(link),
		})
	})

	var reqErr error
	col.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := col.Visit(pageURL); err != nil {
		return nil, err
	}
	col.Wait()
	if reqErr != nil {
		return nil, reqErr
	}
	return offers, nil
}

func hostOf(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Host
}

func pagedURL(base string, page int) string {
	if page <= 1 {
		return base
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%spage=%d", base, sep, page)
}

// offerID derives a stable identifier so re-crawls update rather than
// duplicate. Name-based UUID over the offer URL (falling back to the title).
func offerID(link, title string) string {
	seed := strings.TrimSpace(link)
	if seed == "" {
		seed = strings.TrimSpace(title)
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(seed)).String()
}

// normalizeCSP maps free-form board categories onto the fixed CSP set.
func normalizeCSP(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	for _, csp := range scoring.Categories() {
		if strings.EqualFold(s, csp) {
			return csp
		}
	}

	switch {
	case strings.Contains(s, "management") || strings.Contains(s, "cadre") || strings.Contains(s, "direction"):
		return scoring.CSPManagement
	case strings.Contains(s, "encadrement") || strings.Contains(s, "support"):
		return scoring.CSPEncadrementSupport
	case strings.Contains(s, "professionnel") || strings.Contains(s, "technicien") || strings.Contains(s, "ingénieur"):
		return scoring.CSPPersonnelProfessionnel
	case strings.Contains(s, "aide") || strings.Contains(s, "manoeuvre") || strings.Contains(s, "manœuvre"):
		return scoring.CSPPersonnelAide
	default:
		return ""
	}
}
