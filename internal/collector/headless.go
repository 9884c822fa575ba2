package collector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// collectHeadless renders the listing in a headless browser for boards that
// build their pages client-side, then extracts the same fields the static
// path reads.
func (c *Collector) collectHeadless(ctx context.Context, pageURL string) ([]listedOffer, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, 25*time.Second)
	defer reqCancel()

	script := fmt.Sprintf(`Array.from(document.querySelectorAll(%q)).map(el => {
		const a = el.querySelector('a');
		const title = el.querySelector(%q);
		const csp = el.querySelector(%q);
		return [
			title ? title.textContent.trim() : '',
			csp ? csp.textContent.trim() : '',
			a ? a.href : '',
		].join('\t');
	})`, c.cfg.OfferSelector, c.cfg.TitleSelector, c.cfg.CSPSelector)

	var rows []string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.EvaluateAsDevTools(script, &rows),
	)
	if err != nil {
		return nil, err
	}

	offers := make([]listedOffer, 0, len(rows))
	for _, row := range rows {
		parts := strings.SplitN(row, "\t", 3)
		if len(parts) != 3 {
			continue
		}
		offers = append(offers, listedOffer{Title: parts[0], CSP: parts[1], Link: parts[2]})
	}
	return offers, nil
}
