package export

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// blockedURLPatterns covers every scheme a printed page could use to reach the network or disk.
// Styles and images must be inline or data: URLs.
var blockedURLPatterns = []string{"http://*", "https://*", "ws://*", "wss://*", "ftp://*", "file://*"}

// Printer turns a standalone HTML page into PDF bytes using the given profile.
type Printer interface {
	PrintPDF(ctx context.Context, html []byte, profile Profile) ([]byte, error)
}

// ChromePrinter prints through a headless Chrome started per call.
// Requires Chrome/Chromium to be installed on the system.
type ChromePrinter struct {
	// ExecPath overrides the browser binary; empty uses chromedp's lookup.
	ExecPath string
}

// NewChromePrinter returns a printer using the browser at execPath, or the default lookup.
func NewChromePrinter(execPath string) *ChromePrinter {
	return &ChromePrinter{ExecPath: execPath}
}

// PrintPDF loads html into a blank tab with scripts and network access disabled and prints it on A4.
func (c *ChromePrinter) PrintPDF(ctx context.Context, html []byte, profile Profile) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if c.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	margin := profile.marginInches()
	var out []byte
	err := chromedp.Run(browserCtx,
		network.Enable(),
		network.SetBlockedURLs(blockedURLPatterns),
		emulation.SetScriptExecutionDisabled(true),
		emulation.SetDeviceMetricsOverride(a4WidthPx, a4HeightPx, profile.DeviceScale, false),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(a4WidthMM / mmPerInch).
				WithPaperHeight(a4HeightMM / mmPerInch).
				WithMarginTop(margin).
				WithMarginBottom(margin).
				WithMarginLeft(margin).
				WithMarginRight(margin).
				WithPrintBackground(profile.PrintBackground).
				WithPreferCSSPageSize(profile.PreferCSSPageSize).
				Do(ctx)
			if err != nil {
				return err
			}
			out = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chrome print profile=%s: %w", profile.Name, err)
	}
	return out, nil
}
