package poster

import (
	"context"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// fontSettleDelay gives Chromium time to apply the embedded fonts
// before the screenshot is taken.
const fontSettleDelay = 800 * time.Millisecond

// renderTimeout bounds one whole render, launch included.
const renderTimeout = 30 * time.Second

// RenderError reports that the rendering engine could not be started
// or the capture step failed.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string { return "poster render failed: " + e.Err.Error() }
func (e *RenderError) Unwrap() error { return e.Err }

// RenderPNG rasterizes a self-contained HTML document to a PNG at the
// exact viewport size. The browser process and page context live for
// one render only and are torn down unconditionally.
func RenderPNG(ctx context.Context, html string, width, height int) ([]byte, error) {
	chromePath := os.Getenv("CHROME_PATH")
	if chromePath == "" {
		chromePath = "/usr/bin/chromium-browser" // Docker/Linux default
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(chromePath),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-crashpad", true),
		chromedp.Flag("disable-breakpad", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("no-default-browser-check", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("headless", true),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()
	tabCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()
	tabCtx, cancel = context.WithTimeout(tabCtx, renderTimeout)
	defer cancel()

	var png []byte
	err := chromedp.Run(tabCtx,
		chromedp.EmulateViewport(int64(width), int64(height)),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(fontSettleDelay),
		// viewport capture, not full page: the document's intrinsic
		// size already equals the viewport
		chromedp.CaptureScreenshot(&png),
	)
	if err != nil {
		return nil, &RenderError{Err: err}
	}
	return png, nil
}
