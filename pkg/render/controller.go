/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: controller.go
Description: Headless browser collaborator for BlockLens, built on chromedp.
Navigates a page, captures its markup, per-element geometry, and a full-page
screenshot for the vision describer. Pure I/O wrapper: all decision logic lives
in the core packages.
*/

package render

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/kleascm/blocklens/pkg/interfaces"
)

// geometryJS walks element.children depth-first from the root element and
// collects bounding boxes in the same pre-order the dom package uses for its
// arena, so boxes line up index-for-index with the parsed tree.
const geometryJS = `(() => {
	const boxes = [];
	const walk = (el) => {
		const r = el.getBoundingClientRect();
		boxes.push({
			x: r.x + window.scrollX,
			y: r.y + window.scrollY,
			width: r.width,
			height: r.height,
		});
		for (const child of el.children) walk(child);
	};
	walk(document.documentElement);
	const pageHeight = Math.max(
		document.documentElement.scrollHeight,
		document.body ? document.body.scrollHeight : 0,
	);
	return { boxes, pageHeight };
})()`

// PageCapture is everything the collaborator gathers from one rendered page.
type PageCapture struct {
	URL        string
	HTML       string
	Boxes      []interfaces.Rect
	PageHeight float64
	Screenshot []byte
	Duration   time.Duration
}

// geometryResult mirrors the JSON shape produced by geometryJS.
type geometryResult struct {
	Boxes      []interfaces.Rect `json:"boxes"`
	PageHeight float64           `json:"pageHeight"`
}

// Controller drives a headless Chrome instance through chromedp.
type Controller struct {
	ctx     context.Context
	cancel  context.CancelFunc
	alloc   context.CancelFunc
	logs    []string
	netlogs []string
	logMu   sync.Mutex
	netMu   sync.Mutex
}

// Start launches the headless browser and attaches event listeners
func (c *Controller) Start(ctx context.Context) error {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	c.ctx = browserCtx
	c.cancel = browserCancel
	c.alloc = allocCancel
	c.logs = []string{}
	c.netlogs = []string{}

	// Attach event listeners for console, JS errors, and network
	chromedp.ListenTarget(c.ctx, func(ev interface{}) {
		switch e := ev.(type) {
		case *network.EventRequestWillBeSent:
			c.netMu.Lock()
			c.netlogs = append(c.netlogs, fmt.Sprintf("[REQ] %s %s", e.Request.Method, e.Request.URL))
			c.netMu.Unlock()
		case *network.EventResponseReceived:
			c.netMu.Lock()
			c.netlogs = append(c.netlogs, fmt.Sprintf("[RES] %d %s", e.Response.Status, e.Response.URL))
			c.netMu.Unlock()
		case *network.EventLoadingFailed:
			c.netMu.Lock()
			c.netlogs = append(c.netlogs, fmt.Sprintf("[ERR] %s %s", e.ErrorText, e.RequestID.String()))
			c.netMu.Unlock()
		case *runtime.EventExceptionThrown:
			c.logMu.Lock()
			c.logs = append(c.logs, fmt.Sprintf("[exception] %s", e.ExceptionDetails.Error()))
			c.logMu.Unlock()
		}
	})

	// Enable network and runtime events
	if err := chromedp.Run(c.ctx, network.Enable(), runtime.Enable()); err != nil {
		return err
	}

	return nil
}

// Stop closes the browser
func (c *Controller) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	if c.alloc != nil {
		c.alloc()
	}
	return nil
}

// CapturePage navigates to a URL and captures markup, geometry, and a
// screenshot in one round trip. Timeouts are the caller's responsibility via
// ctx; the core never applies its own.
func (c *Controller) CapturePage(ctx context.Context, url string) (*PageCapture, error) {
	start := time.Now()

	runCtx, cancel := mergeContext(c.ctx, ctx)
	defer cancel()

	var (
		markup   string
		geometry geometryResult
		shot     []byte
	)
	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.OuterHTML("html", &markup),
		chromedp.Evaluate(geometryJS, &geometry),
		chromedp.FullScreenshot(&shot, 90),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to capture %s: %w", url, err)
	}

	return &PageCapture{
		URL:        url,
		HTML:       markup,
		Boxes:      geometry.Boxes,
		PageHeight: geometry.PageHeight,
		Screenshot: shot,
		Duration:   time.Since(start),
	}, nil
}

// ConsoleLogs returns collected JS exception logs
func (c *Controller) ConsoleLogs() []string {
	c.logMu.Lock()
	defer c.logMu.Unlock()
	logs := make([]string, len(c.logs))
	copy(logs, c.logs)
	return logs
}

// NetworkLogs returns collected network logs
func (c *Controller) NetworkLogs() []string {
	c.netMu.Lock()
	defer c.netMu.Unlock()
	netlogs := make([]string, len(c.netlogs))
	copy(netlogs, c.netlogs)
	return netlogs
}

// mergeContext bounds the browser context with the caller's deadline.
func mergeContext(browser, caller context.Context) (context.Context, context.CancelFunc) {
	if deadline, ok := caller.Deadline(); ok {
		return context.WithDeadline(browser, deadline)
	}
	return context.WithCancel(browser)
}
