package rooms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	brokenLinkMarker = "It's probably just a broken link, or perhaps a cancelled broadcaster."

	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

	maxInfoBodySize = 1 << 20
)

// ErrTransient marks probe failures worth retrying: transport errors, unexpected status codes
// and bodies that could not be classified.
var ErrTransient = errors.New("transient probe failure")

// unauthorizedDetails is evaluated in order, first match wins.
var unauthorizedDetails = []struct {
	substr string
	status Status
}{
	{substr: "room is deleted", status: StatusDeleted},
	{substr: "this room has been banned", status: StatusBanned},
	{substr: "this room is not available to your region or gender", status: StatusGeoblocked},
	{substr: "this room requires a password", status: StatusPassword},
}

var passthroughStatuses = map[Status]struct{}{
	StatusOffline: {},
	StatusAway:    {},
	StatusPrivate: {},
	StatusHidden:  {},
}

type Probe struct {
	client  *http.Client
	infoURL string

	log *slog.Logger
}

// NewProbe creates a probe for the room info endpoint. infoURL is a printf template taking the username.
func NewProbe(client *http.Client, infoURL string, log *slog.Logger) *Probe {
	return &Probe{
		client:  client,
		infoURL: infoURL,
		log:     log.With("component", "rooms").With("rooms", "probe"),
	}
}

// Probe performs a single request for the room and classifies the response.
// A non-nil error always wraps ErrTransient and comes with StatusError.
func (p *Probe) Probe(ctx context.Context, username string) (Status, error) {
	body, code, err := p.loadInfo(ctx, fmt.Sprintf(p.infoURL, username))
	if err != nil {
		return StatusError, fmt.Errorf("%w: %w", ErrTransient, err)
	}

	if bytes.Contains(body, []byte(brokenLinkMarker)) {
		return StatusCanceled, nil
	}

	switch code {
	case http.StatusUnauthorized:
		return classifyUnauthorized(body)
	case http.StatusOK:
		return classifyRoomStatus(body)
	default:
		return StatusError, fmt.Errorf("%w: unexpected status code %d", ErrTransient, code)
	}
}

func classifyUnauthorized(body []byte) (Status, error) {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return StatusError, malformedBody(body, err)
	}

	detail := strings.ToLower(payload.Detail)
	for _, d := range unauthorizedDetails {
		if strings.Contains(detail, d.substr) {
			return d.status, nil
		}
	}

	return StatusOffline, nil
}

func classifyRoomStatus(body []byte) (Status, error) {
	var payload struct {
		RoomStatus string `json:"room_status"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return StatusError, malformedBody(body, err)
	}
	if payload.RoomStatus == "" {
		return StatusError, fmt.Errorf("%w: room_status is missing", ErrTransient)
	}

	status := Status(payload.RoomStatus)
	if _, ok := passthroughStatuses[status]; ok {
		return status, nil
	}
	return StatusOnline, nil
}

// malformedBody names the page when the upstream answered with HTML (usually a challenge page).
func malformedBody(body []byte, err error) error {
	if title := htmlTitle(body); title != "" {
		return fmt.Errorf("%w: got html page %q instead of json", ErrTransient, title)
	}
	return fmt.Errorf("%w: decode json: %w", ErrTransient, err)
}

func htmlTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

func (p *Probe) loadInfo(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, 0, fmt.Errorf("create request for %s: %w", url, err)
	}
	setBrowserHeaders(req)
	req.Header.Set("Accept", "application/json, text/plain, */*")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("get room info from %s: %w", url, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.log.Warn("Failed to close response body", "error", closeErr)
		}
	}()

	var res bytes.Buffer
	if _, err = res.ReadFrom(io.LimitReader(resp.Body, maxInfoBodySize)); err != nil {
		return nil, 0, fmt.Errorf("read room info from %s: %w", url, err)
	}

	return res.Bytes(), resp.StatusCode, nil
}

// setBrowserHeaders makes requests look like a regular browser, the upstream blocks bare clients.
func setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")
}
