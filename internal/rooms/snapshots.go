package rooms

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/disintegration/imaging"
)

const (
	maxSnapshotSize = 10 << 20
	snapshotQuality = 85
)

// Snapshots captures the current stream frame of a room.
type Snapshots struct {
	client      *http.Client
	snapshotURL string

	log *slog.Logger
}

// NewSnapshots creates a snapshot fetcher. snapshotURL is a printf template taking the username.
func NewSnapshots(client *http.Client, snapshotURL string, log *slog.Logger) *Snapshots {
	return &Snapshots{
		client:      client,
		snapshotURL: snapshotURL,
		log:         log.With("component", "rooms").With("rooms", "snapshots"),
	}
}

// Capture downloads the snapshot and re-encodes it as JPEG, so anything that is not a valid image is rejected.
func (s *Snapshots) Capture(ctx context.Context, username string) ([]byte, error) {
	url := fmt.Sprintf(s.snapshotURL, username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request for %s: %w", url, err)
	}
	setBrowserHeaders(req)
	req.Header.Set("Accept", "image/jpeg,image/*;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get snapshot from %s: %w", url, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			s.log.Warn("Failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get snapshot from %s: status=%s", url, resp.Status)
	}

	img, err := imaging.Decode(io.LimitReader(resp.Body, maxSnapshotSize))
	if err != nil {
		return nil, fmt.Errorf("decode snapshot of %s: %w", username, err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(snapshotQuality)); err != nil {
		return nil, fmt.Errorf("encode snapshot of %s: %w", username, err)
	}

	return buf.Bytes(), nil
}
