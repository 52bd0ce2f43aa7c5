package rooms_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Roma7-7-7/room-notifier/internal/rooms"
)

func TestProbe_Probe(t *testing.T) {
	type response struct {
		code int
		body string
	}
	tests := []struct {
		name     string
		response response
		want     rooms.Status
		wantErr  assert.ErrorAssertionFunc
	}{
		{
			name:     "online",
			response: response{code: http.StatusOK, body: `{"room_status":"public","num_viewers":12}`},
			want:     rooms.StatusOnline,
			wantErr:  assert.NoError,
		},
		{
			name:     "unknown_status_folds_to_online",
			response: response{code: http.StatusOK, body: `{"room_status":"group"}`},
			want:     rooms.StatusOnline,
			wantErr:  assert.NoError,
		},
		{
			name:     "offline",
			response: response{code: http.StatusOK, body: `{"room_status":"offline"}`},
			want:     rooms.StatusOffline,
			wantErr:  assert.NoError,
		},
		{
			name:     "away",
			response: response{code: http.StatusOK, body: `{"room_status":"away"}`},
			want:     rooms.StatusAway,
			wantErr:  assert.NoError,
		},
		{
			name:     "private",
			response: response{code: http.StatusOK, body: `{"room_status":"private"}`},
			want:     rooms.StatusPrivate,
			wantErr:  assert.NoError,
		},
		{
			name:     "hidden",
			response: response{code: http.StatusOK, body: `{"room_status":"hidden"}`},
			want:     rooms.StatusHidden,
			wantErr:  assert.NoError,
		},
		{
			name:     "canceled_marker",
			response: response{code: http.StatusNotFound, body: "<html><body>Sorry! It's probably just a broken link, or perhaps a cancelled broadcaster.</body></html>"},
			want:     rooms.StatusCanceled,
			wantErr:  assert.NoError,
		},
		{
			name:     "canceled_marker_wins_over_ok",
			response: response{code: http.StatusOK, body: "It's probably just a broken link, or perhaps a cancelled broadcaster."},
			want:     rooms.StatusCanceled,
			wantErr:  assert.NoError,
		},
		{
			name:     "deleted",
			response: response{code: http.StatusUnauthorized, body: `{"status":401,"detail":"Room is deleted."}`},
			want:     rooms.StatusDeleted,
			wantErr:  assert.NoError,
		},
		{
			name:     "banned",
			response: response{code: http.StatusUnauthorized, body: `{"status":401,"detail":"This room has been banned."}`},
			want:     rooms.StatusBanned,
			wantErr:  assert.NoError,
		},
		{
			name:     "geoblocked",
			response: response{code: http.StatusUnauthorized, body: `{"status":401,"detail":"This room is not available to your region or gender."}`},
			want:     rooms.StatusGeoblocked,
			wantErr:  assert.NoError,
		},
		{
			name:     "password",
			response: response{code: http.StatusUnauthorized, body: `{"status":401,"detail":"This room requires a password."}`},
			want:     rooms.StatusPassword,
			wantErr:  assert.NoError,
		},
		{
			name:     "unknown_detail_is_offline",
			response: response{code: http.StatusUnauthorized, body: `{"status":401,"detail":"Something else"}`},
			want:     rooms.StatusOffline,
			wantErr:  assert.NoError,
		},
		{
			name:     "error_malformed_json",
			response: response{code: http.StatusOK, body: `{"room_status":`},
			want:     rooms.StatusError,
			wantErr:  transientErrorContains("decode json: "),
		},
		{
			name:     "error_missing_room_status",
			response: response{code: http.StatusOK, body: `{"num_viewers":1}`},
			want:     rooms.StatusError,
			wantErr:  transientErrorContains("room_status is missing"),
		},
		{
			name:     "error_html_challenge",
			response: response{code: http.StatusOK, body: "<html><head><title>Just a moment...</title></head><body></body></html>"},
			want:     rooms.StatusError,
			wantErr:  transientErrorContains(`got html page "Just a moment..." instead of json`),
		},
		{
			name:     "error_unauthorized_not_json",
			response: response{code: http.StatusUnauthorized, body: "nope"},
			want:     rooms.StatusError,
			wantErr:  transientErrorContains("decode json: "),
		},
		{
			name:     "error_unexpected_status",
			response: response{code: http.StatusTooManyRequests, body: `{"detail":"slow down"}`},
			want:     rooms.StatusError,
			wantErr:  transientErrorContains("unexpected status code 429"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/chatvideocontext/alice/", r.URL.Path)
				assert.True(t, strings.HasPrefix(r.Header.Get("User-Agent"), "Mozilla/5.0"), "browser user agent expected")
				w.WriteHeader(tt.response.code)
				_, _ = w.Write([]byte(tt.response.body))
			}))
			defer srv.Close()

			p := rooms.NewProbe(srv.Client(), srv.URL+"/api/chatvideocontext/%s/", slog.New(slog.DiscardHandler))
			got, err := p.Probe(t.Context(), "alice")
			if !tt.wantErr(t, err, "Probe()") {
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProbe_Probe_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	p := rooms.NewProbe(http.DefaultClient, url+"/%s", slog.New(slog.DiscardHandler))
	got, err := p.Probe(t.Context(), "alice")
	assert.ErrorIs(t, err, rooms.ErrTransient)
	assert.Equal(t, rooms.StatusError, got)
}

func transientErrorContains(contains string) assert.ErrorAssertionFunc {
	return func(t assert.TestingT, err error, i ...interface{}) bool {
		return assert.Error(t, err, i...) && assert.ErrorIs(t, err, rooms.ErrTransient) && assert.ErrorContains(t, err, contains)
	}
}
