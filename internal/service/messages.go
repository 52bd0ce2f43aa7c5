package service

import (
	"fmt"
	"html"

	"github.com/Roma7-7-7/room-notifier/internal/rooms"
)

// StreamImageUnique identifies the "Update stream image" callback button
const StreamImageUnique = "stream_image"

func WatchButton(watchURL, username string) Button {
	return Button{Text: "Watch the live", URL: fmt.Sprintf(watchURL, username)}
}

func StreamImageButton(username string) Button {
	return Button{Text: "Update stream image", Unique: StreamImageUnique, Data: username}
}

func onlineText(username string) string {
	return fmt.Sprintf("%s is now <b>online</b>!", html.EscapeString(username))
}

func offlineText(username string) string {
	return fmt.Sprintf("%s is now <b>offline</b>", html.EscapeString(username))
}

func removedText(username string, status rooms.Status) string {
	switch status {
	case rooms.StatusDeleted:
		return username + " has been removed because room has been deleted"
	case rooms.StatusBanned:
		return username + " has been removed because room has been banned"
	case rooms.StatusGeoblocked:
		return username + " has been removed because of geoblocking"
	case rooms.StatusCanceled:
		return username + " has been removed because the broadcaster does not exist anymore"
	default:
		return fmt.Sprintf("%s has been removed (%s)", username, status)
	}
}
