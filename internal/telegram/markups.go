package telegram

import (
	"fmt"

	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/room-notifier/internal/dal"
	"github.com/Roma7-7-7/room-notifier/internal/service"
)

const (
	linkPreviewUnique        = "link_preview"
	notificationsSoundUnique = "notifications_sound"

	toggleOn  = "on"
	toggleOff = "off"
)

// replyMarkup renders buttons as a single inline row
func replyMarkup(buttons []service.Button) *tb.ReplyMarkup {
	if len(buttons) == 0 {
		return nil
	}

	markup := &tb.ReplyMarkup{}
	row := make(tb.Row, 0, len(buttons))
	for _, b := range buttons {
		if b.URL != "" {
			row = append(row, markup.URL(b.Text, b.URL))
			continue
		}
		row = append(row, markup.Data(b.Text, b.Unique, b.Data))
	}
	markup.Inline(row)

	return markup
}

func settingsText(p dal.Preferences) string {
	return fmt.Sprintf("Your settings:\n\nLink preview: <b>%s</b>\nNotifications sound: <b>%s</b>",
		enabledText(p.LinkPreview), enabledText(p.NotificationsSound))
}

func settingsMarkup(p dal.Preferences) *tb.ReplyMarkup {
	linkPreview := service.Button{Text: "Disable link preview", Unique: linkPreviewUnique, Data: toggleOff}
	if !p.LinkPreview {
		linkPreview = service.Button{Text: "Enable link preview", Unique: linkPreviewUnique, Data: toggleOn}
	}
	sound := service.Button{Text: "Mute notifications", Unique: notificationsSoundUnique, Data: toggleOff}
	if !p.NotificationsSound {
		sound = service.Button{Text: "Unmute notifications", Unique: notificationsSoundUnique, Data: toggleOn}
	}

	markup := &tb.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(linkPreview.Text, linkPreview.Unique, linkPreview.Data)),
		markup.Row(markup.Data(sound.Text, sound.Unique, sound.Data)),
	)
	return markup
}

func enabledText(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
