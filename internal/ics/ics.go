// Package ics renders single-event iCalendar payloads for appointment
// exports.
package ics

import (
	"fmt"
	"strings"
	"time"
)

const timestampLayout = "20060102T150405Z"

// Event is one calendar entry.
type Event struct {
	UID         string
	Start       time.Time
	End         time.Time
	Summary     string
	Description string
	Location    string
}

// Encode renders the event as a VCALENDAR document. generatedAt becomes the
// DTSTAMP, so the output is deterministic for a fixed clock. Lines are
// CRLF-terminated per RFC 5545.
func (e Event) Encode(generatedAt time.Time) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Peluqueria Blass//Appointment//ES",
		"BEGIN:VEVENT",
		"UID:" + escapeText(e.UID),
		"DTSTAMP:" + generatedAt.UTC().Format(timestampLayout),
		"DTSTART:" + e.Start.UTC().Format(timestampLayout),
		"DTEND:" + e.End.UTC().Format(timestampLayout),
		"SUMMARY:" + escapeText(e.Summary),
		"DESCRIPTION:" + escapeText(e.Description),
		"LOCATION:" + escapeText(e.Location),
		"STATUS:CONFIRMED",
		"SEQUENCE:0",
		"BEGIN:VALARM",
		"TRIGGER:-PT30M",
		"ACTION:DISPLAY",
		"DESCRIPTION:Appointment reminder",
		"END:VALARM",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

func escapeText(s string) string { return textEscaper.Replace(s) }

// Filename returns the attachment name for an appointment export.
func Filename(id int64) string {
	return fmt.Sprintf("appointment-%d.ics", id)
}
