// Package locale formats appointment slots and user-facing notices.
package locale

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/pt_BR"
)

// Locale renders the human readable pieces of notifications and emails.
type Locale interface {
	// FormatSlot renders an appointment time, e.g. "dia 05 de junho, às 10:00h".
	FormatSlot(t time.Time) string
	// BookingNotice is the in-app notification sent to the provider.
	BookingNotice(customer, when string) string
	// CancellationSubject is the subject of the cancellation email.
	CancellationSubject() string
}

type ptBR struct {
	tr  locales.Translator
	loc *time.Location
}

func (l ptBR) FormatSlot(t time.Time) string {
	t = t.In(l.loc)
	return fmt.Sprintf("dia %02d de %s, às %d:%02dh", t.Day(), l.tr.MonthWide(t.Month()), t.Hour(), t.Minute())
}

func (ptBR) BookingNotice(customer, when string) string {
	return fmt.Sprintf("Novo agendamento de %s para %s", customer, when)
}

func (ptBR) CancellationSubject() string { return "Agendamento cancelado" }

type english struct {
	tr  locales.Translator
	loc *time.Location
}

func (l english) FormatSlot(t time.Time) string {
	t = t.In(l.loc)
	return fmt.Sprintf("%s %d, at %d:%02d", l.tr.MonthWide(t.Month()), t.Day(), t.Hour(), t.Minute())
}

func (english) BookingNotice(customer, when string) string {
	return fmt.Sprintf("New booking from %s for %s", customer, when)
}

func (english) CancellationSubject() string { return "Appointment canceled" }

// New returns the Locale for name ("pt_BR" or "en"), rendering times in loc.
func New(name string, loc *time.Location) (Locale, error) {
	if loc == nil {
		loc = time.UTC
	}
	switch strings.ReplaceAll(name, "-", "_") {
	case "pt_BR", "pt":
		return ptBR{tr: pt_BR.New(), loc: loc}, nil
	case "en", "en_US":
		return english{tr: en.New(), loc: loc}, nil
	}
	return nil, fmt.Errorf("unsupported locale %q", name)
}
