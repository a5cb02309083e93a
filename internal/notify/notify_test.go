package notify

import (
	"errors"
	"testing"

	"xtime/internal/domain"
	"xtime/internal/logging"
)

type recorder struct {
	titles []string
	bodies []string
	err    error
}

func (r *recorder) send(title, body string) error {
	r.titles = append(r.titles, title)
	r.bodies = append(r.bodies, body)
	return r.err
}

func TestNotify_Forwards(t *testing.T) {
	r := &recorder{}
	d := NewDispatcherWith(r.send, logging.Nop())

	if err := d.Notify("Worklog saved", "PROJ-1: 01:00:00 logged"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.titles) != 1 || r.titles[0] != "Worklog saved" {
		t.Fatalf("unexpected titles: %v", r.titles)
	}
	if r.bodies[0] != "PROJ-1: 01:00:00 logged" {
		t.Errorf("unexpected body: %q", r.bodies[0])
	}
}

func TestNotify_EmptyTitleUsesAppName(t *testing.T) {
	r := &recorder{}
	d := NewDispatcherWith(r.send, logging.Nop())

	_ = d.Notify("", "body")
	if r.titles[0] != AppName {
		t.Errorf("expected %q, got %q", AppName, r.titles[0])
	}
}

func TestNotify_SurfacesBackendError(t *testing.T) {
	r := &recorder{err: errors.New("no notification daemon")}
	d := NewDispatcherWith(r.send, logging.Nop())

	err := d.Notify("t", "b")
	if !errors.Is(err, domain.ErrBackend) {
		t.Fatalf("expected ErrBackend, got %v", err)
	}
}
