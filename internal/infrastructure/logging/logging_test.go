package logging

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestNew(t *testing.T) {
	l := New("debug", "text")
	if l.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug, got %s", l.GetLevel())
	}
	if _, ok := l.Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("expected text formatter")
	}

	l = New("nonsense", "")
	if l.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected info fallback, got %s", l.GetLevel())
	}
	if _, ok := l.Formatter.(*logrus.JSONFormatter); !ok {
		t.Fatalf("expected json formatter")
	}
}

func TestLogError(t *testing.T) {
	logger, hook := test.NewNullLogger()
	LogError(logger, "solicitation", "Accept", "store", map[string]int{"id": 1}, errors.New("boom"))

	e := hook.LastEntry()
	if e == nil || e.Message != "boom" || e.Level != logrus.ErrorLevel {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e.Data["module"] != "solicitation" || e.Data["data"] == nil {
		t.Fatalf("unexpected fields: %+v", e.Data)
	}
}
