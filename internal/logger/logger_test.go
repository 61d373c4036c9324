package logger

import (
	"context"
	"fmt"
	"testing"
)

func TestLogger(t *testing.T) {
	// skip in ci checks
	if true {
		t.Skip()
	}

	Info("hello")

	Info("hello %s", "world")

	x := map[string]string{
		"hi": "ok",
	}
	Info("hi %v", x)

	Error(fmt.Errorf("ah man"))

	t.Fail()
}

func TestFromContext(t *testing.T) {
	log := New()
	ctx := ToContext(context.Background(), log)
	if FromContext(ctx) != log {
		t.Error("expected logger from ctx")
	}
}
