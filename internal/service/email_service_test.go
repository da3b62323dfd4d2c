package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/blogicum-next/internal/config"
)

func TestSendCommentNotificationDisabled(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{Enabled: false})
	err := svc.SendCommentNotification("author@example.com", CommentNotificationInput{PostTitle: "t"})
	if !errors.Is(err, ErrEmailServiceDisabled) {
		t.Fatalf("disabled service want ErrEmailServiceDisabled got %v", err)
	}
}

func TestSendCommentNotificationNotConfigured(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{Enabled: true})
	err := svc.SendCommentNotification("author@example.com", CommentNotificationInput{PostTitle: "t"})
	if !errors.Is(err, ErrEmailServiceNotConfigured) {
		t.Fatalf("unconfigured service want ErrEmailServiceNotConfigured got %v", err)
	}
}

func TestSendCommentNotificationInvalidReceiver(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{
		Enabled: true,
		Host:    "smtp.example.com",
		Port:    587,
		From:    "noreply@example.com",
	})
	err := svc.SendCommentNotification("not-an-address", CommentNotificationInput{PostTitle: "t"})
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("bad receiver want ErrInvalidEmail got %v", err)
	}
}

func TestBuildEmailMessage(t *testing.T) {
	msg := buildEmailMessage("noreply@example.com", "author@example.com", "New comment on \"hello\"", "body text")

	if !strings.Contains(msg, "From: noreply@example.com\r\n") {
		t.Fatalf("missing from header: %q", msg)
	}
	if !strings.Contains(msg, "To: author@example.com\r\n") {
		t.Fatalf("missing to header: %q", msg)
	}
	if !strings.Contains(msg, "Content-Type: text/plain; charset=UTF-8\r\n") {
		t.Fatalf("missing content type header: %q", msg)
	}
	if !strings.HasSuffix(msg, "\r\n\r\nbody text") && !strings.HasSuffix(msg, "body text") {
		t.Fatalf("body should follow blank line: %q", msg)
	}
}

func TestBuildFromAddress(t *testing.T) {
	if got := buildFromAddress("noreply@example.com", ""); got != "noreply@example.com" {
		t.Fatalf("bare address want unchanged got %q", got)
	}
	got := buildFromAddress("noreply@example.com", "Blogicum")
	if !strings.Contains(got, "noreply@example.com") || !strings.Contains(got, "Blogicum") {
		t.Fatalf("named address should carry both name and address, got %q", got)
	}
}
