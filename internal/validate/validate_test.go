package validate_test

import (
	"testing"
	"time"

	"github.com/hassankhsalar/boichai-api/internal/validate"
)

func TestRequireEmail(t *testing.T) {
	got, err := validate.RequireEmail("  Reader@Example.COM ")
	if err != nil {
		t.Fatal(err)
	}
	if got != "reader@example.com" {
		t.Fatalf("want lowercased trimmed email, got %q", got)
	}

	for _, bad := range []string{"", "nope", "a@b", "two@@example.com", "sp ace@example.com"} {
		if _, err := validate.RequireEmail(bad); err == nil {
			t.Errorf("accepted %q", bad)
		}
	}
}

func TestRequireUUID(t *testing.T) {
	if _, err := validate.RequireUUID("book_id", "6f1b2a3c-4d5e-4f60-8a9b-0c1d2e3f4a5b"); err != nil {
		t.Fatal(err)
	}
	if _, err := validate.RequireUUID("book_id", "garbage"); err == nil {
		t.Fatal("accepted malformed id")
	}
}

func TestRequireFutureDate(t *testing.T) {
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	if _, err := validate.RequireFutureDate("return_date", tomorrow); err != nil {
		t.Fatal(err)
	}
	if _, err := validate.RequireFutureDate("return_date", "2020-01-01"); err == nil {
		t.Fatal("accepted past date")
	}
	if _, err := validate.RequireFutureDate("return_date", "01/02/2026"); err == nil {
		t.Fatal("accepted wrong format")
	}
}

func TestRequireRating(t *testing.T) {
	if _, err := validate.RequireRating(4.5); err != nil {
		t.Fatal(err)
	}
	if _, err := validate.RequireRating(5.1); err == nil {
		t.Fatal("accepted rating above 5")
	}
	if _, err := validate.RequireRating(-0.1); err == nil {
		t.Fatal("accepted negative rating")
	}
}
