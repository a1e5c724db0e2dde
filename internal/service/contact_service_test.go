package service

import (
	"errors"
	"testing"

	"bardabar-be-svc/internal/repository"
)

func newContactService(t *testing.T) ContactService {
	t.Helper()
	return NewContactService(repository.NewContactRepository(newTestDB(t)), testLogger())
}

func TestSubmitContactValidation(t *testing.T) {
	svc := newContactService(t)

	cases := []struct {
		name  string
		input SubmitContactInput
	}{
		{"missing name", SubmitContactInput{Phone: "+7 900 000-00-00", Type: "reservation"}},
		{"missing phone", SubmitContactInput{Name: "Анна", Type: "reservation"}},
		{"missing type", SubmitContactInput{Name: "Анна", Phone: "+7 900 000-00-00"}},
	}
	for _, tc := range cases {
		if _, err := svc.Submit(tc.input); !errors.Is(err, ErrValidation) {
			t.Errorf("%s: expected ErrValidation, got %v", tc.name, err)
		}
	}

	requests, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(requests) != 0 {
		t.Errorf("expected no stored requests, got %d", len(requests))
	}
}

func TestSubmitContactAndListNewestFirst(t *testing.T) {
	svc := newContactService(t)

	for _, name := range []string{"Анна", "Борис", "Вера"} {
		if _, err := svc.Submit(SubmitContactInput{
			Name:    name,
			Phone:   "+7 900 000-00-00",
			Type:    "banquet",
			Message: "Хотим заказать банкет",
		}); err != nil {
			t.Fatalf("Submit(%q) failed: %v", name, err)
		}
	}

	requests, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(requests) != 3 {
		t.Fatalf("expected 3 requests, got %d", len(requests))
	}
	for i := 1; i < len(requests); i++ {
		if requests[i].CreatedAt.After(requests[i-1].CreatedAt) {
			t.Errorf("requests not ordered newest first at position %d", i)
		}
	}
}
