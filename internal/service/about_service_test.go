package service

import (
	"errors"
	"testing"

	"bardabar-be-svc/internal/models"
	"bardabar-be-svc/internal/repository"
)

func newAboutService(t *testing.T) AboutService {
	t.Helper()
	return NewAboutService(repository.NewAboutRepository(newTestDB(t)), testLogger())
}

func TestAboutGetCreatesSingletonDefaults(t *testing.T) {
	svc := newAboutService(t)

	content, err := svc.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if content.ID != models.AboutContentID {
		t.Errorf("expected singleton id %d, got %d", models.AboutContentID, content.ID)
	}
	if content.Title != "О нас" || content.Advantages != "[]" {
		t.Errorf("unexpected defaults: %+v", content)
	}

	again, err := svc.Get()
	if err != nil {
		t.Fatalf("second Get failed: %v", err)
	}
	if again.ID != content.ID {
		t.Errorf("Get created a second row: %d vs %d", again.ID, content.ID)
	}
}

func TestAboutUpdatePersists(t *testing.T) {
	svc := newAboutService(t)

	title := "О кафе"
	updated, err := svc.Update(UpdateAboutInput{
		Title:      &title,
		Content:    "Уютное место в центре города",
		Advantages: `[{"title":"Кухня","description":"Европейская и узбекская"}]`,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "О кафе" {
		t.Errorf("expected updated title, got %q", updated.Title)
	}

	stored, err := svc.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stored.Content != "Уютное место в центре города" {
		t.Errorf("content not persisted: %q", stored.Content)
	}
	if stored.ID != models.AboutContentID {
		t.Errorf("update changed the singleton id to %d", stored.ID)
	}
}

func TestAboutUpdateRejectsInvalidAdvantages(t *testing.T) {
	svc := newAboutService(t)

	before, err := svc.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	_, err = svc.Update(UpdateAboutInput{Content: "новый текст", Advantages: "{broken json"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	after, err := svc.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if after.Content != before.Content || after.Advantages != before.Advantages {
		t.Errorf("rejected update still mutated content: %+v", after)
	}
}
