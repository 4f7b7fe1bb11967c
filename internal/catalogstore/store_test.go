package catalogstore

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"cinefuse/internal/movie"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestImportAndList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	records := []movie.CatalogRecord{
		{
			CatalogID:           634649,
			Title:               "Spider-Man: No Way Home",
			ReleaseYear:         2021,
			OriginalLanguage:    "en",
			Genres:              []string{"Action", "Adventure"},
			RuntimeMinutes:      148,
			ProductionCompanies: []string{"Columbia Pictures", "Marvel Studios"},
		},
		{
			CatalogID:        99999,
			Title:            "Unknown Year Film",
			OriginalLanguage: "fr",
		},
	}

	imported, err := store.Import(ctx, records)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if imported != 2 {
		t.Errorf("Import() = %d, want 2", imported)
	}

	listed, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	// List orders by catalog id regardless of insertion order.
	want := []movie.CatalogRecord{records[1], records[0]}
	if !reflect.DeepEqual(listed, want) {
		t.Errorf("List() = %+v, want %+v", listed, want)
	}
	for i := 1; i < len(listed); i++ {
		if listed[i-1].CatalogID >= listed[i].CatalogID {
			t.Errorf("List() ids out of order: %d before %d", listed[i-1].CatalogID, listed[i].CatalogID)
		}
	}
}

func TestImportUpserts(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	original := movie.CatalogRecord{CatalogID: 1, Title: "Working Title", ReleaseYear: 2020}
	if _, err := store.Import(ctx, []movie.CatalogRecord{original}); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	updated := original
	updated.Title = "Final Title"
	updated.RuntimeMinutes = 120
	if _, err := store.Import(ctx, []movie.CatalogRecord{updated}); err != nil {
		t.Fatalf("second Import() error = %v", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Fatalf("Count() = %d, want 1 after upsert", count)
	}

	listed, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if listed[0].Title != "Final Title" || listed[0].RuntimeMinutes != 120 {
		t.Errorf("List()[0] = %+v, want updated row", listed[0])
	}
}

func TestListEmptyStore(t *testing.T) {
	store := openTestStore(t)
	listed, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("List() = %d records, want 0", len(listed))
	}
}
