package jobs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReadCatalogCSV(t *testing.T) {
	path := writeCSV(t, "id,title,genre,rating,release_year,description,poster_url\n"+
		"1,Heat,Crime,4.5,1995,Bank heist,http://example.com/heat.jpg\n"+
		"2,Ronin,,,,,\n")
	movies, err := readCatalogCSV(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(movies))
	}
	m := movies[0]
	if m.ID != 1 || m.Title != "Heat" || m.Genre == nil || *m.Genre != "Crime" {
		t.Fatalf("unexpected first movie: %+v", m)
	}
	if m.Rating == nil || *m.Rating != 4.5 || m.ReleaseYear == nil || *m.ReleaseYear != 1995 {
		t.Fatalf("numeric fields not parsed: %+v", m)
	}
	// empty optional fields stay nil
	if movies[1].Genre != nil || movies[1].Rating != nil || movies[1].ReleaseYear != nil {
		t.Fatalf("expected nil optionals: %+v", movies[1])
	}
}

func TestReadCatalogCSVRejectsBadRows(t *testing.T) {
	cases := map[string]string{
		"bad id":     "id,title,genre,rating,release_year,description,poster_url\nx,Heat,,,,,\n",
		"bad rating": "id,title,genre,rating,release_year,description,poster_url\n1,Heat,,abc,,,\n",
		"bad year":   "id,title,genre,rating,release_year,description,poster_url\n1,Heat,,,199x,,\n",
	}
	for name, content := range cases {
		if _, err := readCatalogCSV(writeCSV(t, content)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
