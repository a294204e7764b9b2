package store

import (
	"strings"
	"testing"

	"github.com/dropDatabas3/userfed/internal/domain/repository"
)

func TestPaginate_LimitOffsetFamily(t *testing.T) {
	page := repository.Pageable{Offset: 20, Limit: 10}
	for _, d := range []Dialect{DialectPostgres, DialectMySQL, DialectSQLite} {
		got, err := d.Paginate("SELECT * FROM users ORDER BY id", page)
		if err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		want := "SELECT * FROM users ORDER BY id LIMIT 10 OFFSET 20"
		if got != want {
			t.Errorf("%s: got %q want %q", d, got, want)
		}
	}
}

func TestPaginate_SQLServer(t *testing.T) {
	got, err := DialectSQLServer.Paginate("SELECT * FROM users ORDER BY id", repository.Pageable{Offset: 5, Limit: 3})
	if err != nil {
		t.Fatal(err)
	}
	want := "SELECT * FROM users ORDER BY id OFFSET 5 ROWS FETCH NEXT 3 ROWS ONLY"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestPaginate_OracleRownumWindow(t *testing.T) {
	got, err := DialectOracle.Paginate("SELECT * FROM users ORDER BY id", repository.Pageable{Offset: 5, Limit: 3})
	if err != nil {
		t.Fatal(err)
	}
	// La ventana [5, 8): ROWNUM <= offset+limit por fuera, rnum > offset
	if !strings.Contains(got, "ROWNUM <= 8") || !strings.Contains(got, "rnum > 5") {
		t.Errorf("rownum window wrong: %q", got)
	}
	if !strings.Contains(got, "SELECT * FROM users ORDER BY id") {
		t.Errorf("base query missing: %q", got)
	}
}

func TestPaginate_ZeroLimitIsLegal(t *testing.T) {
	got, err := DialectPostgres.Paginate("SELECT 1", repository.Pageable{Offset: 0, Limit: 0})
	if err != nil {
		t.Fatalf("limit 0 must be legal: %v", err)
	}
	if !strings.Contains(got, "LIMIT 0") {
		t.Errorf("got %q", got)
	}
}

func TestPaginate_NegativeWindowRejected(t *testing.T) {
	if _, err := DialectPostgres.Paginate("SELECT 1", repository.Pageable{Offset: -1, Limit: 10}); err == nil {
		t.Error("negative offset must fail")
	}
	if _, err := DialectPostgres.Paginate("SELECT 1", repository.Pageable{Offset: 0, Limit: -1}); err == nil {
		t.Error("negative limit must fail")
	}
}

func TestPaginate_UnknownDialectFailsLoud(t *testing.T) {
	// Nunca devolver silenciosamente la query sin acotar
	if _, err := Dialect("db2").Paginate("SELECT 1", repository.Pageable{Offset: 0, Limit: 1}); err == nil {
		t.Fatal("unknown dialect must be a configuration error")
	}
}

func TestDialectValid(t *testing.T) {
	if !DialectOracle.Valid() {
		t.Error("oracle should be valid")
	}
	if Dialect("").Valid() {
		t.Error("empty dialect should be invalid")
	}
}
