package store

import (
	"database/sql"
	"fmt"
	"testing"
)

// fixtureRows es un cursor en memoria para testear los transformadores sin
// driver. nil en una celda representa SQL NULL.
type fixtureRows struct {
	cols []string
	data [][]any
	pos  int
	err  error
}

func (f *fixtureRows) Columns() ([]string, error) { return f.cols, nil }

func (f *fixtureRows) Next() bool {
	if f.pos >= len(f.data) {
		return false
	}
	f.pos++
	return true
}

func (f *fixtureRows) Scan(dest ...any) error {
	row := f.data[f.pos-1]
	if len(dest) > len(row) {
		return fmt.Errorf("scan: %d dest, %d columns", len(dest), len(row))
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *sql.NullString:
			if row[i] == nil {
				*d = sql.NullString{}
			} else {
				*d = sql.NullString{String: fmt.Sprint(row[i]), Valid: true}
			}
		case *sql.NullInt64:
			if row[i] == nil {
				*d = sql.NullInt64{}
			} else {
				*d = sql.NullInt64{Int64: int64(row[i].(int)), Valid: true}
			}
		case *sql.NullBool:
			if row[i] == nil {
				*d = sql.NullBool{}
			} else {
				*d = sql.NullBool{Bool: row[i].(bool), Valid: true}
			}
		default:
			return fmt.Errorf("scan: unsupported dest %T", dest[i])
		}
	}
	return nil
}

func (f *fixtureRows) Err() error { return f.err }

func TestReadRecords(t *testing.T) {
	rs := &fixtureRows{
		cols: []string{"id", "username", "email"},
		data: [][]any{
			{"1", "alice", "alice@example.com"},
			{"2", "bob", nil}, // email NULL
		},
	}

	records, err := ReadRecords(rs)
	if err != nil {
		t.Fatalf("ReadRecords err: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["username"] != "alice" || records[0]["email"] != "alice@example.com" {
		t.Errorf("first record wrong: %v", records[0])
	}
	// NULL => columna ausente del mapa, no string vacío
	if _, present := records[1]["email"]; present {
		t.Errorf("NULL column must be absent: %v", records[1])
	}
	if records[1]["username"] != "bob" {
		t.Errorf("second record wrong: %v", records[1])
	}
}

func TestReadRecords_Empty(t *testing.T) {
	records, err := ReadRecords(&fixtureRows{cols: []string{"id"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestReadInt_DistinguishesNoRowFromZero(t *testing.T) {
	// sin filas => ok=false
	_, ok, err := ReadInt(&fixtureRows{cols: []string{"c"}})
	if err != nil || ok {
		t.Fatalf("no rows: want ok=false err=nil, got ok=%v err=%v", ok, err)
	}

	// cero legítimo => ok=true
	v, ok, err := ReadInt(&fixtureRows{cols: []string{"c"}, data: [][]any{{0}}})
	if err != nil || !ok || v != 0 {
		t.Fatalf("zero row: want (0,true,nil), got (%d,%v,%v)", v, ok, err)
	}
}

func TestReadBool(t *testing.T) {
	v, ok, err := ReadBool(&fixtureRows{cols: []string{"c"}, data: [][]any{{true}}})
	if err != nil || !ok || !v {
		t.Fatalf("want (true,true,nil), got (%v,%v,%v)", v, ok, err)
	}
	_, ok, _ = ReadBool(&fixtureRows{cols: []string{"c"}})
	if ok {
		t.Fatal("no rows: want ok=false")
	}
}

func TestReadString(t *testing.T) {
	v, ok, err := ReadString(&fixtureRows{cols: []string{"c"}, data: [][]any{{"hash"}}})
	if err != nil || !ok || v != "hash" {
		t.Fatalf("want (hash,true,nil), got (%q,%v,%v)", v, ok, err)
	}

	// fila presente con NULL => ok=true, string vacío
	v, ok, err = ReadString(&fixtureRows{cols: []string{"c"}, data: [][]any{{nil}}})
	if err != nil || !ok || v != "" {
		t.Fatalf("null row: want (\"\",true,nil), got (%q,%v,%v)", v, ok, err)
	}

	_, ok, _ = ReadString(&fixtureRows{cols: []string{"c"}})
	if ok {
		t.Fatal("no rows: want ok=false")
	}
}

// ReadString solo consume la primera fila: el transformador no avanza más
// filas de las que necesita.
func TestReadString_OnlyFirstRow(t *testing.T) {
	rs := &fixtureRows{cols: []string{"c"}, data: [][]any{{"first"}, {"second"}}}
	v, ok, err := ReadString(rs)
	if err != nil || !ok || v != "first" {
		t.Fatalf("got (%q,%v,%v)", v, ok, err)
	}
	if rs.pos != 1 {
		t.Fatalf("cursor advanced too far: pos=%d", rs.pos)
	}
}
