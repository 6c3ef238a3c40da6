// Package tracing records presence phase transitions so animation timing
// can be inspected after the fact.
package tracing

import (
	"database/sql"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	// SQLite driver for the default recorder backend.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// Recorder is a backend that stores trace rows. Rows are flat structs with
// scalar fields only.
type Recorder interface {
	// CreateTable creates a table shaped like sampleEntry.
	CreateTable(tableName string, sampleEntry any)

	// InsertData buffers one row for a table that already exists.
	InsertData(tableName string, entry any)

	// ListTables returns the names of all created tables.
	ListTables() []string

	// Flush writes all buffered rows to the backend.
	Flush()
}

// NewSQLiteRecorder creates a Recorder writing to path + ".sqlite3". An
// empty path gets a generated name. Buffered rows are flushed when the
// batch fills and at process exit.
func NewSQLiteRecorder(path string) Recorder {
	if path == "" {
		path = "presence_trace_" + xid.New().String()
	}

	filename := path + ".sqlite3"
	if _, err := os.Stat(filename); err == nil {
		panic(fmt.Errorf("tracing: file %s already exists", filename))
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	fmt.Fprintf(os.Stderr, "Recording presence trace to %s\n", filename)

	r := newSQLiteRecorderWithDB(db)
	atexit.Register(r.Flush)

	return r
}

// NewSQLiteRecorderWithDB creates a Recorder on an existing database
// connection. The caller owns the connection and the flushing schedule.
func NewSQLiteRecorderWithDB(db *sql.DB) Recorder {
	return newSQLiteRecorderWithDB(db)
}

func newSQLiteRecorderWithDB(db *sql.DB) *sqliteRecorder {
	return &sqliteRecorder{
		db:        db,
		batchSize: 1024,
		tables:    make(map[string]*traceTable),
	}
}

type traceTable struct {
	structType reflect.Type
	entries    []any
}

type sqliteRecorder struct {
	mu sync.Mutex

	db        *sql.DB
	batchSize int

	tables     map[string]*traceTable
	entryCount int
}

func (r *sqliteRecorder) CreateTable(tableName string, sampleEntry any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tables[tableName]; exists {
		panic(fmt.Sprintf("tracing: table %s already exists", tableName))
	}

	fields := fieldNames(sampleEntry)
	createSQL := "CREATE TABLE " + tableName +
		" (\n\t" + strings.Join(fields, ", \n\t") + "\n);"
	r.mustExecute(createSQL)

	r.tables[tableName] = &traceTable{
		structType: reflect.TypeOf(sampleEntry),
	}
}

func (r *sqliteRecorder) InsertData(tableName string, entry any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	table, exists := r.tables[tableName]
	if !exists {
		panic(fmt.Sprintf("tracing: table %s does not exist", tableName))
	}

	if reflect.TypeOf(entry) != table.structType {
		panic(fmt.Sprintf(
			"tracing: entry type %T does not match table %s",
			entry, tableName,
		))
	}

	table.entries = append(table.entries, entry)
	r.entryCount++

	if r.entryCount >= r.batchSize {
		r.flushLocked()
	}
}

func (r *sqliteRecorder) ListTables() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	tables := make([]string, 0, len(r.tables))
	for name := range r.tables {
		tables = append(tables, name)
	}

	return tables
}

func (r *sqliteRecorder) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.flushLocked()
}

func (r *sqliteRecorder) flushLocked() {
	if r.entryCount == 0 {
		return
	}

	r.mustExecute("BEGIN TRANSACTION")
	defer r.mustExecute("COMMIT TRANSACTION")

	for tableName, table := range r.tables {
		if len(table.entries) == 0 {
			continue
		}

		stmt := r.prepareInsert(tableName, table.entries[0])

		for _, entry := range table.entries {
			value := reflect.ValueOf(entry)
			args := make([]any, 0, value.NumField())
			for i := 0; i < value.NumField(); i++ {
				args = append(args, value.Field(i).Interface())
			}

			if _, err := stmt.Exec(args...); err != nil {
				panic(err)
			}
		}

		table.entries = nil
		stmt.Close()
	}

	r.entryCount = 0
}

func (r *sqliteRecorder) prepareInsert(tableName string, sample any) *sql.Stmt {
	placeholders := make([]string, len(fieldNames(sample)))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	insertSQL := "INSERT INTO " + tableName +
		" VALUES (" + strings.Join(placeholders, ", ") + ")"

	stmt, err := r.db.Prepare(insertSQL)
	if err != nil {
		panic(err)
	}

	return stmt
}

func (r *sqliteRecorder) mustExecute(query string) sql.Result {
	res, err := r.db.Exec(query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to execute: %s\n", query)
		panic(err)
	}

	return res
}

// fieldNames lists the exported scalar field names of a row struct, in
// declaration order. Non-scalar fields are a programming error.
func fieldNames(entry any) []string {
	t := reflect.TypeOf(entry)
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("tracing: row must be a struct, got %T", entry))
	}

	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !isScalar(field.Type.Kind()) {
			panic(fmt.Sprintf(
				"tracing: field %s of %T is not a scalar", field.Name, entry))
		}
		names = append(names, field.Name)
	}

	return names
}

func isScalar(kind reflect.Kind) bool {
	switch kind {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	default:
		return false
	}
}
