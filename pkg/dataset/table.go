package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudflare/ahocorasick"
	gzip "github.com/klauspost/pgzip"
	"github.com/xuri/excelize/v2"
)

// SymbolColumn is the header of the gene symbol column.
const SymbolColumn = "symbol"

const maxCapacity = 4 * 1024 * 1024

// Table is an expression table as read from disk: one header row and string
// cells. Every row is padded to the header width.
type Table struct {
	Header []string
	Rows   [][]string
}

// NewTable takes the first record as header.
func NewTable(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset: empty table")
	}
	var t = &Table{Header: append([]string(nil), records[0]...)}
	for _, record := range records[1:] {
		var row = make([]string, len(t.Header))
		copy(row, record)
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// LoadTable reads path by extension: .xlsx takes the first sheet, .gz is
// gzip-compressed tab-separated text, anything else plain tab-separated text.
func LoadTable(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return loadXlsx(path)
	case ".gz":
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("dataset: %s: %w", path, err)
		}
		defer gzReader.Close()
		return ReadTable(gzReader)
	default:
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return ReadTable(file)
	}
}

// ReadTable parses tab-separated text. Blank lines are skipped.
func ReadTable(r io.Reader) (*Table, error) {
	var (
		scanner = bufio.NewScanner(r)
		records [][]string
	)
	scanner.Buffer(make([]byte, 64*1024), maxCapacity)
	for scanner.Scan() {
		var line = strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		records = append(records, strings.Split(line, "\t"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewTable(records)
}

func loadXlsx(path string) (*Table, error) {
	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer xlsx.Close()
	var sheets = xlsx.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("dataset: %s has no sheet", path)
	}
	rows, err := xlsx.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return NewTable(rows)
}

// Column returns the index of the header name, case-insensitive, or -1.
func (t *Table) Column(name string) int {
	for i, h := range t.Header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// Symbols lists the symbol column.
func (t *Table) Symbols() []string {
	var (
		col     = t.Column(SymbolColumn)
		symbols = make([]string, len(t.Rows))
	)
	if col < 0 {
		return symbols
	}
	for i, row := range t.Rows {
		symbols[i] = row[col]
	}
	return symbols
}

func (t *Table) subset(rows [][]string) *Table {
	return &Table{Header: t.Header, Rows: rows}
}

// Query keeps the rows whose symbol equals one of symbols, ignoring case, in
// the order the symbols are given. Unknown symbols are dropped; a symbol
// present on several rows keeps all of them.
func (t *Table) Query(symbols ...string) *Table {
	var (
		bySymbol = make(map[string][]int)
		rows     [][]string
	)
	for i, symbol := range t.Symbols() {
		var key = strings.ToLower(symbol)
		bySymbol[key] = append(bySymbol[key], i)
	}
	var seen = make(map[string]bool)
	for _, symbol := range symbols {
		var key = strings.ToLower(strings.TrimSpace(symbol))
		if seen[key] {
			continue
		}
		seen[key] = true
		for _, i := range bySymbol[key] {
			rows = append(rows, t.Rows[i])
		}
	}
	return t.subset(rows)
}

// Search keeps the rows whose symbol contains any of patterns, ignoring case,
// in table order.
func (t *Table) Search(patterns ...string) *Table {
	var dictionary []string
	for _, p := range patterns {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			dictionary = append(dictionary, p)
		}
	}
	if len(dictionary) == 0 {
		return t.subset(nil)
	}
	var (
		matcher = ahocorasick.NewStringMatcher(dictionary)
		rows    [][]string
	)
	for i, symbol := range t.Symbols() {
		if len(matcher.Match([]byte(strings.ToLower(symbol)))) > 0 {
			rows = append(rows, t.Rows[i])
		}
	}
	return t.subset(rows)
}
