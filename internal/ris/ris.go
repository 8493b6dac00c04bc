// Package ris parses RIS (Research Information Systems) citation export files.
package ris

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// EndOfRecordTag terminates a record in a RIS file.
const EndOfRecordTag = "ER"

// tagLineRe matches a tagged field line: two-character tag, "  - ", value.
// The trailing space after the dash is optional so bare "ER  -" lines match.
var tagLineRe = regexp.MustCompile(`^([A-Z][A-Z0-9])  - ?(.*)$`)

// Field is a single tagged value within a record.
type Field struct {
	Tag   string
	Value string
}

// Record is an ordered list of tagged fields between end-of-record markers.
type Record struct {
	Fields []Field
}

// Get returns the trimmed value of the first field matching any of the
// given tags, in tag-priority order. Returns "" if none match.
func (r Record) Get(tags ...string) string {
	for _, tag := range tags {
		for _, f := range r.Fields {
			if f.Tag == tag {
				return strings.TrimSpace(f.Value)
			}
		}
	}
	return ""
}

// Citation is the structured form of one RIS record.
type Citation struct {
	Title    string `json:"title"`
	DOI      string `json:"doi"`
	Database string `json:"database"`
	Journal  string `json:"journal"`
}

// Tag priority chains for field extraction. First match wins.
var (
	titleTags    = []string{"TI", "T1"}
	doiTags      = []string{"DO"}
	databaseTags = []string{"DP", "DB"}
	journalTags  = []string{"T2"}
)

// Extract pulls the citation fields out of one record.
func Extract(rec Record) Citation {
	return Citation{
		Title:    rec.Get(titleTags...),
		DOI:      rec.Get(doiTags...),
		Database: rec.Get(databaseTags...),
		Journal:  rec.Get(journalTags...),
	}
}

// Split scans the file text line by line and groups tagged fields into
// records. An ER line closes the current record; end of input closes any
// open record. Lines that don't match the tag shape are continuations of
// the most recent field, appended with a separating space. Lines before
// the first tag of a record are discarded. Malformed or empty input
// yields an empty slice, never an error.
func Split(text string) []Record {
	var records []Record
	var cur Record

	scanner := bufio.NewScanner(strings.NewReader(text))
	buf := make([]byte, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if m := tagLineRe.FindStringSubmatch(line); m != nil {
			tag, value := m[1], m[2]
			if tag == EndOfRecordTag {
				if len(cur.Fields) > 0 {
					records = append(records, cur)
					cur = Record{}
				}
				continue
			}
			cur.Fields = append(cur.Fields, Field{Tag: tag, Value: value})
			continue
		}

		// Continuation line: fold into the most recent field.
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if n := len(cur.Fields); n > 0 {
			cur.Fields[n-1].Value += " " + trimmed
		}
	}

	// Unterminated final record: treat end of input as an implicit ER.
	if len(cur.Fields) > 0 {
		records = append(records, cur)
	}

	return records
}

// Parse decodes the raw bytes and runs the split and extract stages.
func Parse(data []byte) []Citation {
	records := Split(decode(data))
	citations := make([]Citation, 0, len(records))
	for _, rec := range records {
		citations = append(citations, Extract(rec))
	}
	return citations
}

// ParseFile reads and parses a RIS file from disk.
func ParseFile(path string) ([]Citation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data), nil
}

// decode converts raw bytes to a string, replacing invalid UTF-8
// sequences with the replacement character. Decoding never fails.
func decode(data []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(out)
}
