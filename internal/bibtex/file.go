// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibtex

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

var (
	// entryStartRe matches "@type{key," at the start of an entry.
	entryStartRe = regexp.MustCompile(`^\s*@(\w+)\s*\{\s*([^,\s]+)\s*,`)

	// fieldRe matches simple one-line fields: name = {value} or "value".
	fieldRe = regexp.MustCompile(`^\s*(\w+)\s*=\s*[{"](.*?)[}"],?\s*$`)
)

// Parse reads BibTeX entries from r. Lines that fit neither an entry head
// nor a simple field are skipped; a malformed file yields partial entries,
// never an error.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	var current *Entry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if m := entryStartRe.FindStringSubmatch(line); m != nil {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &Entry{
				Type:   strings.ToLower(m[1]),
				Key:    m[2],
				Fields: map[string]string{},
			}
			continue
		}
		if current == nil {
			continue
		}
		if m := fieldRe.FindStringSubmatch(line); m != nil {
			current.Fields[strings.ToLower(m[1])] = m[2]
		}
	}
	if current != nil {
		entries = append(entries, *current)
	}
	return entries, scanner.Err()
}

// ParseFile reads BibTeX entries from path. A missing file yields an empty
// list, mirroring an empty bibliography.
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// WriteFile writes the entries to path, replacing any existing file.
func WriteFile(path string, entries []Entry) error {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.String())
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// AppendFile appends the entries to the BibTeX file at path, creating it
// when missing.
func AppendFile(path string, entries []Entry) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, e := range entries {
		if _, err := f.WriteString("\n" + e.String()); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the entry with the given citation key from path, or false
// when the file has no such entry.
func Get(path, key string) (Entry, bool, error) {
	entries, err := ParseFile(path)
	if err != nil {
		return Entry{}, false, err
	}
	for _, e := range entries {
		if e.Key == key {
			return e, true, nil
		}
	}
	return Entry{}, false, nil
}

// Replace swaps the entry with the given key in path for the provided one
// and rewrites the file. It fails when the key is absent.
func Replace(path, key string, entry Entry) error {
	entries, err := ParseFile(path)
	if err != nil {
		return err
	}
	for i, e := range entries {
		if e.Key == key {
			entries[i] = entry
			return WriteFile(path, entries)
		}
	}
	return fmt.Errorf("no entry %q in %s", key, path)
}

// Edit updates individual fields of the entry with the given key in path.
// Fields present in the file but absent from updates are kept.
func Edit(path, key string, updates map[string]string) error {
	entries, err := ParseFile(path)
	if err != nil {
		return err
	}
	for i, e := range entries {
		if e.Key != key {
			continue
		}
		for name, value := range updates {
			entries[i].Fields[strings.ToLower(name)] = value
		}
		return WriteFile(path, entries)
	}
	return fmt.Errorf("no entry %q in %s", key, path)
}

// Delete removes the entry with the given key from path and rewrites the
// file. Deleting an absent key is not an error.
func Delete(path, key string) error {
	entries, err := ParseFile(path)
	if err != nil {
		return err
	}
	kept := entries[:0]
	for _, e := range entries {
		if e.Key != key {
			kept = append(kept, e)
		}
	}
	return WriteFile(path, kept)
}
