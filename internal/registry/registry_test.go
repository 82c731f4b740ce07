// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pdiddy/bibmeta/pkg/types"
)

func TestConfirmDOI(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"registered", http.StatusOK, nil},
		{"unknown", http.StatusNotFound, ErrNotFound},
		{"gone", http.StatusGone, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.WriteHeader(tt.status)
				fmt.Fprint(w, `{"message":{}}`)
			}))
			defer ts.Close()
			old := crossrefWorksBase
			crossrefWorksBase = ts.URL + "/works/"
			defer func() { crossrefWorksBase = old }()

			r := NewWithHTTPClient(types.LookupConfig{}, ts.Client())
			err := r.Confirm(context.Background(), types.KindDOI, "10.1000/182")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Confirm error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && !strings.Contains(gotPath, "10.1000") {
				t.Errorf("request path = %q, want the DOI in it", gotPath)
			}
		})
	}
}

func TestConfirmDOIServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()
	old := crossrefWorksBase
	crossrefWorksBase = ts.URL + "/works/"
	defer func() { crossrefWorksBase = old }()

	r := NewWithHTTPClient(types.LookupConfig{}, ts.Client())
	err := r.Confirm(context.Background(), types.KindDOI, "10.1000/182")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Confirm error = %v, want a transport error distinct from ErrNotFound", err)
	}
}

func TestConfirmISSNHyphenates(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()
	old := crossrefJournalsBase
	crossrefJournalsBase = ts.URL + "/journals/"
	defer func() { crossrefJournalsBase = old }()

	r := NewWithHTTPClient(types.LookupConfig{}, ts.Client())
	if err := r.Confirm(context.Background(), types.KindISSN, "03785955"); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if !strings.HasSuffix(gotPath, "/journals/0378-5955") {
		t.Errorf("request path = %q, want the hyphenated print form", gotPath)
	}
}

func TestConfirmUnknownKind(t *testing.T) {
	r := New(types.LookupConfig{})
	if err := r.Confirm(context.Background(), types.Kind("patent"), "US7654321"); err == nil {
		t.Error("Confirm accepted an unknown kind")
	}
}

func TestCrossrefURLMailto(t *testing.T) {
	r := New(types.LookupConfig{Mailto: "ops@example.org"})
	got := r.crossrefURL("https://api.crossref.org/works/", "10.1000/182")
	if !strings.Contains(got, "mailto=ops%40example.org") {
		t.Errorf("crossrefURL = %q, want the mailto query parameter", got)
	}

	bare := New(types.LookupConfig{})
	if got := bare.crossrefURL("https://api.crossref.org/works/", "10.1000/182"); strings.Contains(got, "mailto") {
		t.Errorf("crossrefURL = %q, want no mailto without configuration", got)
	}
}

func TestDOIMetadata(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"message":{
			"title":["Deep learning for document analysis"],
			"container-title":["Pattern Recognition"],
			"author":[{"given":"Alice","family":"Smith"},{"given":"Bob","family":"Jones"}],
			"issued":{"date-parts":[[2015,3]]}
		}}`)
	}))
	defer ts.Close()
	old := crossrefWorksBase
	crossrefWorksBase = ts.URL + "/works/"
	defer func() { crossrefWorksBase = old }()

	r := NewWithHTTPClient(types.LookupConfig{}, ts.Client())
	ref, err := r.Metadata(context.Background(), types.Identifier{
		Kind: types.KindDOI, Canonical: "10.1007/s10032-015-0249-8",
	})
	if err != nil {
		t.Fatalf("Metadata: %v", err)
	}
	if ref.Title != "Deep learning for document analysis" {
		t.Errorf("Title = %q", ref.Title)
	}
	if ref.Venue != "Pattern Recognition" {
		t.Errorf("Venue = %q", ref.Venue)
	}
	if ref.Year != "2015" {
		t.Errorf("Year = %q", ref.Year)
	}
	if len(ref.Authors) != 2 || ref.Authors[0] != "Alice Smith" {
		t.Errorf("Authors = %v", ref.Authors)
	}
	if ref.DOI() != "10.1007/s10032-015-0249-8" {
		t.Errorf("DOI() = %q, want the queried DOI attached", ref.DOI())
	}
}

func TestISBNMetadata(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{
			"title":"The Computer and the Brain",
			"publish_date":"New Haven, 1958",
			"publishers":["Yale University Press"],
			"by_statement":"John von Neumann"
		}`)
	}))
	defer ts.Close()
	old := openLibraryBase
	openLibraryBase = ts.URL + "/isbn/"
	defer func() { openLibraryBase = old }()

	r := NewWithHTTPClient(types.LookupConfig{}, ts.Client())
	ref, err := r.Metadata(context.Background(), types.Identifier{
		Kind: types.KindISBN, Canonical: "9780300024159",
	})
	if err != nil {
		t.Fatalf("Metadata: %v", err)
	}
	if !strings.HasSuffix(gotPath, "/isbn/9780300024159.json") {
		t.Errorf("request path = %q", gotPath)
	}
	if ref.Title != "The Computer and the Brain" {
		t.Errorf("Title = %q", ref.Title)
	}
	if ref.Venue != "Yale University Press" {
		t.Errorf("Venue = %q", ref.Venue)
	}
	if ref.Year != "1958" {
		t.Errorf("Year = %q, want extracted from the publish date", ref.Year)
	}
	if len(ref.Authors) != 1 || ref.Authors[0] != "John von Neumann" {
		t.Errorf("Authors = %v", ref.Authors)
	}
}

func TestConfirmISBNNotFound(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()
	old := openLibraryBase
	openLibraryBase = ts.URL + "/isbn/"
	defer func() { openLibraryBase = old }()

	r := NewWithHTTPClient(types.LookupConfig{}, ts.Client())
	err := r.Confirm(context.Background(), types.KindISBN, "9780306406157")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Confirm error = %v, want ErrNotFound", err)
	}
}

func TestMetadataUnknownKind(t *testing.T) {
	r := New(types.LookupConfig{})
	_, err := r.Metadata(context.Background(), types.Identifier{Kind: types.KindISSN, Canonical: "03785955"})
	if err == nil {
		t.Error("Metadata produced a record for a kind without a metadata source")
	}
}

func TestHyphenateISSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"03785955", "0378-5955"},
		{"0378-5955", "0378-5955"},
		{"2434561X", "2434-561X"},
		{"short", "short"},
	}
	for _, tt := range tests {
		if got := hyphenateISSN(tt.in); got != tt.want {
			t.Errorf("hyphenateISSN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
