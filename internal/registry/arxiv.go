// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/bibmeta/pkg/types"
)

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID         string        `xml:"id"`
	Title      string        `xml:"title"`
	Summary    string        `xml:"summary"`
	Published  string        `xml:"published"`
	DOI        string        `xml:"doi"`
	Authors    []arxivAuthor `xml:"author"`
	JournalRef string        `xml:"journal_ref"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

// arxivQuery fetches the Atom feed for a raw query string
// (e.g. "id_list=2301.07041" or "search_query=doi:10.1209/...").
func (r *Registry) arxivQuery(ctx context.Context, query string) (*arxivFeed, error) {
	resp, err := r.client.Get(ctx, arxivAPIBase+"?"+query, "")
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, "arXiv API"); err != nil {
		return nil, err
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}
	return &feed, nil
}

// arxivLookup fetches the single feed entry for an arXiv ID. The API
// answers HTTP 200 with an empty (or error) feed for unknown IDs, so
// absence is detected on the entry list, not the status code.
func (r *Registry) arxivLookup(ctx context.Context, arxivID string) (*arxivEntry, error) {
	feed, err := r.arxivQuery(ctx, "id_list="+url.QueryEscape(arxivID)+"&max_results=1")
	if err != nil {
		return nil, err
	}
	if len(feed.Entries) == 0 || !strings.Contains(feed.Entries[0].ID, "/abs/") {
		return nil, ErrNotFound
	}
	return &feed.Entries[0], nil
}

func (r *Registry) confirmArxiv(ctx context.Context, arxivID string) error {
	_, err := r.arxivLookup(ctx, arxivID)
	return err
}

// arxivMetadata fetches a bibliographic record for the arXiv ID.
func (r *Registry) arxivMetadata(ctx context.Context, arxivID string) (types.Reference, error) {
	entry, err := r.arxivLookup(ctx, arxivID)
	if err != nil {
		return types.Reference{}, err
	}

	ref := types.Reference{
		Title: strings.Join(strings.Fields(entry.Title), " "),
		Venue: strings.TrimSpace(entry.JournalRef),
		Identifiers: []types.Identifier{
			{Kind: types.KindArxiv, Raw: arxivID, Canonical: arxivID},
		},
	}
	for _, a := range entry.Authors {
		ref.Authors = append(ref.Authors, strings.TrimSpace(a.Name))
	}
	if t, parseErr := time.Parse(time.RFC3339, entry.Published); parseErr == nil {
		ref.Year = t.Format("2006")
	}
	if doi := strings.TrimSpace(entry.DOI); doi != "" {
		ref.Identifiers = append(ref.Identifiers,
			types.Identifier{Kind: types.KindDOI, Raw: doi, Canonical: doi})
	}
	return ref, nil
}

// DOIForArxiv returns the DOI registered on arXiv for the given preprint,
// or ErrNotFound when arXiv records none.
func (r *Registry) DOIForArxiv(ctx context.Context, arxivID string) (string, error) {
	entry, err := r.arxivLookup(ctx, arxivID)
	if err != nil {
		return "", err
	}
	doi := strings.TrimSpace(entry.DOI)
	if doi == "" {
		return "", ErrNotFound
	}
	return doi, nil
}

// ArxivForDOI returns the arXiv ID whose record carries the given DOI, or
// ErrNotFound when arXiv is not aware of it.
func (r *Registry) ArxivForDOI(ctx context.Context, doi string) (string, error) {
	feed, err := r.arxivQuery(ctx, "search_query="+url.QueryEscape("doi:"+doi)+"&max_results=1")
	if err != nil {
		return "", err
	}
	if len(feed.Entries) == 0 {
		return "", ErrNotFound
	}
	// The entry <id> is a full abs URL; the arXiv ID is its last component.
	idx := strings.Index(feed.Entries[0].ID, "/abs/")
	if idx < 0 {
		return "", ErrNotFound
	}
	return feed.Entries[0].ID[idx+len("/abs/"):], nil
}

// EPrintSource downloads the e-print source archive for an arXiv ID.
// The caller must close the returned reader.
func (r *Registry) EPrintSource(ctx context.Context, arxivID string) (io.ReadCloser, error) {
	resp, err := r.client.Get(ctx, arxivEPrintBase+url.PathEscape(arxivID), "")
	if err != nil {
		return nil, fmt.Errorf("arXiv e-print request: %w", err)
	}
	if err := checkStatus(resp, "arXiv e-print"); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

// BBLFiles downloads the e-print source for an arXiv ID and returns the
// contents of every .bbl member of the tarball, in archive order. The
// list is empty when the source carries no bibliography files.
func (r *Registry) BBLFiles(ctx context.Context, arxivID string) ([]string, error) {
	src, err := r.EPrintSource(ctx, arxivID)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return extractBBLMembers(src)
}

// extractBBLMembers reads a (possibly gzipped) tar stream and collects the
// contents of its .bbl members. Single-file e-prints (bare gzipped TeX)
// yield no members and no error.
func extractBBLMembers(src io.Reader) ([]string, error) {
	gz, err := gzip.NewReader(src)
	if err != nil {
		return nil, fmt.Errorf("reading e-print archive: %w", err)
	}
	defer gz.Close()

	var bbls []string
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Not a tarball: a single-file e-print has no .bbl members.
			if len(bbls) == 0 {
				return nil, nil
			}
			return bbls, nil
		}
		if hdr.Typeflag != tar.TypeReg || !strings.HasSuffix(hdr.Name, ".bbl") {
			continue
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("reading %s from e-print archive: %w", hdr.Name, err)
		}
		bbls = append(bbls, string(data))
	}
	return bbls, nil
}
