// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"

	"github.com/pdiddy/bibmeta/pkg/types"
)

// Open Library book record, reduced to the fields used here.
type openLibraryBook struct {
	Title       string   `json:"title"`
	PublishDate string   `json:"publish_date"`
	Publishers  []string `json:"publishers"`
	ByStatement string   `json:"by_statement"`
}

func (r *Registry) confirmISBN(ctx context.Context, isbn string) error {
	resp, err := r.client.Get(ctx, openLibraryBase+url.PathEscape(isbn)+".json", "")
	if err != nil {
		return fmt.Errorf("Open Library request: %w", err)
	}
	defer resp.Body.Close()
	return checkStatus(resp, "Open Library")
}

var yearInDateRe = regexp.MustCompile(`\b(1[5-9]\d{2}|20\d{2})\b`)

// isbnMetadata fetches a book record for the ISBN from Open Library.
func (r *Registry) isbnMetadata(ctx context.Context, isbn string) (types.Reference, error) {
	resp, err := r.client.Get(ctx, openLibraryBase+url.PathEscape(isbn)+".json", "")
	if err != nil {
		return types.Reference{}, fmt.Errorf("Open Library request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, "Open Library"); err != nil {
		return types.Reference{}, err
	}

	var book openLibraryBook
	if err := json.NewDecoder(resp.Body).Decode(&book); err != nil {
		return types.Reference{}, fmt.Errorf("parsing Open Library response: %w", err)
	}

	ref := types.Reference{
		Title: book.Title,
		Identifiers: []types.Identifier{
			{Kind: types.KindISBN, Raw: isbn, Canonical: isbn},
		},
	}
	if len(book.Publishers) > 0 {
		ref.Venue = book.Publishers[0]
	}
	if m := yearInDateRe.FindString(book.PublishDate); m != "" {
		ref.Year = m
	}
	if book.ByStatement != "" {
		ref.Authors = []string{book.ByStatement}
	}
	return ref, nil
}
