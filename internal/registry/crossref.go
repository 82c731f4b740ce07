// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/bibmeta/pkg/types"
)

// CrossRef API JSON structures.
type crossrefResponse struct {
	Message crossrefWork `json:"message"`
}

type crossrefWork struct {
	Title          []string         `json:"title"`
	ContainerTitle []string         `json:"container-title"`
	Author         []crossrefAuthor `json:"author"`
	Publisher      string           `json:"publisher"`
	Issued         crossrefDate     `json:"issued"`
}

type crossrefAuthor struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

type crossrefDate struct {
	DateParts [][]int `json:"date-parts"`
}

func (r *Registry) crossrefURL(base, id string) string {
	u := base + url.PathEscape(id)
	if r.cfg.Mailto != "" {
		u += "?mailto=" + url.QueryEscape(r.cfg.Mailto)
	}
	return u
}

func (r *Registry) confirmDOI(ctx context.Context, doi string) error {
	resp, err := r.client.Get(ctx, r.crossrefURL(crossrefWorksBase, doi), "")
	if err != nil {
		return fmt.Errorf("CrossRef request: %w", err)
	}
	defer resp.Body.Close()
	return checkStatus(resp, "CrossRef")
}

// confirmISSN checks the ISSN against the CrossRef journals endpoint,
// which expects the hyphenated print form.
func (r *Registry) confirmISSN(ctx context.Context, issn string) error {
	resp, err := r.client.Get(ctx, r.crossrefURL(crossrefJournalsBase, hyphenateISSN(issn)), "")
	if err != nil {
		return fmt.Errorf("CrossRef request: %w", err)
	}
	defer resp.Body.Close()
	return checkStatus(resp, "CrossRef")
}

// doiMetadata fetches a bibliographic record for the DOI from CrossRef.
func (r *Registry) doiMetadata(ctx context.Context, doi string) (types.Reference, error) {
	resp, err := r.client.Get(ctx, r.crossrefURL(crossrefWorksBase, doi), "")
	if err != nil {
		return types.Reference{}, fmt.Errorf("CrossRef request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, "CrossRef"); err != nil {
		return types.Reference{}, err
	}

	var cr crossrefResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return types.Reference{}, fmt.Errorf("parsing CrossRef response: %w", err)
	}

	ref := types.Reference{
		Identifiers: []types.Identifier{{Kind: types.KindDOI, Raw: doi, Canonical: doi}},
	}
	if len(cr.Message.Title) > 0 {
		ref.Title = cr.Message.Title[0]
	}
	if len(cr.Message.ContainerTitle) > 0 {
		ref.Venue = cr.Message.ContainerTitle[0]
	}
	for _, a := range cr.Message.Author {
		ref.Authors = append(ref.Authors, strings.TrimSpace(a.Given+" "+a.Family))
	}
	if len(cr.Message.Issued.DateParts) > 0 && len(cr.Message.Issued.DateParts[0]) >= 1 {
		ref.Year = strconv.Itoa(cr.Message.Issued.DateParts[0][0])
	}
	return ref, nil
}

// hyphenateISSN restores the printed NNNN-NNNC form from a canonical ISSN.
func hyphenateISSN(issn string) string {
	if len(issn) == 8 && !strings.Contains(issn, "-") {
		return issn[:4] + "-" + issn[4:]
	}
	return issn
}
