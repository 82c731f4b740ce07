// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// openAlexResponse captures the fields we need from an OpenAlex work record.
type openAlexResponse struct {
	BestOALocation *openAlexLocation `json:"best_oa_location"`
}

// openAlexLocation represents an open-access location in the OpenAlex response.
type openAlexLocation struct {
	PDFURL     string `json:"pdf_url"`
	LandingURL string `json:"landing_page_url"`
}

// OAVersion queries OpenAlex for a DOI and returns the URL of an
// open-access copy of the work, preferring a direct PDF over the landing
// page. It returns ErrNotFound when OpenAlex does not know the DOI and an
// empty string (no error) when it knows the work but has no open-access
// location for it.
func (r *Registry) OAVersion(ctx context.Context, doi string) (string, error) {
	apiURL := openAlexWorksBase + doiBase + doi
	if r.cfg.Mailto != "" {
		apiURL += "?mailto=" + url.QueryEscape(r.cfg.Mailto)
	}

	resp, err := r.client.Get(ctx, apiURL, "")
	if err != nil {
		return "", fmt.Errorf("OpenAlex request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, "OpenAlex"); err != nil {
		return "", err
	}

	var oa openAlexResponse
	if err := json.NewDecoder(resp.Body).Decode(&oa); err != nil {
		return "", fmt.Errorf("parsing OpenAlex response: %w", err)
	}

	if oa.BestOALocation == nil {
		return "", nil
	}
	if oa.BestOALocation.PDFURL != "" {
		return oa.BestOALocation.PDFURL, nil
	}
	return oa.BestOALocation.LandingURL, nil
}
