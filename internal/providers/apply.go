package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const (
	loginFormID      = "Account_Form_LoginFrontend"
	submitOnlyFormID = "Portal_Form_SubmitOnly"
)

// Login authenticates the portal session used for applying. Must be called
// after a successful Listings call within the same provider (the session
// cookies come from the warm-up request).
func (p *KlikvoorkamersProvider) Login(ctx context.Context) error {
	hash, err := p.formHash(ctx, p.accountURL("getloginconfiguration"), "loginForm")
	if err != nil {
		return fmt.Errorf("get login configuration: %w", err)
	}

	form := url.Values{
		"__id__":   {loginFormID},
		"__hash__": {hash},
		"username": {p.creds.Username},
		"password": {p.creds.Password},
	}
	body, err := p.do(ctx, http.MethodPost, p.accountURL("loginbyservice"), p.listingsURL, form)
	if err != nil {
		return fmt.Errorf("post login form: %w", err)
	}

	var res struct {
		LoggedIn bool `json:"loggedIn"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return fmt.Errorf("%w: decode login response: %w", ErrSchemaChanged, err)
	}
	if !res.LoggedIn {
		return ErrLoginRejected
	}

	return nil
}

// Apply submits a reaction to the listing. Requires a logged-in session.
func (p *KlikvoorkamersProvider) Apply(ctx context.Context, listingID string) error {
	body, err := p.do(ctx, http.MethodPost, p.objectURL("getobject"), p.listingsURL, url.Values{"id": {listingID}})
	if err != nil {
		return fmt.Errorf("get listing details for id=%s: %w", listingID, err)
	}

	var details struct {
		Result struct {
			ReactionData struct {
				Action string `json:"action"`
				URL    string `json:"url"`
			} `json:"reactionData"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &details); err != nil {
		return fmt.Errorf("%w: decode listing details for id=%s: %w", ErrSchemaChanged, listingID, err)
	}

	reaction := details.Result.ReactionData
	if reaction.Action != "add" {
		return fmt.Errorf("%w: id=%s action=%q", ErrAlreadyApplied, listingID, reaction.Action)
	}

	reactionURL, err := url.Parse(reaction.URL)
	if err != nil {
		return fmt.Errorf("%w: parse reaction url for id=%s: %w", ErrSchemaChanged, listingID, err)
	}
	query := reactionURL.Query()
	dwellingID := query.Get("dwellingID")
	addID := query.Get("add")
	if dwellingID == "" || addID == "" {
		return fmt.Errorf("%w: reaction url for id=%s misses dwellingID/add", ErrSchemaChanged, listingID)
	}

	hash, err := p.formHash(ctx, p.coreURL("getformsubmitonlyconfiguration"), "form")
	if err != nil {
		return fmt.Errorf("get reaction configuration: %w", err)
	}

	form := url.Values{
		"__id__":     {submitOnlyFormID},
		"__hash__":   {hash},
		"dwellingID": {dwellingID},
		"add":        {addID},
	}
	body, err = p.do(ctx, http.MethodPost, p.objectURL("react"), p.listingsURL, form)
	if err != nil {
		return fmt.Errorf("post reaction for id=%s: %w", listingID, err)
	}

	var res struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return fmt.Errorf("%w: decode reaction response for id=%s: %w", ErrSchemaChanged, listingID, err)
	}
	if !res.Success {
		return fmt.Errorf("apply for id=%s: portal reported failure", listingID)
	}

	return nil
}

// formHash fetches a portal form configuration and extracts the one-time
// __hash__ value under the given top-level key ("loginForm" or "form").
func (p *KlikvoorkamersProvider) formHash(ctx context.Context, configURL, formKey string) (string, error) {
	body, err := p.do(ctx, http.MethodGet, configURL, p.listingsURL, nil)
	if err != nil {
		return "", err
	}

	var res map[string]struct {
		Elements map[string]struct {
			InitialData string `json:"initialData"`
		} `json:"elements"`
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&res); err != nil {
		return "", fmt.Errorf("%w: decode form configuration: %w", ErrSchemaChanged, err)
	}

	hash := res[formKey].Elements["__hash__"].InitialData
	if hash == "" {
		return "", fmt.Errorf("%w: form configuration misses __hash__", ErrSchemaChanged)
	}

	return hash, nil
}
