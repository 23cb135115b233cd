package shortener

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/vfaronov/httpheader"

	"github.com/arshubham/srtnr/internal/provider"
)

// Public API endpoints
const (
	GooGlEndpoint = "https://www.googleapis.com/urlshortener/v1/url"
	BitLyEndpoint = "https://api-ssl.bitly.com/v3/shorten"
	IsGdEndpoint  = "https://is.gd/create.php"
	BamBzEndpoint = "https://bam.bz/api/short"
	TnyImEndpoint = "https://tny.im/yourls-api.php"
	HmmRsEndpoint = "https://hmm.rs/x"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

type requestBuilder func(ctx context.Context, endpoint, longURL string, auth provider.Auth) (*http.Request, error)

type responseParser func(resp *http.Response, body []byte) (string, error)

// endpoint describes how one provider is called. With keepRedirect set the
// client stops at a 3xx reply and hands it to parse instead of following it.
type endpoint struct {
	URL          string
	build        requestBuilder
	parse        responseParser
	keepRedirect bool
}

func defaultEndpoints() map[provider.ID]endpoint {
	return map[provider.ID]endpoint{
		provider.GooGl: {URL: GooGlEndpoint, build: buildGooGl, parse: parseGooGl},
		provider.BitLy: {URL: BitLyEndpoint, build: buildBitLy, parse: parsePlainText},
		provider.IsGd:  {URL: IsGdEndpoint, build: buildIsGd, parse: parsePlainText},
		provider.BamBz: {URL: BamBzEndpoint, build: buildBamBz, parse: parseBamBz},
		provider.TnyIm: {URL: TnyImEndpoint, build: buildTnyIm, parse: parsePlainText},
		provider.HmmRs: {URL: HmmRsEndpoint, build: buildHmmRs, parse: parseHmmRs, keepRedirect: true},
	}
}

func withQuery(endpoint string, params url.Values) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func getRequest(ctx context.Context, endpoint string, params url.Values) (*http.Request, error) {
	target, err := withQuery(endpoint, params)
	if err != nil {
		return nil, err
	}
	return http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
}

func jsonRequest(ctx context.Context, target string, payload any) (*http.Request, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	return req, nil
}

func buildGooGl(ctx context.Context, endpoint, longURL string, auth provider.Auth) (*http.Request, error) {
	target, err := withQuery(endpoint, url.Values{"key": {auth.Value}})
	if err != nil {
		return nil, err
	}
	return jsonRequest(ctx, target, map[string]string{"longUrl": longURL})
}

func buildBitLy(ctx context.Context, endpoint, longURL string, auth provider.Auth) (*http.Request, error) {
	return getRequest(ctx, endpoint, url.Values{
		"access_token": {auth.Value},
		"longUrl":      {longURL},
		"format":       {"txt"},
	})
}

func buildIsGd(ctx context.Context, endpoint, longURL string, _ provider.Auth) (*http.Request, error) {
	return getRequest(ctx, endpoint, url.Values{
		"format": {"simple"},
		"url":    {longURL},
	})
}

func buildBamBz(ctx context.Context, endpoint, longURL string, _ provider.Auth) (*http.Request, error) {
	form := url.Values{"target": {longURL}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentTypeForm)
	return req, nil
}

func buildTnyIm(ctx context.Context, endpoint, longURL string, _ provider.Auth) (*http.Request, error) {
	return getRequest(ctx, endpoint, url.Values{
		"action": {"shorturl"},
		"format": {"simple"},
		"url":    {longURL},
	})
}

func buildHmmRs(ctx context.Context, endpoint, longURL string, _ provider.Auth) (*http.Request, error) {
	return jsonRequest(ctx, endpoint, map[string]string{"url": longURL})
}

func parsePlainText(_ *http.Response, body []byte) (string, error) {
	short := strings.TrimSpace(string(body))
	if short == "" {
		return "", ErrEmptyResponse
	}
	return short, nil
}

// decodeJSON rejects bodies explicitly labelled as something other than JSON
func decodeJSON(resp *http.Response, body []byte, v any) error {
	if mtype, _ := httpheader.ContentType(resp.Header); mtype != "" &&
		mtype != contentTypeJSON && !strings.HasSuffix(mtype, "+json") {
		return fmt.Errorf("%w: content type %s", ErrMalformedResponse, mtype)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return ErrEmptyResponse
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

type gooGlResponse struct {
	ID    string `json:"id"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func parseGooGl(resp *http.Response, body []byte) (string, error) {
	var out gooGlResponse
	if err := decodeJSON(resp, body, &out); err != nil {
		return "", err
	}
	if out.Error != nil && out.Error.Message != "" {
		return "", fmt.Errorf("%w: %s", ErrMalformedResponse, out.Error.Message)
	}
	if out.ID == "" {
		return "", fmt.Errorf("%w: no id field", ErrMalformedResponse)
	}
	return out.ID, nil
}

type bamBzResponse struct {
	Content struct {
		Shortened string `json:"shortened"`
	} `json:"content"`
}

func parseBamBz(resp *http.Response, body []byte) (string, error) {
	var out bamBzResponse
	if err := decodeJSON(resp, body, &out); err != nil {
		return "", err
	}
	if out.Content.Shortened == "" {
		return "", fmt.Errorf("%w: no shortened field", ErrMalformedResponse)
	}
	return out.Content.Shortened, nil
}

// parseHmmRs reads the short link from the Location header, which may be
// relative to the service root.
func parseHmmRs(resp *http.Response, _ []byte) (string, error) {
	location := strings.TrimSpace(resp.Header.Get("Location"))
	if location == "" {
		return "", fmt.Errorf("%w: no location header", ErrMalformedResponse)
	}
	ref, err := url.Parse(location)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if resp.Request == nil || resp.Request.URL == nil {
		return ref.String(), nil
	}
	return resp.Request.URL.ResolveReference(ref).String(), nil
}
