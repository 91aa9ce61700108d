// Package organiser scrapes the password-protected organiser page that
// lists the weekly activity sessions.
package organiser

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"sessionwatch/lib/telemetry"
	"strings"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

var ErrLoginFailed = fmt.Errorf("Failed to unlock the organiser page, the page password may be incorrect.")

type Client struct {
	pageUrl  *url.URL
	loginUrl string
	password string
	http     *resty.Client
}

type ClientOptions struct {
	// PageUrl is the protected page listing the sessions.
	PageUrl string
	// LoginUrl overrides the derived wp-login.php postpass endpoint.
	LoginUrl string
	Password string
}

func NewClient(opts ClientOptions) (*Client, error) {
	pageUrl, err := url.Parse(opts.PageUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(pageUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "sessionwatch.lib.scrapers.organiser.http")

	loginUrl := opts.LoginUrl
	if loginUrl == "" {
		loginUrl = deriveLoginUrl(pageUrl)
	}

	c := &Client{
		pageUrl:  pageUrl,
		loginUrl: loginUrl,
		password: opts.Password,
		http:     client,
	}
	return c, nil
}

// wordpress keeps wp-login.php next to the install root, which is the site
// root unless the blog lives under a subdirectory (the organiser site uses
// "/w/").
func deriveLoginUrl(pageUrl *url.URL) string {
	path := "/wp-login.php"
	if idx := strings.Index(pageUrl.Path, "/w/"); idx >= 0 {
		path = pageUrl.Path[:idx] + "/w/wp-login.php"
	}

	login := *pageUrl
	login.Path = path
	login.RawQuery = "action=postpass"
	login.Fragment = ""
	return login.String()
}

// FetchPage performs the post-password handshake and returns the full page
// markup. The handshake is repeated every call, no session state is reused
// across runs.
func (c *Client) FetchPage(ctx context.Context) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "client:FetchPage")
	defer span.End()

	_, err := c.http.R().
		SetContext(ctx).
		SetHeader("referer", c.pageUrl.String()).
		SetFormData(map[string]string{
			"post_password": c.password,
			"Submit":        "Enter",
		}).
		Post(c.loginUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to submit page password")
		return nil, err
	}

	res, err := c.http.R().
		SetContext(ctx).
		Get(c.pageUrl.String())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch organiser page")
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse organiser page html")
		return nil, err
	}
	// the password form coming back means the cookie was rejected
	if doc.Find("form.post-password-form").Length() > 0 {
		span.SetStatus(codes.Error, "still behind the password form")
		return nil, ErrLoginFailed
	}

	return res.Body(), nil
}
