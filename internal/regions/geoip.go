package regions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
	"time"

	"github.com/mozilla/zamboni-sub003/internal/config"

	httpclient "github.com/appleboy/go-httpclient"
	"github.com/oschwald/geoip2-golang"
	"go.uber.org/zap"
)

// ErrLookupFailed wraps GeoIP backend failures.
var ErrLookupFailed = errors.New("geoip lookup failed")

// GeoIP resolves an address to a region string understood by Parse. On
// failure implementations still return their default value alongside the
// error.
type GeoIP interface {
	Lookup(ctx context.Context, ip string) (string, error)
}

// routable reports whether ip is worth looking up.
func routable(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	return !(addr.IsPrivate() || addr.IsLoopback() || addr.IsLinkLocalUnicast() || addr.IsUnspecified())
}

// StaticGeoIP always answers with its default.
type StaticGeoIP struct {
	Default string
}

func (g StaticGeoIP) Lookup(context.Context, string) (string, error) {
	return g.Default, nil
}

// HTTPGeoIP queries a geodude style service: POST {url}/country.json with
// an ip form field, answered by {"country_code": "US"}.
type HTTPGeoIP struct {
	url          string
	defaultValue string
	client       *http.Client
}

func NewHTTPGeoIP(baseURL, defaultValue string, timeout time.Duration) (*HTTPGeoIP, error) {
	client, err := httpclient.NewClient(httpclient.WithTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to create geoip client: %w", err)
	}
	return &HTTPGeoIP{
		url:          strings.TrimRight(baseURL, "/"),
		defaultValue: strings.ToLower(defaultValue),
		client:       client,
	}, nil
}

func (g *HTTPGeoIP) Lookup(ctx context.Context, ip string) (string, error) {
	if !routable(ip) {
		return g.defaultValue, nil
	}

	form := url.Values{"ip": {ip}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url+"/country.json",
		strings.NewReader(form.Encode()))
	if err != nil {
		return g.defaultValue, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return g.defaultValue, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return g.defaultValue, fmt.Errorf("%w: HTTP %d", ErrLookupFailed, resp.StatusCode)
	}

	var body struct {
		CountryCode string `json:"country_code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return g.defaultValue, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	if body.CountryCode == "" {
		return g.defaultValue, nil
	}
	return strings.ToLower(body.CountryCode), nil
}

// MMDBGeoIP reads a MaxMind country database.
type MMDBGeoIP struct {
	reader       *geoip2.Reader
	defaultValue string
}

func OpenMMDBGeoIP(path, defaultValue string) (*MMDBGeoIP, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open geoip database: %w", err)
	}
	return &MMDBGeoIP{reader: reader, defaultValue: strings.ToLower(defaultValue)}, nil
}

func (g *MMDBGeoIP) Lookup(_ context.Context, ip string) (string, error) {
	if !routable(ip) {
		return g.defaultValue, nil
	}
	record, err := g.reader.Country(net.ParseIP(ip))
	if err != nil {
		return g.defaultValue, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	if record.Country.IsoCode == "" {
		return g.defaultValue, nil
	}
	return strings.ToLower(record.Country.IsoCode), nil
}

func (g *MMDBGeoIP) Close() error {
	return g.reader.Close()
}

// NewGeoIP picks the backend from configuration: a lookup service when
// GEOIP_URL is set, else a local database when GEOIP_DB_PATH is set, else
// the static default.
func NewGeoIP(cfg *config.Config, log *zap.Logger) (GeoIP, error) {
	switch {
	case cfg.GeoIPURL != "":
		log.Info("using geoip service", zap.String("url", cfg.GeoIPURL))
		return NewHTTPGeoIP(cfg.GeoIPURL, cfg.GeoIPDefaultVal, cfg.GeoIPTimeout)
	case cfg.GeoIPDBPath != "":
		log.Info("using geoip database", zap.String("path", cfg.GeoIPDBPath))
		return OpenMMDBGeoIP(cfg.GeoIPDBPath, cfg.GeoIPDefaultVal)
	default:
		return StaticGeoIP{Default: strings.ToLower(cfg.GeoIPDefaultVal)}, nil
	}
}
