package solitude

import (
	"context"
	"net/http"
	"net/url"
)

const (
	pathGenericSeller     = "/generic/seller/"
	pathGenericProduct    = "/generic/product/"
	pathBangoPackage      = "/bango/package/"
	pathBangoBank         = "/bango/bank/"
	pathBangoProduct      = "/bango/product/"
	pathBangoSBI          = "/bango/sbi/"
	pathProviderBangoProd = "/provider/bango/product/"
	pathReferenceSellers  = "/provider/reference/sellers/"
	pathReferenceProducts = "/provider/reference/products/"
	pathReferenceTerms    = "/provider/reference/terms/"
)

func (c *Client) CreateGenericSeller(ctx context.Context, uuid string) (Object, error) {
	return c.call(ctx, "generic_seller_create", http.MethodPost, pathGenericSeller, nil,
		Object{"uuid": uuid})
}

// GetGenericProduct looks the product up by public_id. ErrNotFound when no
// product carries it.
func (c *Client) GetGenericProduct(ctx context.Context, publicID string) (Object, error) {
	return c.getObject(ctx, "generic_product_get", pathGenericProduct,
		url.Values{"public_id": {publicID}})
}

func (c *Client) CreateGenericProduct(ctx context.Context, data Object) (Object, error) {
	return c.call(ctx, "generic_product_create", http.MethodPost, pathGenericProduct, nil, data)
}

func (c *Client) CreateBangoPackage(ctx context.Context, data Object) (Object, error) {
	return c.call(ctx, "bango_package_create", http.MethodPost, pathBangoPackage, nil, data)
}

// GetBangoPackage fetches the package identified by uri. With full the
// gateway includes the Bango side of the package under "full".
func (c *Client) GetBangoPackage(ctx context.Context, uri string, full bool) (Object, error) {
	var query url.Values
	if full {
		query = url.Values{"full": {"True"}}
	}
	return c.call(ctx, "bango_package_get", http.MethodGet,
		pathBangoPackage+url.PathEscape(PK(uri))+"/", query, nil)
}

// PatchByURI sends a partial update to an arbitrary resource URI.
func (c *Client) PatchByURI(ctx context.Context, uri string, data Object) (Object, error) {
	return c.call(ctx, "patch", http.MethodPatch, uri, nil, data)
}

func (c *Client) CreateBangoBankDetails(ctx context.Context, data Object) (Object, error) {
	return c.call(ctx, "bango_bank_create", http.MethodPost, pathBangoBank, nil, data)
}

func (c *Client) GetBangoProduct(ctx context.Context, sellerProductPK string) (Object, error) {
	return c.getObject(ctx, "bango_product_get", pathBangoProduct,
		url.Values{"seller_product": {sellerProductPK}})
}

func (c *Client) CreateBangoProviderProduct(ctx context.Context, data Object) (Object, error) {
	return c.call(ctx, "bango_product_create", http.MethodPost, pathProviderBangoProd, nil, data)
}

// GetBangoSBI returns the Bango terms (SBI agreement) for a package.
func (c *Client) GetBangoSBI(ctx context.Context, packageURI string) (Object, error) {
	return c.getObject(ctx, "bango_sbi_get", pathBangoSBI,
		url.Values{"seller_bango": {packageURI}})
}

// PostBangoSBI accepts the Bango terms for a package.
func (c *Client) PostBangoSBI(ctx context.Context, packageURI string) (Object, error) {
	return c.call(ctx, "bango_sbi_accept", http.MethodPost, pathBangoSBI, nil,
		Object{"seller_bango": packageURI})
}

func (c *Client) CreateReferenceSeller(ctx context.Context, data Object) (Object, error) {
	return c.call(ctx, "reference_seller_create", http.MethodPost, pathReferenceSellers, nil, data)
}

func (c *Client) GetReferenceSeller(ctx context.Context, id string) (Object, error) {
	return c.call(ctx, "reference_seller_get", http.MethodGet,
		pathReferenceSellers+url.PathEscape(id)+"/", nil, nil)
}

func (c *Client) PutReferenceSeller(ctx context.Context, id string, data Object) (Object, error) {
	return c.call(ctx, "reference_seller_update", http.MethodPut,
		pathReferenceSellers+url.PathEscape(id)+"/", nil, data)
}

func (c *Client) CreateReferenceProduct(ctx context.Context, data Object) (Object, error) {
	return c.call(ctx, "reference_product_create", http.MethodPost, pathReferenceProducts, nil, data)
}

func (c *Client) GetReferenceTerms(ctx context.Context, id string) (Object, error) {
	return c.call(ctx, "reference_terms_get", http.MethodGet,
		pathReferenceTerms+url.PathEscape(id)+"/", nil, nil)
}
