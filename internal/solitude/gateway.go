package solitude

import (
	"context"
	"fmt"
	"strings"
)

// Object is a decoded gateway resource.
type Object map[string]any

// URI returns the object's resource_uri, or "" when absent.
func (o Object) URI() string {
	return o.String("resource_uri")
}

// String returns the field as a string. Numbers are formatted without a
// fractional part when they are integral.
func (o Object) String(key string) string {
	switch v := o[key].(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Object returns a nested object, or nil.
func (o Object) Object(key string) Object {
	if m, ok := o[key].(map[string]any); ok {
		return Object(m)
	}
	return nil
}

// PK extracts the primary key from a resource URI.
func PK(uri string) string {
	parts := strings.Split(strings.TrimRight(uri, "/"), "/")
	return parts[len(parts)-1]
}

// Gateway is the subset of the payment gateway API the providers use.
type Gateway interface {
	CreateGenericSeller(ctx context.Context, uuid string) (Object, error)
	GetGenericProduct(ctx context.Context, publicID string) (Object, error)
	CreateGenericProduct(ctx context.Context, data Object) (Object, error)

	CreateBangoPackage(ctx context.Context, data Object) (Object, error)
	GetBangoPackage(ctx context.Context, uri string, full bool) (Object, error)
	PatchByURI(ctx context.Context, uri string, data Object) (Object, error)
	CreateBangoBankDetails(ctx context.Context, data Object) (Object, error)
	GetBangoProduct(ctx context.Context, sellerProductPK string) (Object, error)
	CreateBangoProviderProduct(ctx context.Context, data Object) (Object, error)
	GetBangoSBI(ctx context.Context, packageURI string) (Object, error)
	PostBangoSBI(ctx context.Context, packageURI string) (Object, error)

	CreateReferenceSeller(ctx context.Context, data Object) (Object, error)
	GetReferenceSeller(ctx context.Context, id string) (Object, error)
	PutReferenceSeller(ctx context.Context, id string, data Object) (Object, error)
	CreateReferenceProduct(ctx context.Context, data Object) (Object, error)
	GetReferenceTerms(ctx context.Context, id string) (Object, error)
}

var _ Gateway = (*Client)(nil)
