package backoffice

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/labelpress/labelpress/pkg/errors"
	"github.com/labelpress/labelpress/pkg/label"
)

// API is the typed surface over the back-office REST endpoints. It
// implements [label.Source], so an Assembler can read straight from it.
type API struct {
	client  *Client
	baseURL string
	refresh bool
}

// NewAPI creates an API rooted at baseURL (e.g. "https://admin.example.com/api").
// If refresh is true every read bypasses the response cache.
func NewAPI(client *Client, baseURL string, refresh bool) *API {
	return &API{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		refresh: refresh,
	}
}

// productResponse mirrors the back office's product payload. Only the
// label-relevant fields are decoded; the rest of the (large) product record
// belongs to the excluded CRUD surface.
type productResponse struct {
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	BarcodeValue string `json:"barcode_value,omitempty"`
}

// Product fetches the required core fields of a product.
// Returns [ErrNotFound] if the product does not exist.
func (a *API) Product(ctx context.Context, productID string) (label.ProductCore, error) {
	var resp productResponse
	u := fmt.Sprintf("%s/products/%s", a.baseURL, url.PathEscape(productID))
	err := a.client.Cached(ctx, "product:"+productID, a.refresh, &resp, func() error {
		return a.client.Get(ctx, u, &resp)
	})
	if err != nil {
		return label.ProductCore{}, productErr(productID, err)
	}
	return label.ProductCore{
		Name:         resp.Name,
		SKU:          resp.SKU,
		BarcodeValue: resp.BarcodeValue,
	}, nil
}

// productErr tags failures of the required product read with an error code,
// so callers downstream (the HTTP server in particular) can distinguish a
// missing product from an unreachable back office. The sentinel stays in the
// chain; errors.Is against [ErrNotFound] keeps working.
func productErr(productID string, err error) error {
	switch {
	case stderrors.Is(err, ErrNotFound):
		return errors.Wrap(errors.ErrCodeProductNotFound, err, "product %s not found", productID)
	case stderrors.Is(err, ErrNetwork):
		return errors.Wrap(errors.ErrCodeNetwork, err, "back office unreachable")
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(errors.ErrCodeTimeout, err, "back office timed out")
	default:
		return err
	}
}

// Nutrition fetches the nutrition-facts record of a product.
// Returns [ErrNotFound] when the product has no nutrition data yet; callers
// that only need to render treat that as "absent", not as a failure.
func (a *API) Nutrition(ctx context.Context, productID string) (*label.NutritionFacts, error) {
	var resp label.NutritionFacts
	u := fmt.Sprintf("%s/products/%s/nutrition", a.baseURL, url.PathEscape(productID))
	err := a.client.Cached(ctx, "nutrition:"+productID, a.refresh, &resp, func() error {
		return a.client.Get(ctx, u, &resp)
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Seals fetches the resolved, ordered warning-seal assignment of a product.
// The back office resolves the many-to-many assignment against its catalog;
// the returned order is the render order.
func (a *API) Seals(ctx context.Context, productID string) ([]label.Seal, error) {
	var resp []label.Seal
	u := fmt.Sprintf("%s/products/%s/seals", a.baseURL, url.PathEscape(productID))
	err := a.client.Cached(ctx, "seals:"+productID, a.refresh, &resp, func() error {
		return a.client.Get(ctx, u, &resp)
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// SealCatalog fetches the full catalog of available warning seals.
func (a *API) SealCatalog(ctx context.Context) ([]label.Seal, error) {
	var resp []label.Seal
	u := a.baseURL + "/seals"
	err := a.client.Cached(ctx, "seal-catalog", a.refresh, &resp, func() error {
		return a.client.Get(ctx, u, &resp)
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Ensure API satisfies the assembler's contract.
var _ label.Source = (*API)(nil)
