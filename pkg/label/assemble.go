package label

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/labelpress/labelpress/pkg/errors"
)

// ProductCore is the required slice of a product: the fields a label cannot
// exist without, plus the optional barcode value.
type ProductCore struct {
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	BarcodeValue string `json:"barcode_value,omitempty"`
}

// Source is what the assembler needs from the back office. The three reads
// are independent endpoints upstream; [Assembler.Assemble] issues them
// concurrently.
//
// Nutrition and Seals may return backoffice.ErrNotFound-style sentinel errors
// when the product has no such data; the assembler treats any failure of
// these two reads as "absent", never as an assembly error.
type Source interface {
	Product(ctx context.Context, productID string) (ProductCore, error)
	Nutrition(ctx context.Context, productID string) (*NutritionFacts, error)
	Seals(ctx context.Context, productID string) ([]Seal, error)
}

// Assembler combines the three back-office reads into one Document.
// It is stateless and safe for concurrent use.
type Assembler struct {
	source Source
	logger *log.Logger
}

// NewAssembler creates an assembler over the given source.
// A nil logger discards output.
func NewAssembler(source Source, logger *log.Logger) *Assembler {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Assembler{source: source, logger: logger}
}

// productErrCode preserves the failure class of the required read so that
// callers can map it faithfully, e.g. the HTTP server answering 404 for a
// product that does not exist instead of a generic assembly failure.
func productErrCode(err error) errors.Code {
	if code := errors.GetCode(err); code != "" {
		return code
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.ErrCodeTimeout
	}
	return errors.ErrCodeAssemblyFailed
}

// Assemble produces the label document for a product.
//
// The product-core read is required: if it fails, assembly fails and no
// document is produced. The nutrition and seals reads are optional: their
// failures are swallowed here and converted into an absent field or an empty
// list, because a label with missing nutrition data must still render (with
// an explicit "unavailable" notice) rather than block the operator.
func (a *Assembler) Assemble(ctx context.Context, productID string) (*Document, error) {
	if productID == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "product id is required")
	}

	var (
		core      ProductCore
		nutrition *NutritionFacts
		seals     []Seal
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		core, err = a.source.Product(gctx, productID)
		if err != nil {
			return errors.Wrap(productErrCode(err), err,
				"failed to load product %s", productID)
		}
		return nil
	})

	g.Go(func() error {
		n, err := a.source.Nutrition(gctx, productID)
		if err != nil {
			a.logger.Debug("nutrition facts unavailable", "product", productID, "err", err)
			return nil
		}
		if n != nil {
			if err := n.Validate(); err != nil {
				a.logger.Warn("discarding invalid nutrition facts", "product", productID, "err", err)
				return nil
			}
		}
		nutrition = n
		return nil
	})

	g.Go(func() error {
		s, err := a.source.Seals(gctx, productID)
		if err != nil {
			a.logger.Debug("seal assignment unavailable", "product", productID, "err", err)
			return nil
		}
		seals = s
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc := &Document{
		ProductName:  core.Name,
		SKU:          core.SKU,
		BarcodeValue: core.BarcodeValue,
		Nutrition:    nutrition,
		Seals:        seals,
	}
	if err := doc.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeAssemblyFailed, err,
			"back office returned an incomplete product %s", productID)
	}

	a.logger.Debug("assembled label document",
		"product", productID,
		"sku", doc.SKU,
		"barcode", doc.BarcodeValue != "",
		"nutrition", doc.Nutrition != nil,
		"seals", len(doc.Seals))

	return doc, nil
}
