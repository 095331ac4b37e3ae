package usecase

import (
	"context"
	"net/http"
	"strings"

	repo "sebetamart/internal/repository"
)

const (
	SearchTypeProduct = "product"
	SearchTypeSeller  = "seller"

	searchLimit = 20
)

type SearchResult struct {
	Type    string      `json:"type"`
	Query   string      `json:"query"`
	Results interface{} `json:"results"`
	Count   int         `json:"count"`
}

type SearchUsecase struct {
	products repo.ProductRepository
	sellers  repo.SellerRepository
}

func NewSearchUsecase(products repo.ProductRepository, sellers repo.SellerRepository) *SearchUsecase {
	return &SearchUsecase{products: products, sellers: sellers}
}

// Search is a case-insensitive substring match on product or shop names.
// No match is an empty result, not an error.
func (u *SearchUsecase) Search(ctx context.Context, q string, typ string) (SearchResult, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return SearchResult{}, NewHTTPError(http.StatusBadRequest, MsgSearchQueryNeeded)
	}
	if len(q) > 100 {
		return SearchResult{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}

	typ = strings.TrimSpace(typ)
	if typ == "" {
		typ = SearchTypeProduct
	}

	switch typ {
	case SearchTypeProduct:
		items, err := u.products.SearchByName(ctx, q, searchLimit)
		if err != nil {
			return SearchResult{}, internal("search products", err)
		}
		return SearchResult{Type: typ, Query: q, Results: items, Count: len(items)}, nil
	case SearchTypeSeller:
		items, err := u.sellers.SearchByShopName(ctx, q, searchLimit)
		if err != nil {
			return SearchResult{}, internal("search sellers", err)
		}
		return SearchResult{Type: typ, Query: q, Results: items, Count: len(items)}, nil
	default:
		return SearchResult{}, NewHTTPError(http.StatusBadRequest, MsgSearchTypeInvalid)
	}
}
