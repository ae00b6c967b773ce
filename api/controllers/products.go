package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/feedstorehq/feedstore-backend/api/responses"
	"github.com/feedstorehq/feedstore-backend/api/validators"
	"github.com/feedstorehq/feedstore-backend/internal/products"
	"github.com/feedstorehq/feedstore-backend/internal/storefront"
	pkgerrors "github.com/feedstorehq/feedstore-backend/pkg/errors"
	"github.com/feedstorehq/feedstore-backend/pkg/logger"
	"github.com/feedstorehq/feedstore-backend/pkg/pagination"
)

// ListProducts serves the public catalog with optional taxonomy filters and
// cursor pagination.
func ListProducts(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := products.ListFilter{
			AnimalType: strings.TrimSpace(r.URL.Query().Get("animal_type")),
			SubType:    strings.TrimSpace(r.URL.Query().Get("sub_type")),
			Query:      strings.TrimSpace(r.URL.Query().Get("q")),
		}

		page, err := svc.List(r.Context(), filter, pagination.Params{
			Limit:  limit,
			Cursor: r.URL.Query().Get("cursor"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"products":    page.Products,
			"next_cursor": page.NextCursor,
		})
	}
}

func GetProduct(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "productID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// ProductWhatsAppLink returns the storefront contact link for the product.
func ProductWhatsAppLink(links *storefront.LinkBuilder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "productID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		link, err := links.ProductLink(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"url": link})
	}
}

type productRequest struct {
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description,omitempty"`
	PricePerKg      float64  `json:"price_per_kg" validate:"gte=0"`
	PricePerSack    float64  `json:"price_per_sack" validate:"gte=0"`
	SackWeight      int      `json:"sack_weight" validate:"gte=0"`
	Image           string   `json:"image,omitempty"`
	AnimalTypes     []string `json:"animal_types,omitempty"`
	SubTypes        []string `json:"sub_types,omitempty"`
	Benefits        []string `json:"benefits,omitempty"`
	ShowAnimalNames bool     `json:"show_animal_names,omitempty"`
}

func CreateProduct(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), products.CreateProductInput{
			Name:            payload.Name,
			Description:     payload.Description,
			PricePerKg:      payload.PricePerKg,
			PricePerSack:    payload.PricePerSack,
			SackWeight:      payload.SackWeight,
			Image:           payload.Image,
			AnimalTypes:     payload.AnimalTypes,
			SubTypes:        payload.SubTypes,
			Benefits:        payload.Benefits,
			ShowAnimalNames: payload.ShowAnimalNames,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

type updateProductRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	PricePerKg      *float64 `json:"price_per_kg,omitempty" validate:"omitempty,gte=0"`
	PricePerSack    *float64 `json:"price_per_sack,omitempty" validate:"omitempty,gte=0"`
	SackWeight      *int     `json:"sack_weight,omitempty" validate:"omitempty,gte=0"`
	Image           *string  `json:"image,omitempty"`
	AnimalTypes     []string `json:"animal_types,omitempty"`
	SubTypes        []string `json:"sub_types,omitempty"`
	Benefits        []string `json:"benefits,omitempty"`
	ShowAnimalNames *bool    `json:"show_animal_names,omitempty"`
}

func UpdateProduct(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "productID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Update(r.Context(), id, products.UpdateProductInput{
			Name:            payload.Name,
			Description:     payload.Description,
			PricePerKg:      payload.PricePerKg,
			PricePerSack:    payload.PricePerSack,
			SackWeight:      payload.SackWeight,
			Image:           payload.Image,
			AnimalTypes:     payload.AnimalTypes,
			SubTypes:        payload.SubTypes,
			Benefits:        payload.Benefits,
			ShowAnimalNames: payload.ShowAnimalNames,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

func DeleteProduct(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "productID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

type priceAdjustmentRequest struct {
	Percent float64 `json:"percent" validate:"required,gt=-100"`
}

// AdjustProductPrices applies a percentage change across the whole catalog.
func AdjustProductPrices(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload priceAdjustmentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		adjusted, err := svc.AdjustPrices(r.Context(), payload.Percent)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"adjusted": adjusted})
	}
}

func pathUUID(r *http.Request, param string) (uuid.UUID, error) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid id").
			WithDetails(map[string]any{"param": param})
	}
	return id, nil
}
