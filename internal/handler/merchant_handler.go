package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/anlewis/rails-engine/internal/model"
	"github.com/anlewis/rails-engine/internal/relation"
	"github.com/anlewis/rails-engine/internal/search"
	"github.com/anlewis/rails-engine/pkg/database"
	"github.com/anlewis/rails-engine/pkg/logger"
	"github.com/anlewis/rails-engine/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListMerchants handles retrieving all merchants
func ListMerchants(c echo.Context) error {
	log := logger.FromContext(c)

	merchants := make([]model.Merchant, 0)
	if result := database.GetDB().Find(&merchants); result.Error != nil {
		log.Error("Failed to list merchants", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve merchants"})
	}

	return c.JSON(http.StatusOK, merchants)
}

// GetMerchant handles retrieving a single merchant by ID
func GetMerchant(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Error("Invalid merchant ID", zap.String("id", c.Param("id")), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid merchant ID"})
	}

	var merchant model.Merchant
	if result := database.GetDB().First(&merchant, id); result.Error != nil {
		log.Error("Merchant not found", zap.Uint64("id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "merchant not found"})
	}

	return c.JSON(http.StatusOK, merchant)
}

// FindMerchant handles single-result merchant search by query parameters
func FindMerchant(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordSearch("merchant", "find")

	merchant, err := search.FindOne[model.Merchant](database.GetDB(), search.Merchants, c.QueryParams())
	if err != nil {
		switch {
		case errors.Is(err, search.ErrInvalidParameter):
			log.Warn("Invalid merchant search parameter", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, search.ErrNoMatch):
			prometheus.RecordSearchMiss("merchant")
			return c.JSON(http.StatusNotFound, echo.Map{"error": "merchant not found"})
		default:
			log.Error("Merchant search failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "merchant search failed"})
		}
	}

	return c.JSON(http.StatusOK, merchant)
}

// FindAllMerchants handles multi-result merchant search by query parameters
func FindAllMerchants(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordSearch("merchant", "find_all")

	merchants, err := search.FindAll[model.Merchant](database.GetDB(), search.Merchants, c.QueryParams())
	if err != nil {
		if errors.Is(err, search.ErrInvalidParameter) {
			log.Warn("Invalid merchant search parameter", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		log.Error("Merchant search failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "merchant search failed"})
	}

	return c.JSON(http.StatusOK, merchants)
}

// MerchantRelated handles listing a merchant's items or invoices
func MerchantRelated(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Error("Invalid merchant ID", zap.String("id", c.Param("id")), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid merchant ID"})
	}

	name := c.Param("relation")
	prometheus.RecordRelationLookup("merchant", name)

	related, err := relation.ForMerchant(database.GetDB(), uint(id), name)
	if err != nil {
		switch {
		case errors.Is(err, relation.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "merchant not found"})
		case errors.Is(err, relation.ErrInvalidRelation):
			log.Warn("Invalid merchant relation requested", zap.String("relation", name))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid relation: " + name})
		default:
			log.Error("Failed to list merchant relation",
				zap.Uint64("merchant_id", id),
				zap.String("relation", name),
				zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve " + name})
		}
	}

	return c.JSON(http.StatusOK, related)
}
