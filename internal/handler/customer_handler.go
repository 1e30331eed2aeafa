package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/anlewis/rails-engine/internal/model"
	"github.com/anlewis/rails-engine/internal/relation"
	"github.com/anlewis/rails-engine/internal/search"
	"github.com/anlewis/rails-engine/internal/stats"
	"github.com/anlewis/rails-engine/pkg/database"
	"github.com/anlewis/rails-engine/pkg/logger"
	"github.com/anlewis/rails-engine/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListCustomers handles retrieving all customers
func ListCustomers(c echo.Context) error {
	log := logger.FromContext(c)

	customers := make([]model.Customer, 0)
	if result := database.GetDB().Find(&customers); result.Error != nil {
		log.Error("Failed to list customers", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve customers"})
	}

	return c.JSON(http.StatusOK, customers)
}

// GetCustomer handles retrieving a single customer by ID
func GetCustomer(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Error("Invalid customer ID", zap.String("id", c.Param("id")), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid customer ID"})
	}

	var customer model.Customer
	if result := database.GetDB().First(&customer, id); result.Error != nil {
		log.Error("Customer not found", zap.Uint64("id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
	}

	return c.JSON(http.StatusOK, customer)
}

// RandomCustomer handles retrieving a uniformly random customer
func RandomCustomer(c echo.Context) error {
	log := logger.FromContext(c)

	customer, err := search.RandomRecord[model.Customer](database.GetDB())
	if err != nil {
		if errors.Is(err, search.ErrNoMatch) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no customers exist"})
		}
		log.Error("Failed to pick random customer", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve customer"})
	}

	return c.JSON(http.StatusOK, customer)
}

// FindCustomer handles single-result customer search by query parameters
func FindCustomer(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordSearch("customer", "find")

	customer, err := search.FindOne[model.Customer](database.GetDB(), search.Customers, c.QueryParams())
	if err != nil {
		switch {
		case errors.Is(err, search.ErrInvalidParameter):
			log.Warn("Invalid customer search parameter", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, search.ErrNoMatch):
			prometheus.RecordSearchMiss("customer")
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		default:
			log.Error("Customer search failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "customer search failed"})
		}
	}

	return c.JSON(http.StatusOK, customer)
}

// FindAllCustomers handles multi-result customer search by query parameters
func FindAllCustomers(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordSearch("customer", "find_all")

	customers, err := search.FindAll[model.Customer](database.GetDB(), search.Customers, c.QueryParams())
	if err != nil {
		if errors.Is(err, search.ErrInvalidParameter) {
			log.Warn("Invalid customer search parameter", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		log.Error("Customer search failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "customer search failed"})
	}

	return c.JSON(http.StatusOK, customers)
}

// FavoriteMerchant handles the favorite merchant aggregation for a customer
func FavoriteMerchant(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Error("Invalid customer ID", zap.String("id", c.Param("id")), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid customer ID"})
	}

	prometheus.FavoriteMerchantCounter.Inc()

	merchant, err := stats.FavoriteMerchant(database.GetDB(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, stats.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		case errors.Is(err, stats.ErrNoFavorite):
			// No successful transactions at all. Not an error: render null,
			// matching the empty aggregation result.
			return c.JSON(http.StatusOK, nil)
		default:
			log.Error("Favorite merchant aggregation failed", zap.Uint64("customer_id", id), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "aggregation failed"})
		}
	}

	return c.JSON(http.StatusOK, merchant)
}

// CustomerRelated handles listing a customer's invoices or transactions
func CustomerRelated(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Error("Invalid customer ID", zap.String("id", c.Param("id")), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid customer ID"})
	}

	name := c.Param("relation")
	prometheus.RecordRelationLookup("customer", name)

	related, err := relation.ForCustomer(database.GetDB(), uint(id), name)
	if err != nil {
		switch {
		case errors.Is(err, relation.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		case errors.Is(err, relation.ErrInvalidRelation):
			log.Warn("Invalid customer relation requested", zap.String("relation", name))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid relation: " + name})
		default:
			log.Error("Failed to list customer relation",
				zap.Uint64("customer_id", id),
				zap.String("relation", name),
				zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve " + name})
		}
	}

	return c.JSON(http.StatusOK, related)
}
