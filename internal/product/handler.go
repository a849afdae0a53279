package product

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"commerce-api/pkg/apiresponse"
	"commerce-api/pkg/cerror"
	"commerce-api/pkg/logger"
	"commerce-api/pkg/server"
	"commerce-api/pkg/validation"
)

type handler struct {
	productService Service
}

func NewHandler(productService Service) server.Handler {
	return &handler{
		productService: productService,
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	products := app.Group("/api/v1/products")
	products.Get(
		"/all",
		validation.Middleware(validation.Schemas{
			Query: func() interface{} { return new(ListQuery) },
		}),
		h.ListProducts,
	)
}

func (h *handler) ListProducts(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "listProducts"))

	query := validation.Value[ListQuery](ctx, validation.PartQuery)
	if query == nil {
		return cerror.ErrorMalformedRequestBody
	}

	productList, err := h.productService.ListProducts(ctx.Context(), query)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return apiresponse.RespondSuccess(ctx, productList, MessageFetchSuccess, fiber.StatusOK)
}
