package handlers

import (
	"context"
	"errors"

	"orus/internal/domain/card"
	"orus/internal/models"
	creditcard "orus/internal/services/credit-card"
	"orus/internal/utils/response"
	uservalidation "orus/internal/utils/validation"
	"orus/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CreditCardHandler struct {
	cardService creditcard.Service
	logger      logrus.FieldLogger
}

func NewCreditCardHandler(cardService creditcard.Service, logger logrus.FieldLogger) *CreditCardHandler {
	return &CreditCardHandler{
		cardService: cardService,
		logger:      logger,
	}
}

func (h *CreditCardHandler) CheckCard(c *fiber.Ctx) error {
	var input models.CardCheckRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := input.Validate(); err != nil {
		return response.ValidationError(c, fiber.StatusBadRequest, "Invalid request", validation.FieldErrors(err))
	}

	result := h.cardService.Inspect(creditcard.CheckCardInput{
		Number:   input.Number,
		ExpMonth: input.ExpMonth,
		ExpYear:  input.ExpYear,
		CVC:      input.CVC,
	})
	return response.Success(c, "Card checked", result)
}

func (h *CreditCardHandler) FormatCard(c *fiber.Ctx) error {
	number := c.Query("number")
	if card.Normalize(number) == "" {
		return response.BadRequest(c, "number is required")
	}

	cardType, _ := h.cardService.CardType(number)
	return response.Success(c, "Card formatted", fiber.Map{
		"formatted": h.cardService.FormatCardNumber(number),
		"type":      cardType,
	})
}

func (h *CreditCardHandler) ListSchemes(c *fiber.Ctx) error {
	schemes := h.cardService.Schemes()
	out := make([]models.CardScheme, 0, len(schemes))
	for _, s := range schemes {
		out = append(out, models.CardScheme{
			Type:       s.ID,
			Name:       s.Name,
			Lengths:    s.Lengths,
			CVCLengths: s.CVCLengths,
			Grouping:   s.Grouping.String(),
			Luhn:       s.Luhn,
		})
	}
	return response.Success(c, "Card schemes", out)
}

func (h *CreditCardHandler) CreateToken(c *fiber.Ctx) error {
	var input models.CreateTokenRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := input.Validate(); err != nil {
		return response.ValidationError(c, fiber.StatusBadRequest, "Invalid request", validation.FieldErrors(err))
	}

	result, err := h.cardService.CreateToken(c.UserContext(), creditcard.TokenRequest{
		Number:   input.Number,
		ExpMonth: input.ExpMonth,
		ExpYear:  input.ExpYear,
		CVC:      input.CVC,
		Name:     input.Name,
		APIKey:   input.APIKey,
	})
	if err != nil {
		return h.tokenError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Card tokenized",
		"data": models.CardToken{
			Token:    result.Token,
			CardType: result.CardType,
			Brand:    result.Brand,
			LastFour: result.LastFour,
			Livemode: result.Livemode,
		},
	})
}

func (h *CreditCardHandler) tokenError(c *fiber.Ctx, err error) error {
	var (
		fieldErrs uservalidation.Errors
		tokenErr  *creditcard.TokenError
	)

	switch {
	case errors.As(err, &fieldErrs):
		return response.ValidationError(c, fiber.StatusUnprocessableEntity, "Invalid card", fieldErrs.Fields())
	case errors.Is(err, creditcard.ErrLiveCardInTestMode):
		return response.Error(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, creditcard.ErrMissingAPIKey):
		return response.BadRequest(c, "api_key is required")
	case errors.As(err, &tokenErr):
		status := fiber.StatusBadGateway
		if tokenErr.Status == fiber.StatusPaymentRequired {
			status = fiber.StatusPaymentRequired
		}
		return response.Error(c, status, tokenErr.Message)
	case errors.Is(err, context.DeadlineExceeded):
		return response.Error(c, fiber.StatusGatewayTimeout, "Token issuer timed out")
	case errors.Is(err, context.Canceled):
		h.logger.WithError(err).Debug("tokenization canceled by caller")
		return response.Error(c, fiber.StatusRequestTimeout, "Request canceled")
	default:
		h.logger.WithError(err).Error("tokenization failed")
		return response.Error(c, fiber.StatusBadGateway, "Card tokenization failed")
	}
}
