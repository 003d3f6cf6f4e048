package pizzaserver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	ordersapp "github.com/Apurer/go-gin-pizza-api/internal/domains/orders/application"
	ordersports "github.com/Apurer/go-gin-pizza-api/internal/domains/orders/ports"
	apierrors "github.com/Apurer/go-gin-pizza-api/internal/shared/errors"
)

// Error codes carried in the "code" extension of every order problem.
const (
	CodeInvalidParameter       = "INVALID_PARAMETER"
	CodeInvalidEntryType       = "INVALID_ENTRY_TYPE"
	CodeOrderNotFound          = "ORDER_NOT_FOUND"
	CodeOrderAlreadyInProgress = "ORDER_ALREADY_IN_PROGRESS"
	CodeOrderAlreadyProcessed  = "ORDER_ALREADY_PROCESSED"
	CodeOrderNotInProgress     = "ORDER_NOT_IN_PROGRESS"
	CodeEntryTypeNotFound      = "ENTRY_TYPE_NOT_FOUND"
)

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	apierrors.Respond(c, problem)
}

// orderErrorMapper translates lifecycle failures into problem details.
func orderErrorMapper(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, ordersapp.ErrInvalidEntryType):
		return apierrors.ErrValidation.WithDetail(err.Error()).WithCode(CodeInvalidEntryType), true
	case errors.Is(err, ordersapp.ErrInvalidInput):
		return apierrors.ErrValidation.WithDetail(err.Error()).WithCode(CodeInvalidParameter), true
	case errors.Is(err, ordersports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()).WithCode(CodeOrderNotFound), true
	case errors.Is(err, ordersapp.ErrOrderAlreadyInProgress):
		return apierrors.ErrConflict.WithDetail(err.Error()).WithCode(CodeOrderAlreadyInProgress), true
	case errors.Is(err, ordersapp.ErrOrderAlreadyProcessed):
		return apierrors.ErrConflict.WithDetail(err.Error()).WithCode(CodeOrderAlreadyProcessed), true
	case errors.Is(err, ordersapp.ErrOrderNotInProgress):
		return apierrors.ErrConflict.WithDetail(err.Error()).WithCode(CodeOrderNotInProgress), true
	default:
		return apierrors.ProblemDetail{}, false
	}
}

var orderResponder = apierrors.NewChainedResponder("", orderErrorMapper)

func respondOrderServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	orderResponder.RespondError(c, err)
}

// respondBindingError reports malformed or invalid request bodies.
func respondBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			fields[fieldPath(fe)] = fieldMessage(fe)
		}
		respondProblem(c, apierrors.NewValidationProblem(fields).
			WithDetail("request body failed validation").
			WithCode(CodeInvalidParameter))
		return
	}
	respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()).WithCode(CodeInvalidParameter))
}

// fieldPath turns "CreateOrderRequest.Entries[0].Quantity" into "entries[0].quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	parts := strings.Split(ns, ".")
	for i, part := range parts {
		if part != "" {
			parts[i] = strings.ToLower(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, ".")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "min":
		return fmt.Sprintf("must contain at least %s element(s)", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
