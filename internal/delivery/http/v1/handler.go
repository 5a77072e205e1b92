// Package v1 is the storefront gateway's JSON API. Every response uses the
// utils.Envelope shape.
package v1

import (
	"context"
	"errors"
	"io"
	"net/http"

	"hometex-storefront/internal/apiclient"
	"hometex-storefront/internal/domain"
	"hometex-storefront/pkg/logger"
	"hometex-storefront/pkg/utils"

	"github.com/goccy/go-json"
)

const maxJSONBody = 1 << 20

// writeServiceError maps an error from a usecase or service onto a response.
// API errors keep the upstream status and message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if apiErr, ok := apiclient.AsAPIError(err); ok {
		utils.WriteError(w, apiErr.StatusCode, apiErr.Message)
		return
	}

	var unsuccessful *domain.UnsuccessfulError
	switch {
	case errors.As(err, &unsuccessful):
		utils.WriteError(w, http.StatusNotFound, unsuccessful.Error())
	case errors.Is(err, domain.ErrInvalidProduct),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrInvalidCoordinates):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrQuantityLimit),
		errors.Is(err, domain.ErrStateTooLarge):
		utils.WriteError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrLocationNotFound),
		errors.Is(err, domain.ErrTrackingUnavailable):
		utils.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotAuthenticated):
		utils.WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		utils.WriteError(w, http.StatusGatewayTimeout, "Upstream request timed out")
	default:
		logger.WithContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
		utils.WriteError(w, http.StatusBadGateway, "Storefront API unavailable")
	}
}

// decodeJSON reads a bounded JSON body into v. An empty body is an error.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err != nil || len(body) == 0 || json.Unmarshal(body, v) != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

// relay writes the data of an upstream envelope. A 2xx envelope with
// success=false means the API rejected the request and is answered with 422.
func relay[T any](w http.ResponseWriter, r *http.Request, status int, resp *domain.Response[T], err error) {
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !resp.Success {
		utils.WriteError(w, http.StatusUnprocessableEntity, rejectedMessage(resp.Message))
		return
	}
	utils.WriteJSON(w, status, utils.Envelope{Success: true, Message: resp.Message, Data: resp.Data})
}

// relayMessage is relay for endpoints that only acknowledge an action.
func relayMessage(w http.ResponseWriter, r *http.Request, msg *domain.Message, err error) {
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !msg.Success {
		utils.WriteError(w, http.StatusUnprocessableEntity, rejectedMessage(msg.Message))
		return
	}
	utils.WriteMessage(w, http.StatusOK, msg.Message)
}

func rejectedMessage(msg string) string {
	if msg == "" {
		return "Request was rejected"
	}
	return msg
}
