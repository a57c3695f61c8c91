package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	presentationProtocols "github.com/splitteam/expense-backend/internal/presentation/protocols"
)

// CreateResponse marshals body into a JSON HttpResponse with the given
// status code. A body that fails to marshal becomes a 500.
func CreateResponse(body any, statusCode int) *presentationProtocols.HttpResponse {
	payload, err := json.Marshal(body)
	if err != nil {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"error":"failed to encode response"}`))),
			StatusCode: http.StatusInternalServerError,
		}
	}

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(payload)),
		StatusCode: statusCode,
	}
}
