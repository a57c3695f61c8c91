package adapters

import (
	"io"
	"net/http"

	presentationProtocols "github.com/splitteam/expense-backend/internal/presentation/protocols"
)

// AdaptRoute bridges a controller into a net/http handler.
func AdaptRoute(controller presentationProtocols.Controller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := controller.Handle(presentationProtocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		})

		for key, values := range response.Headers {
			for _, value := range values {
				w.Header().Set(key, value)
			}
		}

		w.WriteHeader(response.StatusCode)
		if response.Body != nil {
			defer response.Body.Close()
			io.Copy(w, response.Body)
		}
	})
}
