package handlers

import (
	"net/http"

	"github.com/unrolled/render"
)

func Healthz(rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rnd.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
