package handlers

import (
	"net/http"
	"path"

	"github.com/go-chi/chi"
)

func ServeUpload(w http.ResponseWriter, r *http.Request) {
	image := chi.URLParam(r, "image")
	imagePath := path.Join(uploadDir, path.Base(image))

	http.ServeFile(w, r, imagePath)
}
