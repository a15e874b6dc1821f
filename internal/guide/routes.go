package guide

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/prefectures", PrefecturesHandler)
	r.Get("/prefectures/{code}", PrefectureHandler)
	r.Get("/blocks", BlocksHandler)
	r.Get("/blocks/{code}", BlockHandler)
	r.Get("/blocks/{code}/prefectures", BlockPrefecturesHandler)
	r.Get("/parties/colors", PartyColorsHandler)
	r.Get("/map", MapHandler)

	return r
}
