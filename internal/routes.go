package internal

import (
	"net/http"

	"qrd/internal/controllers"
	"qrd/internal/providers"
	"qrd/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/list", http.HandlerFunc(apiController.GetHistory))
	routers.Get("/analytics", http.HandlerFunc(apiController.GetAnalytics))
	routers.Get("/export", http.HandlerFunc(apiController.ExportHistory))
	routers.Post("/scan", http.HandlerFunc(apiController.RecordScan))
	routers.Post("/encode", http.HandlerFunc(apiController.EncodePayload))
	routers.Delete("/history", http.HandlerFunc(apiController.DeleteHistory))
	return routers
}
